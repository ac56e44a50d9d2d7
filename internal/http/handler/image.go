package handler

import (
	"github.com/gofiber/fiber/v2"

	"socialapi/internal/service"
)

// UploadImage stores a multipart upload (field name: file). The image stays
// unattached until a post references it.
func UploadImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return fail(c, errFileRequired)
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		img, err := svc.Upload(c.UserContext(), p.MemberID, f, fh.Filename, ct, fh.Size)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(img)
	}
}

// GetImage returns the image metadata with a presigned download URL.
func GetImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		img, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(img)
	}
}

// OpenImage streams the image bytes through the API.
func OpenImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		rc, img, err := svc.Open(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		c.Set(fiber.HeaderContentType, img.ContentType)
		// fasthttp closes rc once the body is written.
		return c.SendStream(rc, int(img.Size))
	}
}

func DeleteImage(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		if err := svc.Delete(c.UserContext(), p.MemberID, id); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
