package handler

import (
	"github.com/gofiber/fiber/v2"

	"socialapi/internal/model"
	"socialapi/internal/service"
)

type collectionRequest struct {
	Name string `json:"name"`
}

func CreateCollection(svc service.CollectionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		var req collectionRequest
		if err := bindJSON(c, &req); err != nil {
			return fail(c, err)
		}
		col, err := svc.Create(c.UserContext(), p.MemberID, req.Name)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(col)
	}
}

// ListCollections lists the caller's collections. Members rarely own many,
// so the list is not paginated.
func ListCollections(svc service.CollectionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		items, err := svc.List(c.UserContext(), p.MemberID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(listResponse[model.PostCollection]{Items: items})
	}
}

func RenameCollection(svc service.CollectionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		var req collectionRequest
		if err := bindJSON(c, &req); err != nil {
			return fail(c, err)
		}
		col, err := svc.Rename(c.UserContext(), p.MemberID, id, req.Name)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(col)
	}
}

func DeleteCollection(svc service.CollectionService) fiber.Handler {
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

func ListCollectionPosts(svc service.CollectionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		limit, offset, err := pagination(c)
		if err != nil {
			return fail(c, err)
		}
		res, err := svc.ListPosts(c.UserContext(), p.MemberID, id, limit, offset)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	}
}

func AddCollectionPost(svc service.CollectionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, id, postID, err := collectionPostParams(c)
		if err != nil {
			return fail(c, err)
		}
		if err := svc.AddPost(c.UserContext(), p, id, postID); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func RemoveCollectionPost(svc service.CollectionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, id, postID, err := collectionPostParams(c)
		if err != nil {
			return fail(c, err)
		}
		if err := svc.RemovePost(c.UserContext(), p, id, postID); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// collectionPostParams returns the caller's id with the collection and post ids.
func collectionPostParams(c *fiber.Ctx) (int64, int64, int64, error) {
	p, err := principal(c)
	if err != nil {
		return 0, 0, 0, err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return 0, 0, 0, err
	}
	postID, err := paramID(c, "postId")
	if err != nil {
		return 0, 0, 0, err
	}
	return p.MemberID, id, postID, nil
}
