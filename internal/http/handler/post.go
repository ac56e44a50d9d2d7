package handler

import (
	"github.com/gofiber/fiber/v2"

	"socialapi/internal/service"
)

type createPostRequest struct {
	Content  string  `json:"content"`
	ImageIDs []int64 `json:"image_ids"`
}

type contentRequest struct {
	Content string `json:"content"`
}

// CreatePost stores a post and attaches previously uploaded images.
func CreatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		var req createPostRequest
		if err := bindJSON(c, &req); err != nil {
			return fail(c, err)
		}
		post, err := svc.Create(c.UserContext(), p.MemberID, req.Content, req.ImageIDs)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(post)
	}
}

func GetPost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		view, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(view)
	}
}

func UpdatePost(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		var req contentRequest
		if err := bindJSON(c, &req); err != nil {
			return fail(c, err)
		}
		post, err := svc.Update(c.UserContext(), p.MemberID, id, req.Content)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(post)
	}
}

func DeletePost(svc service.PostService) fiber.Handler {
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

// Feed lists the caller's posts and those of the members they follow.
func Feed(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		limit, offset, err := pagination(c)
		if err != nil {
			return fail(c, err)
		}
		res, err := svc.Feed(c.UserContext(), p.MemberID, limit, offset)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	}
}

func ListMemberPosts(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		limit, offset, err := pagination(c)
		if err != nil {
			return fail(c, err)
		}
		res, err := svc.ListByWriter(c.UserContext(), id, limit, offset)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	}
}

// ToggleLike flips the caller's like on a post.
func ToggleLike(svc service.PostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		res, err := svc.ToggleLike(c.UserContext(), p.MemberID, id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	}
}
