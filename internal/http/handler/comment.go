package handler

import (
	"github.com/gofiber/fiber/v2"

	"socialapi/internal/service"
)

func CreateComment(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		postID, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		var req contentRequest
		if err := bindJSON(c, &req); err != nil {
			return fail(c, err)
		}
		cm, err := svc.Create(c.UserContext(), p.MemberID, postID, req.Content)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(cm)
	}
}

func ListComments(svc service.CommentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		limit, offset, err := pagination(c)
		if err != nil {
			return fail(c, err)
		}
		res, err := svc.ListByPost(c.UserContext(), postID, limit, offset)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	}
}

func UpdateComment(svc service.CommentService) fiber.Handler {
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
		cm, err := svc.Update(c.UserContext(), p.MemberID, id, req.Content)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(cm)
	}
}

func DeleteComment(svc service.CommentService) fiber.Handler {
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
