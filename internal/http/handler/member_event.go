package handler

import (
	"github.com/gofiber/fiber/v2"

	"socialapi/internal/service"
)

func ListEvents(svc service.MemberEventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		limit, offset, err := pagination(c)
		if err != nil {
			return fail(c, err)
		}
		res, err := svc.List(c.UserContext(), p.MemberID, limit, offset)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	}
}

func UnreadEventCount(svc service.MemberEventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		n, err := svc.UnreadCount(c.UserContext(), p.MemberID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(countResponse{Count: n})
	}
}

func MarkEventRead(svc service.MemberEventService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		ev, err := svc.MarkRead(c.UserContext(), p.MemberID, id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(ev)
	}
}
