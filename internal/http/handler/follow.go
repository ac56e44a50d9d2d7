package handler

import (
	"github.com/gofiber/fiber/v2"

	"socialapi/internal/service"
)

// FollowMember makes the caller follow the member in the path.
func FollowMember(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		f, err := svc.Follow(c.UserContext(), p.MemberID, id)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

func UnfollowMember(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		if err := svc.Unfollow(c.UserContext(), p.MemberID, id); err != nil {
			return fail(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func ListFollowers(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		limit, offset, err := pagination(c)
		if err != nil {
			return fail(c, err)
		}
		res, err := svc.ListFollowers(c.UserContext(), id, limit, offset)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	}
}

func ListFollowings(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		limit, offset, err := pagination(c)
		if err != nil {
			return fail(c, err)
		}
		res, err := svc.ListFollowings(c.UserContext(), id, limit, offset)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	}
}

func FollowCounts(svc service.FollowService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		counts, err := svc.Counts(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(counts)
	}
}
