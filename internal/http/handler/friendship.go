package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"socialapi/internal/model"
	"socialapi/internal/service"
)

type friendRequest struct {
	AddresseeID int64 `json:"addressee_id"`
}

// RequestFriendship opens (or reopens) a request from the caller.
func RequestFriendship(svc service.FriendshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		var req friendRequest
		if err := bindJSON(c, &req); err != nil {
			return fail(c, err)
		}
		f, err := svc.Request(c.UserContext(), p.MemberID, req.AddresseeID)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

func AcceptFriendship(svc service.FriendshipService) fiber.Handler {
	return respondFriendship(svc.Accept)
}

func RejectFriendship(svc service.FriendshipService) fiber.Handler {
	return respondFriendship(svc.Reject)
}

func respondFriendship(respond func(ctx context.Context, memberID, id int64) (*model.Friendship, error)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		f, err := respond(c.UserContext(), p.MemberID, id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(f)
	}
}

func DeleteFriendship(svc service.FriendshipService) fiber.Handler {
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

// ListFriendRequests lists the pending requests addressed to the caller.
func ListFriendRequests(svc service.FriendshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		limit, offset, err := pagination(c)
		if err != nil {
			return fail(c, err)
		}
		res, err := svc.ListReceivedRequests(c.UserContext(), p.MemberID, limit, offset)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	}
}

func ListFriends(svc service.FriendshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		limit, offset, err := pagination(c)
		if err != nil {
			return fail(c, err)
		}
		res, err := svc.ListFriends(c.UserContext(), id, limit, offset)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(res)
	}
}

func CountFriends(svc service.FriendshipService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		n, err := svc.CountFriends(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(countResponse{Count: n})
	}
}
