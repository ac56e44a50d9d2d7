package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"socialapi/internal/http/middleware"
)

// paramID parses a positive numeric route parameter.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// pagination reads limit and offset. Range clamping is left to the services.
func pagination(c *fiber.Ctx) (int, int, error) {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return 0, 0, errInvalidLimit
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return 0, 0, errInvalidOffset
	}
	return limit, offset, nil
}

// principal returns the authenticated member. Routes behind middleware.Auth
// always have one.
func principal(c *fiber.Ctx) (middleware.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return middleware.Principal{}, errNoPrincipal
	}
	return p, nil
}

func bindJSON(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return errInvalidBody
	}
	return nil
}

// listResponse is the JSON shape for unpaginated lists.
type listResponse[T any] struct {
	Items []T `json:"data"`
}

type countResponse struct {
	Count int `json:"count"`
}
