package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"socialapi/internal/http/middleware"
	"socialapi/internal/model"
	"socialapi/internal/service"
)

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type profileRequest struct {
	Nickname        *string `json:"nickname"`
	Introduction    *string `json:"introduction"`
	ProfileImageURL *string `json:"profile_image_url"`
}

// RegisterMember handles POST /members.
func RegisterMember(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req registerRequest
		if err := bindJSON(c, &req); err != nil {
			return fail(c, err)
		}
		m, err := svc.Register(c.UserContext(), req.Email, req.Password, req.Nickname)
		if err != nil {
			return fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(m)
	}
}

// ActivateMember handles GET /members/activate?token=.
func ActivateMember(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		m, err := svc.Activate(c.UserContext(), c.Query("token"))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(m)
	}
}

// Login issues an access token. The token is returned in the body and also
// set as an httpOnly cookie for the HTML fragments.
func Login(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := bindJSON(c, &req); err != nil {
			return fail(c, err)
		}
		res, err := svc.Login(c.UserContext(), req.Email, req.Password)
		if err != nil {
			return fail(c, err)
		}
		c.Cookie(&fiber.Cookie{
			Name:     middleware.AccessTokenCookie,
			Value:    res.Token,
			Path:     "/",
			Expires:  res.ExpiresAt,
			HTTPOnly: true,
			Secure:   c.Protocol() == "https",
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		return c.JSON(res)
	}
}

func GetMe(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		m, err := svc.Get(c.UserContext(), p.MemberID)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(m)
	}
}

// UpdateMe applies a partial profile update; absent fields stay unchanged.
func UpdateMe(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		var req profileRequest
		if err := bindJSON(c, &req); err != nil {
			return fail(c, err)
		}
		m, err := svc.UpdateProfile(c.UserContext(), p.MemberID, model.ProfileUpdate{
			Nickname:        req.Nickname,
			Introduction:    req.Introduction,
			ProfileImageURL: req.ProfileImageURL,
		})
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(m)
	}
}

// WithdrawMe deletes the caller's account and clears the session cookie.
func WithdrawMe(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := principal(c)
		if err != nil {
			return fail(c, err)
		}
		if err := svc.Withdraw(c.UserContext(), p.MemberID); err != nil {
			return fail(c, err)
		}
		c.Cookie(&fiber.Cookie{
			Name:     middleware.AccessTokenCookie,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			HTTPOnly: true,
		})
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func GetMember(svc service.MemberService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		m, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(m)
	}
}
