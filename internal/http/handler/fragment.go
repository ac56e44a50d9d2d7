package handler

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"socialapi/internal/model"
	"socialapi/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

var fragments = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type eventsView struct {
	Unread int
	Events []model.MemberEvent
}

type carouselView struct {
	PostID int64
	Images []model.Image
}

// renderFragment executes the named template into a buffer first, so a
// template failure still yields a clean error response.
func renderFragment(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return fail(c, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// EventsFragment renders the caller's latest notifications as HTML. Browsers
// authenticate with the access_token cookie set at login.
func EventsFragment(svc service.MemberEventService) fiber.Handler {
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
		unread, err := svc.UnreadCount(c.UserContext(), p.MemberID)
		if err != nil {
			return fail(c, err)
		}
		return renderFragment(c, "events", eventsView{Unread: unread, Events: res.Items})
	}
}

// ImageCarousel renders a post's images with presigned URLs as HTML.
func ImageCarousel(svc service.ImageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		postID, err := paramID(c, "id")
		if err != nil {
			return fail(c, err)
		}
		imgs, err := svc.ListByPost(c.UserContext(), postID)
		if err != nil {
			return fail(c, err)
		}
		return renderFragment(c, "carousel", carouselView{PostID: postID, Images: imgs})
	}
}
