package http

import (
	"bytes"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/climateassistant/backend/internal/web"
)

const sessionCookie = "ca_session"

// UIHandler serves the search page
type UIHandler struct {
	sessions *web.Sessions
}

// NewUIHandler creates a new page handler
func NewUIHandler(sessions *web.Sessions) *UIHandler {
	return &UIHandler{sessions: sessions}
}

// Index renders the search page. A request carrying ?city= is a form
// submission and runs through the session's controller first. Plain page
// views only reuse an existing session; they never create one.
func (u *UIHandler) Index(c *fiber.Ctx) error {
	city := c.Query("city")
	submitted := c.Context().QueryArgs().Has("city")

	view := web.NewView()
	if submitted {
		id, ctrl := u.sessions.Get(c.Cookies(sessionCookie))
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})

		// Every outcome is already reflected in the view
		if err := ctrl.Submit(c.UserContext(), city); err != nil && !errors.Is(err, web.ErrSuperseded) {
			c.Status(statusFor(err))
		}
		*view = ctrl.View()
	} else if ctrl, ok := u.sessions.Lookup(c.Cookies(sessionCookie)); ok {
		*view = ctrl.View()
	}

	var buf bytes.Buffer
	if err := web.RenderPage(&buf, *view, city); err != nil {
		return err
	}

	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

// statusFor picks the page status code for a failed submission
func statusFor(err error) int {
	var (
		validationErr *web.ValidationError
		apiErr        *web.APIError
	)
	switch {
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest
	case errors.As(err, &apiErr):
		return apiErr.StatusCode
	default:
		return fiber.StatusBadGateway
	}
}
