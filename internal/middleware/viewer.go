package middleware

import (
	"board-web/internal/services"
	"board-web/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	BrowserCookieName = "board_browser"
	browserIDLocal    = "browser_id"
	browserCookieAge  = 30 * 24 * 3600
)

// BrowserID makes sure every visitor carries a stable random id. It keys
// edit drafts, form tokens and in-flight request slots.
func BrowserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Cookies(BrowserCookieName, "")
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     BrowserCookieName,
				Value:    id,
				HTTPOnly: true,
				Secure:   c.Protocol() == "https",
				SameSite: "Lax",
				MaxAge:   browserCookieAge,
				Path:     "/",
			})
		}
		c.Locals(browserIDLocal, id)
		return c.Next()
	}
}

func BrowserIDFrom(c *fiber.Ctx) string {
	if v, ok := c.Locals(browserIDLocal).(string); ok {
		return v
	}
	return ""
}

// CredentialsFrom picks the headers forwarded to the board API.
func CredentialsFrom(c *fiber.Ctx) services.Credentials {
	return services.Credentials{
		Cookie:        c.Get(fiber.HeaderCookie),
		Authorization: c.Get(fiber.HeaderAuthorization),
	}
}

func ViewerFrom(c *fiber.Ctx) services.Viewer {
	return services.Viewer{
		ID:     BrowserIDFrom(c),
		Cred:   CredentialsFrom(c),
		Locale: utils.MatchLocale(c.Get(fiber.HeaderAcceptLanguage)),
	}
}
