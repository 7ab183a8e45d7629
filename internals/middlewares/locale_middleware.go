package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"jebshit_backend/internals/i18n"
)

// LocaleMiddleware resolves the request language: X-Lang header first, then
// the persisted preference cookie, then the Arabic default. The choice is
// echoed back so the client can re-apply it at startup.
func LocaleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := c.Get("X-Lang")
		if lang == "" {
			lang = c.Cookies(i18n.CookieName)
		}
		lang = i18n.Normalize(lang)
		c.Locals("lang", lang)

		c.Cookie(&fiber.Cookie{
			Name:     i18n.CookieName,
			Value:    lang,
			Expires:  time.Now().Add(365 * 24 * time.Hour),
			SameSite: "Lax",
		})
		c.Set("Content-Language", lang)
		c.Set("X-Direction", i18n.Dir(lang))
		return c.Next()
	}
}

// Lang reads the resolved request language.
func Lang(c *fiber.Ctx) string {
	if v, ok := c.Locals("lang").(string); ok && v != "" {
		return v
	}
	return i18n.LangArabic
}
