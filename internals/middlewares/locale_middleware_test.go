package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jebshit_backend/internals/i18n"
)

func localeApp() *fiber.App {
	app := fiber.New()
	app.Use(LocaleMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(Lang(c))
	})
	return app
}

func TestLocaleDefaultsToArabic(t *testing.T) {
	app := localeApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, "ar", resp.Header.Get("Content-Language"))
	assert.Equal(t, "rtl", resp.Header.Get("X-Direction"))
}

func TestLocaleHeaderWins(t *testing.T) {
	app := localeApp()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Lang", "en")
	req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "ar"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "en", resp.Header.Get("Content-Language"))
	assert.Equal(t, "ltr", resp.Header.Get("X-Direction"))
}

func TestLocaleCookieFallback(t *testing.T) {
	app := localeApp()
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: i18n.CookieName, Value: "en"})

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "en", resp.Header.Get("Content-Language"))
}

func TestLocaleEchoesCookie(t *testing.T) {
	app := localeApp()
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Lang", "en")

	resp, err := app.Test(req)
	require.NoError(t, err)
	var found bool
	for _, c := range resp.Cookies() {
		if c.Name == i18n.CookieName {
			found = true
			assert.Equal(t, "en", c.Value)
		}
	}
	assert.True(t, found)
}
