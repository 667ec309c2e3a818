package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

const page = `<!DOCTYPE html>
<html>
  <head>   <title>board</title>   </head>
  <body>
    <p>   hello   </p>
  </body>
</html>`

func newMinifyApp() *fiber.App {
	app := fiber.New()
	app.Use(MinifyHTML())
	app.Get("/page", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(page)
	})
	app.Get("/json", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"a": "  b  "})
	})
	return app
}

func TestMinifyHTML(t *testing.T) {
	app := newMinifyApp()
	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/page", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	if len(body) >= len(page) || !strings.Contains(string(body), "hello") {
		t.Errorf("body not minified: %q", body)
	}

	etag := res.Header.Get(fiber.HeaderETag)
	if etag != ETag(body) {
		t.Errorf("ETag = %q, want %q", etag, ETag(body))
	}

	req := httptest.NewRequest(http.MethodGet, "/page", nil)
	req.Header.Set(fiber.HeaderIfNoneMatch, etag)
	res, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != fiber.StatusNotModified {
		t.Errorf("conditional GET status = %d, want 304", res.StatusCode)
	}
}

func TestMinifySkipsNonHTML(t *testing.T) {
	res, err := newMinifyApp().Test(httptest.NewRequest(http.MethodGet, "/json", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.Header.Get(fiber.HeaderETag) != "" {
		t.Error("ETag set on a JSON response")
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `"  b  "`) {
		t.Errorf("JSON body altered: %q", body)
	}
}
