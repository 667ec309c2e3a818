package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestFormTokenRoundTrip(t *testing.T) {
	f := NewFormTokens("secret", time.Hour)
	tok, err := f.Issue("browser-a", "42")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if err := f.Verify(tok, "browser-a", "42"); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestFormTokenRejects(t *testing.T) {
	f := NewFormTokens("secret", time.Hour)
	tok, _ := f.Issue("browser-a", "42")

	expired := NewFormTokens("secret", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, _ := expired.Issue("browser-a", "42")

	other, _ := NewFormTokens("other-secret", time.Hour).Issue("browser-a", "42")

	cases := []struct {
		name, token, browser, post string
	}{
		{"wrong browser", tok, "browser-b", "42"},
		{"wrong post", tok, "browser-a", "43"},
		{"no browser", tok, "", "42"},
		{"expired", old, "browser-a", "42"},
		{"wrong secret", other, "browser-a", "42"},
		{"garbage", "not-a-jwt", "browser-a", "42"},
		{"empty", "", "browser-a", "42"},
	}
	for _, tc := range cases {
		if err := f.Verify(tc.token, tc.browser, tc.post); !errors.Is(err, ErrFormToken) {
			t.Errorf("%s: err = %v, want ErrFormToken", tc.name, err)
		}
	}
}

func TestRequireFormToken(t *testing.T) {
	f := NewFormTokens("secret", time.Hour)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(browserIDLocal, "browser-a")
		return c.Next()
	})
	app.Post("/board/detail/:id/save", RequireFormToken(f), func(c *fiber.Ctx) error {
		return c.SendString("saved")
	})

	good, _ := f.Issue("browser-a", "42")
	for _, tc := range []struct {
		token string
		want  int
	}{
		{good, fiber.StatusOK},
		{"bogus", fiber.StatusForbidden},
	} {
		form := url.Values{FormTokenField: {tc.token}}
		req := httptest.NewRequest(http.MethodPost, "/board/detail/42/save", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
		res, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if res.StatusCode != tc.want {
			t.Errorf("token %q: status = %d, want %d", tc.token, res.StatusCode, tc.want)
		}
	}
}
