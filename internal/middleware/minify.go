package middleware

import (
	"encoding/base64"
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// MinifyHTML minifies rendered pages and tags them with an ETag so
// unchanged pages are answered with 304.
func MinifyHTML() fiber.Handler {
	m := minify.New()
	m.Add("text/html", &html.Minifier{KeepDocumentTags: true, KeepEndTags: true, KeepQuotes: true})
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)

	return func(c *fiber.Ctx) error {
		if err := c.Next(); err != nil {
			return err
		}
		res := c.Response()
		if !strings.HasPrefix(string(res.Header.ContentType()), fiber.MIMETextHTML) {
			return nil
		}

		body := res.Body()
		out, err := m.Bytes("text/html", body)
		if err != nil {
			log.Warn().Err(err).Str("path", c.Path()).Msg("html minify failed")
			out = body
		}

		etag := ETag(out)
		c.Set(fiber.HeaderETag, etag)
		if c.Method() == fiber.MethodGet && res.StatusCode() == fiber.StatusOK && c.Get(fiber.HeaderIfNoneMatch) == etag {
			c.Status(fiber.StatusNotModified)
			res.ResetBody()
			return nil
		}
		res.SetBody(out)
		return nil
	}
}

func ETag(b []byte) string {
	d := make([]byte, 8)
	binary.BigEndian.PutUint64(d, xxhash.Sum64(b))
	return `"` + base64.StdEncoding.EncodeToString(d) + `"`
}
