// Package views holds the page templates, embedded so the binary and the
// tests render the same files regardless of the working directory.
package views

import (
	"embed"
	"net/http"

	"board-web/internal/services"

	"github.com/gofiber/template/html/v2"
)

//go:embed layouts/*.html board/*.html partials/*.html error.html
var files embed.FS

func NewEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(files), ".html")
	engine.AddFunc("pageURL", services.ListURL)
	return engine
}
