package utils

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// boardPolicy allows inline, paragraph and list formatting plus class.
var boardPolicy = newBoardPolicy()

func newBoardPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("span", "p", "strong", "em", "ul", "ol", "li", "u", "s")
	p.AllowAttrs("class").Globally()
	return p
}

// Sanitize strips a user-authored HTML fragment down to the board allow-list.
func Sanitize(content string) string {
	return boardPolicy.Sanitize(content)
}

// SanitizedHTML is Sanitize typed for direct use in templates.
func SanitizedHTML(content string) template.HTML {
	return template.HTML(boardPolicy.Sanitize(content))
}
