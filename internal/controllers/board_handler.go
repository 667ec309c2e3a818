package controllers

import (
	"board-web/internal/services"

	"github.com/gofiber/fiber/v2"
)

const mainLayout = "layouts/main"

// GET /board

// BoardListPage godoc
// @Summary Board list page
// @Description Paginated posts of one category rendered as HTML
// @Tags board
// @Produce html
// @Param category query string false "Category key (default NOTICE)"
// @Param page query int false "1-based page (default 1)"
// @Success 200 {string} string "HTML page"
// @Router /board [get]
func BoardListPage(list *services.ListService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// a failed fetch still renders, empty and with a notice
		view, _ := list.Load(c.Context(), c.Query("category"), c.QueryInt("page", 1))
		return c.Render("board/list", fiber.Map{
			"Title": view.Title,
			"View":  view,
		}, mainLayout)
	}
}
