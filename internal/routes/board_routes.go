package routes

import (
	"board-web/internal/controllers"
	"board-web/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutesBoard(app *fiber.App, s Services) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/board", fiber.StatusFound)
	})

	board := app.Group("/board", middleware.BrowserID(), middleware.MinifyHTML())
	board.Get("/", controllers.BoardListPage(s.List))
	board.Get("/detail/:id", controllers.BoardDetailPage(s.Detail, s.Tokens))

	token := middleware.RequireFormToken(s.Tokens)
	board.Post("/detail/:id/edit", token, controllers.BoardEnterEdit(s.Detail, s.Tokens))
	board.Post("/detail/:id/cancel", token, controllers.BoardCancelEdit(s.Detail, s.Tokens))
	board.Post("/detail/:id/save", token, controllers.BoardSaveEdit(s.Detail, s.Tokens))
}
