package routes

import (
	"board-web/internal/controllers"
	"board-web/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutesAPI serves the page view models as JSON for client widgets.
func SetupRoutesAPI(app *fiber.App, s Services) {
	api := app.Group("/api", middleware.BrowserID())
	api.Get("/board/list", controllers.GetBoardList(s.List, s.Inflight))
	api.Get("/board/:id", controllers.GetBoardDetail(s.Detail, s.Inflight))
}
