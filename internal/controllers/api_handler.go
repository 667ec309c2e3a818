package controllers

import (
	"board-web/dto"
	"board-web/internal/inflight"
	"board-web/internal/middleware"
	"board-web/internal/services"

	"github.com/gofiber/fiber/v2"
)

// ViewIDHeader names the client widget instance a JSON request belongs to.
// Requests of one instance supersede each other; instances and browser
// tabs stay independent.
const ViewIDHeader = "X-View-Id"

var errSuperseded = fiber.NewError(fiber.StatusConflict, "superseded by a newer request")

// begin registers the request in the slot of its browser, view and widget
// instance, cancelling the request it replaces there.
func begin(c *fiber.Ctx, reg *inflight.Registry, view, key string) *inflight.Request {
	slot := middleware.BrowserIDFrom(c) + "|" + view + "|" + c.Get(ViewIDHeader)
	return reg.Begin(c.Context(), slot, key)
}

// GET /api/board/list

// GetBoardList godoc
// @Summary Board list view model
// @Description Rows, tabs and pagination for one category page
// @Tags api
// @Produce json
// @Param X-View-Id header string false "Widget instance id"
// @Param category query string false "Category key"
// @Param page query int false "1-based page"
// @Success 200 {object} services.ListView
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/board/list [get]
func GetBoardList(list *services.ListService, reg *inflight.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")
		page := c.QueryInt("page", 1)

		req := begin(c, reg, "list", list.DependencyKey(category, page))
		defer req.Done()

		view, err := list.Load(req.Context(), category, page)
		if !req.Current() {
			return errSuperseded
		}
		if err != nil {
			r := services.ReasonOf(err)
			return c.Status(r.HTTPStatus()).JSON(dto.ErrorResponse{Error: r.Notice()})
		}
		return c.JSON(view)
	}
}

// GET /api/board/:id

// GetBoardDetail godoc
// @Summary Board detail view model
// @Description Sanitized post, author block and the viewer's edit state
// @Tags api
// @Produce json
// @Param X-View-Id header string false "Widget instance id"
// @Param id path string true "Post id"
// @Success 200 {object} services.DetailView
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/board/{id} [get]
func GetBoardDetail(detail *services.DetailService, reg *inflight.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		req := begin(c, reg, "detail", id)
		defer req.Done()

		view, err := detail.Load(req.Context(), id, middleware.ViewerFrom(c))
		if !req.Current() {
			return errSuperseded
		}
		if err != nil {
			return detailError(err)
		}
		return c.JSON(view)
	}
}
