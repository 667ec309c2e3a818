package controllers

import (
	"errors"

	"board-web/internal/middleware"
	"board-web/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// GET /board/detail/:id

// BoardDetailPage godoc
// @Summary Board detail page
// @Description One post with author block; the author may switch it into edit mode
// @Tags board
// @Produce html
// @Param id path string true "Post id"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /board/detail/{id} [get]
func BoardDetailPage(detail *services.DetailService, tokens *middleware.FormTokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := detail.Load(c.Context(), c.Params("id"), middleware.ViewerFrom(c))
		if err != nil {
			return detailError(err)
		}
		return renderDetail(c, view, tokens, fiber.StatusOK)
	}
}

// POST /board/detail/:id/edit

// BoardEnterEdit godoc
// @Summary Switch a post into edit mode
// @Tags board
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path string true "Post id"
// @Param token formData string true "Form token"
// @Success 200 {string} string "HTML page"
// @Failure 403 {object} dto.ErrorResponse
// @Router /board/detail/{id}/edit [post]
func BoardEnterEdit(detail *services.DetailService, tokens *middleware.FormTokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := detail.EnterEdit(c.Context(), c.Params("id"), middleware.ViewerFrom(c))
		if err != nil {
			return detailError(err)
		}
		return renderDetail(c, view, tokens, fiber.StatusOK)
	}
}

// POST /board/detail/:id/cancel

// BoardCancelEdit godoc
// @Summary Leave edit mode without saving
// @Tags board
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path string true "Post id"
// @Param token formData string true "Form token"
// @Success 200 {string} string "HTML page"
// @Failure 403 {object} dto.ErrorResponse
// @Router /board/detail/{id}/cancel [post]
func BoardCancelEdit(detail *services.DetailService, tokens *middleware.FormTokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, err := detail.Cancel(c.Context(), c.Params("id"), middleware.ViewerFrom(c))
		if err != nil {
			return detailError(err)
		}
		return renderDetail(c, view, tokens, fiber.StatusOK)
	}
}

// POST /board/detail/:id/save

// BoardSaveEdit godoc
// @Summary Save the edited title and body
// @Description On failure the page stays in edit mode with the attempted values and a notice
// @Tags board
// @Accept x-www-form-urlencoded
// @Produce html
// @Param id path string true "Post id"
// @Param title formData string true "Title"
// @Param body formData string false "Body HTML"
// @Param token formData string true "Form token"
// @Success 200 {string} string "HTML page"
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {string} string "HTML page in edit mode"
// @Router /board/detail/{id}/save [post]
func BoardSaveEdit(detail *services.DetailService, tokens *middleware.FormTokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		view, err := detail.Save(c.Context(), id, middleware.ViewerFrom(c), c.FormValue("title"), c.FormValue("body"))
		if err != nil {
			var f *services.Failure
			if view != nil && errors.As(err, &f) {
				return renderDetail(c, view, tokens, f.Reason.HTTPStatus())
			}
			return detailError(err)
		}
		return renderDetail(c, view, tokens, fiber.StatusOK)
	}
}

func renderDetail(c *fiber.Ctx, view *services.DetailView, tokens *middleware.FormTokens, status int) error {
	token := ""
	if view.CanEdit || view.Editing() {
		t, err := tokens.Issue(middleware.BrowserIDFrom(c), view.PostID)
		if err != nil {
			return err
		}
		token = t
	}
	c.Status(status)
	return c.Render("board/detail", fiber.Map{
		"Title": view.Title,
		"View":  view,
		"Token": token,
	}, mainLayout)
}

func detailError(err error) error {
	switch {
	case errors.Is(err, services.ErrNotAuthor):
		return fiber.NewError(fiber.StatusForbidden, "작성자만 수정할 수 있습니다.")
	case errors.Is(err, services.ErrNotEditing):
		return fiber.NewError(fiber.StatusConflict, "수정 중인 게시글이 아닙니다.")
	}
	if r := services.ReasonOf(err); r != "" {
		if r != services.ReasonNotFound {
			log.Error().Err(err).Msg("board detail failed")
		}
		return fiber.NewError(r.HTTPStatus(), r.Notice())
	}
	return err
}
