package controllers

import (
	"errors"
	"strings"

	"board-web/dto"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandler renders failed requests: JSON for /api, the error page
// otherwise.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "요청을 처리하지 못했습니다."
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Int("status", code).Msg("request failed")
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(dto.ErrorResponse{Error: msg})
	}

	c.Status(code)
	if rerr := c.Render("error", fiber.Map{
		"Title":   msg,
		"Status":  code,
		"Message": msg,
	}, mainLayout); rerr != nil {
		log.Error().Err(rerr).Msg("error page render failed")
		return c.Status(code).SendString(msg)
	}
	return nil
}
