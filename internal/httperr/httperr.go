// Package httperr translates service-layer error kinds into Fiber errors
// so every handler maps them the same way. Unknown errors pass through to
// the app's central error handler, which logs them and answers 500.
package httperr

import (
	"github.com/go-faster/errors"
	"github.com/gofiber/fiber/v2"

	"zimlicense-backend/internal/apperr"
)

func From(err error) error {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.ErrInvalidCredentials):
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}
	return err
}
