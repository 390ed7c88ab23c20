package middleware

import (
	"errors"

	"learnhub/services"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, fields map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", fields)
}

// StatusFor maps a lifecycle error kind to its HTTP status.
func StatusFor(kind services.Kind) int {
	switch kind {
	case services.KindNotFound:
		return fiber.StatusNotFound
	case services.KindForbidden:
		return fiber.StatusForbidden
	case services.KindConflict, services.KindCapacityExceeded, services.KindInvalidState:
		return fiber.StatusConflict
	case services.KindValidation:
		return fiber.StatusUnprocessableEntity
	}
	return fiber.StatusInternalServerError
}

// ErrorResponse renders err. Unexpected errors are logged and hidden from the client.
func ErrorResponse(c *fiber.Ctx, err error) error {
	var appErr *services.Error
	if errors.As(err, &appErr) {
		if appErr.Kind == services.KindValidation {
			return ValidationErrorResponse(c, appErr.Fields)
		}
		return JsonResponse(c, StatusFor(appErr.Kind), false, appErr.Message, fiber.Map{"error": appErr.Kind.String()})
	}

	utils.Logger.Error("Request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Any("request_id", c.Locals("requestid")),
		zap.Error(err),
	)
	return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong, please try again!", nil)
}
