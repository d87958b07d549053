package utils

import (
	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

// Respuestas JSON uniformes: { success, message, data?, errors? }.

func Success(ctx *fiber.Ctx, status int, message string, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func Error(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func ValidationError(ctx *fiber.Ctx, err error) error {
	var errs []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, ve := range verrs {
			errs = append(errs, ve.Field()+": "+ve.Tag())
		}
	} else {
		errs = append(errs, err.Error())
	}

	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}
