package common

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"learnhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their JSON name so errors line up with the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateStruct runs the `validate` tags on reqData and returns per-field messages.
func ValidateStruct(reqData interface{}) map[string]string {
	fieldErrors := make(map[string]string)

	err := validate.Struct(reqData)
	if err == nil {
		return fieldErrors
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fieldErrors["body"] = "Invalid request body!"
		return fieldErrors
	}

	for _, fe := range verrs {
		fieldErrors[fe.Field()] = message(fe)
	}
	return fieldErrors
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long!", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s!", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long!", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s!", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s!", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s!", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s!", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return "Invalid email!"
	case "url":
		return fmt.Sprintf("%s must be a valid URL!", field)
	case "gtfield":
		return fmt.Sprintf("%s must be after %s!", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid!", field)
}

// Body parses the JSON body into a new T, validates it and stores it under key.
func Body[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if fieldErrors := ValidateStruct(reqData); len(fieldErrors) > 0 {
			return middleware.ValidationErrorResponse(c, fieldErrors)
		}

		c.Locals(key, reqData)
		return c.Next()
	}
}

// Query parses and validates query parameters into a new T stored under key.
func Query[T any](key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(T)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if fieldErrors := ValidateStruct(reqData); len(fieldErrors) > 0 {
			return middleware.ValidationErrorResponse(c, fieldErrors)
		}

		c.Locals(key, reqData)
		return c.Next()
	}
}

// ParamID validates the positive integer route parameter param and stores it as uint under key.
func ParamID(param, key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "ID is required!", nil)
		}

		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ID!", nil)
		}

		c.Locals(key, uint(id))
		return c.Next()
	}
}

// Pagination is the query of plain list endpoints.
type Pagination struct {
	Page  int `query:"page" json:"page" validate:"omitempty,gte=1"`
	Limit int `query:"limit" json:"limit" validate:"omitempty,gte=1,lte=100"`
}

// Paginate fills page and limit defaults and returns the row offset.
func Paginate(page, limit *int) int {
	if *page == 0 {
		*page = 1
	}
	if *limit == 0 {
		*limit = 10
	}
	return (*page - 1) * *limit
}
