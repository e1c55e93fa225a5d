// Package handler implements the HTTP layer: request binding, validation,
// authorization-aware error mapping and JSON rendering. Database access is
// delegated to the repository layer; each handler bounds its DB work with a
// request-scoped timeout.
package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// dbTimeout bounds every repository call made from a handler.
const dbTimeoutSeconds = 5

// getUserID extracts the authenticated user's ID from the echo context.
// JWTAuth stores the JWT sub claim, which the JSON decoder surfaces as a
// float64; other numeric shapes are accepted for robustness.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// parseID parses a positive numeric path parameter.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// Validator adapts go-playground/validator to Echo's Validator interface so
// handlers can call c.Validate on bound request structs.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
