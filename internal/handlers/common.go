package handlers

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/proplens/proplens/internal/services"
	"github.com/proplens/proplens/internal/utils"
)

var validate = validator.New()

// currentAccount returns the account stored by the auth middleware.
func currentAccount(c *fiber.Ctx) *services.Account {
	account, _ := c.Locals("account").(*services.Account)
	return account
}

// parseID parses a positive numeric path parameter.
func parseID(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "invalid id: "+raw)
	}
	return uint(id), nil
}

// queryString returns a pointer to a query parameter value, or nil when the
// parameter is absent or blank. Blank means "no predicate", distinct from a
// present zero value on numeric parameters.
func queryString(c *fiber.Ctx, name string) *string {
	value := strings.TrimSpace(c.Query(name))
	if value == "" {
		return nil
	}
	return &value
}

// queryFloat parses an optional float query parameter.
func queryFloat(c *fiber.Ctx, name string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name+": "+raw)
	}
	return &value, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(c *fiber.Ctx, name string) (*int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid "+name+": "+raw)
	}
	return &value, nil
}

// queryPage parses limit and offset, tolerating absence and garbage.
func queryPage(c *fiber.Ctx) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit"))
	offset, _ = strconv.Atoi(c.Query("offset"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// validationErrors flattens validator output into response field errors.
func validationErrors(err error) []utils.FieldError {
	fields := make([]utils.FieldError, 0)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, ve := range verrs {
			fields = append(fields, utils.FieldError{
				Field:   ve.Field(),
				Message: "failed validation: " + ve.Tag(),
			})
		}
	}
	return fields
}
