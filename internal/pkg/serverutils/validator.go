package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"ai-healthassist-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ParseAndValidate binds the JSON body into req and runs struct validation.
// Failures come back as apperr.ErrValidation so the error handler maps them
// to 400.
func ParseAndValidate(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return apperr.Validation("invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return apperr.Validation("invalid fields: %s", strings.Join(fields, ", "))
		}
		return apperr.Validation("invalid request")
	}
	return nil
}
