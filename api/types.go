package api

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/anand7670/portfolio-backend/errs"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	authHandler      authHandler
	portfolioHandler portfolioHandler
	projectHandler   projectHandler
	contactHandler   contactHandler
}

// validate checks request payload bounds declared as struct tags
var validate = validator.New()

// validationError converts the first failed rule into a field-level ApiErr
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
		if fe.Tag() == "required" {
			return errs.NewMissingRequiredFieldError(field)
		}
		return errs.NewInvalidFieldError(field, fe.Tag())
	}
	return errs.NewBadRequestError(err.Error())
}

// ErrorResponse represents an error response from the API
type ErrorResponse struct {
	Error   string `json:"error" example:"Internal Server Error"`
	Status  string `json:"status" example:"error"`
	Field   string `json:"field,omitempty" example:"title"`
	Details string `json:"details,omitempty" example:"Additional error details"`
}
