package serverutils

import (
	"errors"
	"fmt"

	"notepad-be/internal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

// validator.Validate caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		fe := validationErrors[0]
		return &apperror.AppError{
			Kind:    apperror.KindInvalidArgument,
			Message: fmt.Sprintf("field '%s' failed on '%s' rule", fe.Field(), fe.Tag()),
			Err:     err,
		}
	}

	return apperror.NewInternalError("validation failed", err)
}
