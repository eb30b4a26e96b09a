package business

import (
	"github.com/go-playground/validator/v10"

	"github.com/Agurato/animeta/internal/infrastructure"
	"github.com/Agurato/animeta/internal/model"
)

var validate = validator.New()

// ValidateTitle checks a Title against the struct tags of the model package
func ValidateTitle(title *model.Title) error {
	if err := validate.Struct(title); err != nil {
		return &infrastructure.MalformedResponseError{
			Reason: "title does not match schema",
			Err:    err,
		}
	}
	return nil
}
