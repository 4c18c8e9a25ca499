package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/mcherald/mcherald/internal/core/entities/status"
	"github.com/mcherald/mcherald/internal/validation/validators"
)

func New() (*validator.Validate, error) {
	validate := validator.New()
	if err := validate.RegisterValidation("edition", validators.ValidateEdition); err != nil {
		return nil, err
	}
	validate.RegisterStructValidation(validators.ValidateServerStatus, status.ServerStatus{})
	return validate, nil
}

func MustNew() *validator.Validate {
	validate, err := New()
	if err != nil {
		panic(err)
	}
	return validate
}
