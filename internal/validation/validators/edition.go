package validators

import (
	"github.com/go-playground/validator/v10"

	"github.com/mcherald/mcherald/internal/core/entities/protocol"
)

func ValidateEdition(fl validator.FieldLevel) bool {
	switch protocol.Edition(fl.Field().Int()) {
	case protocol.EditionUnknown, protocol.EditionJava, protocol.EditionBedrock:
		return true
	default:
		return false
	}
}
