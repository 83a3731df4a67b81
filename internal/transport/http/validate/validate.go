package validate

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/stagepass/core-service/internal/domain"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON decodes the request body and runs struct-tag validation,
// returning a validation_error the response layer maps to HTTP 400.
func DecodeJSON(r *http.Request, dst any) error {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		return domain.ErrValidation("malformed JSON body")
	}
	return Struct(dst)
}

// Struct validates tagged fields and reports the offending ones.
func Struct(dst any) error {
	err := v.Struct(dst)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domain.ErrValidation("invalid request body")
	}

	meta := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		meta[fe.Field()] = "failed " + fe.Tag() + " validation"
	}
	return domain.ErrValidationMeta("missing or invalid fields", meta)
}
