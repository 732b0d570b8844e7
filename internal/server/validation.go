package server

import (
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// plaintext rejects strings that are not valid UTF-8; the scoring pipeline
// assumes well-formed text and binary garbage should fail at the boundary.
func plaintext(fl validator.FieldLevel) bool {
	return utf8.ValidString(fl.Field().String())
}

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		// Registration only fails for an empty tag name.
		_ = v.RegisterValidation("plaintext", plaintext)
	}
}
