// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
)

// Validator instance dipakai bersama oleh semua controller.
var Validate = validator.New()

// ValidationErrorsToMap mengubah error validator.v10 menjadi map field → pesan,
// siap dikirim lewat JsonValidationError.
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"Format tidak valid."}
		return out
	}
	for _, fe := range ve {
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "wajib diisi."
		case "email":
			msg = "format email tidak valid."
		case "min":
			msg = "harus minimal " + fe.Param() + " karakter."
		case "max":
			msg = "harus kurang dari " + fe.Param() + " karakter."
		case "oneof":
			msg = "harus salah satu dari: " + fe.Param() + "."
		case "gtefield":
			msg = "harus lebih besar atau sama dengan " + fe.Param() + "."
		case "gt":
			msg = "harus lebih besar dari " + fe.Param() + "."
		default:
			msg = "format tidak valid."
		}
		out[fe.Field()] = append(out[fe.Field()], msg)
	}
	return out
}
