// file: internals/helpers/validation.go
package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"alarqam_backend/internals/helpers/sanitize"
)

// NewValidator membuat instance validator dengan rule tambahan aplikasi.
// `safe_url`: nilai non-kosong harus lolos sanitize.URL — URL yang akan
// dikosongkan sanitizer ditolak di sini supaya field wajib tidak pernah
// tersimpan kosong secara diam-diam.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("safe_url", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || sanitize.URL(s) != ""
	})
	return v
}

// FieldErrors mengubah validator.ValidationErrors menjadi map field → pesan,
// satu field bisa punya lebih dari satu pelanggaran.
func FieldErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"Invalid input"}
		return out
	}
	for _, fe := range ve {
		field := lowerFirst(fe.Field())
		out[field] = append(out[field], messageForTag(fe))
	}
	return out
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "min":
		return "minimal " + fe.Param() + " karakter"
	case "max":
		return "maksimal " + fe.Param() + " karakter"
	case "email":
		return "format email tidak valid"
	case "oneof":
		return "harus salah satu dari: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "gte":
		return "tidak boleh kurang dari " + fe.Param()
	case "url":
		return "format URL tidak valid"
	case "safe_url":
		return "URL tidak aman atau formatnya salah"
	case "alphanum":
		return "hanya boleh huruf dan angka"
	default:
		return "tidak valid (" + fe.Tag() + ")"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
