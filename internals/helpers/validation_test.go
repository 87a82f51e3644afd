package helper_test

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "alarqam_backend/internals/helpers"
)

type sampleInput struct {
	Title    string `validate:"required"`
	Category string `validate:"required,oneof=kajian olahraga"`
	Goal     int64  `validate:"gte=0"`
	Email    string `validate:"omitempty,email"`
}

type urlInput struct {
	ImageURL string `validate:"required,safe_url"`
}

func TestNewValidator_SafeURL(t *testing.T) {
	v := helper.NewValidator()

	assert.NoError(t, v.Struct(&urlInput{ImageURL: "https://cdn.alarqam.or.id/x.webp"}))
	assert.NoError(t, v.Struct(&urlInput{ImageURL: "/images/x.webp"}))

	err := v.Struct(&urlInput{ImageURL: "javascript:alert(1)"})
	require.Error(t, err)
	assert.Contains(t, helper.FieldErrors(err)["imageURL"], "URL tidak aman atau formatnya salah")
}

func TestFieldErrors_MapsTagsToMessages(t *testing.T) {
	v := validator.New()
	err := v.Struct(&sampleInput{Category: "konser", Goal: -1, Email: "xx"})
	require.Error(t, err)

	out := helper.FieldErrors(err)

	assert.Contains(t, out["title"], "wajib diisi")
	assert.Contains(t, out["category"], "harus salah satu dari: kajian, olahraga")
	assert.Contains(t, out["goal"], "tidak boleh kurang dari 0")
	assert.Contains(t, out["email"], "format email tidak valid")
}

func TestFieldErrors_NonValidatorError(t *testing.T) {
	out := helper.FieldErrors(errors.New("boom"))
	assert.Equal(t, []string{"Invalid input"}, out["_"])
}

func TestFieldErrors_FieldNameLowercased(t *testing.T) {
	v := validator.New()
	err := v.Struct(&sampleInput{Title: "", Category: "kajian"})
	require.Error(t, err)

	out := helper.FieldErrors(err)
	_, hasLower := out["title"]
	_, hasUpper := out["Title"]
	assert.True(t, hasLower)
	assert.False(t, hasUpper)
}
