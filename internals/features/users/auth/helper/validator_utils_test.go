package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidUsername(t *testing.T) {
	assert.True(t, IsValidUsername("user_123"))
	assert.True(t, IsValidUsername("Admin"))

	// karakter injeksi tertolak
	for _, bad := range []string{
		"user'", `user"`, "user;", "user--", "user/", "user*",
		`user\`, "user=", "user<", "user>", "user(", "user)",
		"us er", "ab", "",
	} {
		assert.False(t, IsValidUsername(bad), "input: %q", bad)
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("takmir@alarqam.or.id"))
	assert.False(t, IsValidEmail("bukan-email"))
	assert.False(t, IsValidEmail("a@b"))
}

func TestValidateLoginInput(t *testing.T) {
	// valid
	assert.Nil(t, ValidateLoginInput("admin", "rahasia123"))

	// identifier kosong
	errs := ValidateLoginInput("", "rahasia123")
	require.NotNil(t, errs)
	assert.Contains(t, errs["identifier"], "Email atau Username wajib diisi")

	// password terlalu pendek
	errs = ValidateLoginInput("admin", "12345")
	require.NotNil(t, errs)
	assert.Contains(t, errs["password"], "Password minimal 6 karakter")

	// keduanya
	errs = ValidateLoginInput("  ", "x")
	require.Len(t, errs, 2)
}

func TestValidateRegisterInput(t *testing.T) {
	assert.Nil(t, ValidateRegisterInput("Ahmad Fulan", "ahmad_f", "ahmad@contoh.com", "p"))

	errs := ValidateRegisterInput("Al", "a'; --", "salah", "")
	require.NotNil(t, errs)
	assert.NotEmpty(t, errs["fullName"])
	assert.NotEmpty(t, errs["username"])
	assert.NotEmpty(t, errs["email"])
	assert.NotEmpty(t, errs["password"])
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)
	assert.NoError(t, CheckPasswordHash(hash, "rahasia123"))
	assert.Error(t, CheckPasswordHash(hash, "salah"))
}
