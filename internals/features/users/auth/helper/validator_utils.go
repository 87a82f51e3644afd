package helper

import (
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Username sengaja dibatasi alfanumerik + underscore: karakter kutip,
// titik-koma, kurung, dan pembatas komentar SQL tertolak sejak awal
// (defense-in-depth, query tetap terparameterisasi).
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidUsername(s string) bool {
	return len(s) >= 3 && usernameRegex.MatchString(s)
}

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateLoginInput: identifier wajib, password minimal 6 karakter.
// Mengembalikan map field → pesan; nil berarti valid.
func ValidateLoginInput(identifier, password string) map[string][]string {
	errs := map[string][]string{}
	if strings.TrimSpace(identifier) == "" {
		errs["identifier"] = append(errs["identifier"], "Email atau Username wajib diisi")
	}
	if len(password) < 6 {
		errs["password"] = append(errs["password"], "Password minimal 6 karakter")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateRegisterInput: aturan signup. Password sengaja hanya wajib diisi
// (kebijakan longgar dipertahankan, lihat DESIGN.md).
func ValidateRegisterInput(fullName, userName, email, password string) map[string][]string {
	errs := map[string][]string{}
	if len(strings.TrimSpace(fullName)) < 3 {
		errs["fullName"] = append(errs["fullName"], "Nama lengkap minimal 3 karakter")
	}
	if len(userName) < 3 {
		errs["username"] = append(errs["username"], "Username minimal 3 karakter")
	}
	if userName != "" && !usernameRegex.MatchString(userName) {
		errs["username"] = append(errs["username"], "Username hanya boleh huruf, angka, dan underscore")
	}
	if !IsValidEmail(email) {
		errs["email"] = append(errs["email"], "Format email tidak valid")
	}
	if password == "" {
		errs["password"] = append(errs["password"], "Password wajib diisi")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func CheckPasswordHash(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
