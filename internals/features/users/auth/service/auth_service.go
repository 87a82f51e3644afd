// internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"strings"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"alarqam_backend/internals/configs"
	authHelper "alarqam_backend/internals/features/users/auth/helper"
	authRepo "alarqam_backend/internals/features/users/auth/repository"
	userModel "alarqam_backend/internals/features/users/user/model"
	helpers "alarqam_backend/internals/helpers"
)

const accessTTLDefault = 24 * time.Hour

/* ==========================
   LOGIN (username/email + password)
========================== */

func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	input.Identifier = strings.TrimSpace(input.Identifier)

	// 1) Validasi lokal dulu — tanpa query ke DB kalau gagal
	if errs := authHelper.ValidateLoginInput(input.Identifier, input.Password); errs != nil {
		return helpers.JsonValidationError(c, errs)
	}

	// 2) Identifier tanpa '@' adalah username: resolve ke email terdaftar.
	//    Username tak dikenal gagal dengan pesan spesifik, tanpa cek kredensial.
	var (
		user *userModel.UserModel
		err  error
	)
	if strings.Contains(input.Identifier, "@") {
		user, err = authRepo.FindUserByEmail(db, input.Identifier)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Email/Username atau password salah.")
		}
	} else {
		user, err = authRepo.FindUserByUsername(db, input.Identifier)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helpers.JsonError(c, fiber.StatusUnauthorized, "Username tidak ditemukan atau password salah.")
			}
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
		}
	}

	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	// 3) Verifikasi kredensial
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email/Username atau password salah.")
	}

	token, expiredAt, err := createAccessToken(user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	setAccessCookie(c, token, expiredAt)
	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"expired_at":   expiredAt,
		"user":         publicUser(user),
	})
}

/* ==========================
   LOGIN GOOGLE (ID token)
========================== */

func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		IDToken string `json:"id_token"`
	}
	if err := c.BodyParser(&input); err != nil || strings.TrimSpace(input.IDToken) == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "id_token wajib diisi")
	}
	if configs.GoogleClientID == "" {
		return helpers.JsonError(c, fiber.StatusServiceUnavailable, "Login Google tidak aktif")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(input.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(input.IDToken)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	// Hanya akun yang sudah terdaftar yang boleh masuk dashboard.
	user, err := authRepo.FindUserByEmail(db, claimSet.Email)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Akun Google belum terdaftar sebagai admin")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	token, expiredAt, err := createAccessToken(user)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	setAccessCookie(c, token, expiredAt)
	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"expired_at":   expiredAt,
		"user":         publicUser(user),
	})
}

/* ==========================
   REGISTER
========================== */

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input struct {
		FullName        string `json:"full_name"`
		UserName        string `json:"user_name"`
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirm_password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	input.FullName = strings.TrimSpace(input.FullName)
	input.UserName = strings.TrimSpace(input.UserName)
	input.Email = strings.TrimSpace(input.Email)

	if errs := authHelper.ValidateRegisterInput(input.FullName, input.UserName, input.Email, input.Password); errs != nil {
		return helpers.JsonValidationError(c, errs)
	}
	if input.Password != input.ConfirmPassword {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Konfirmasi password tidak cocok.")
	}

	// Cek username sudah dipakai atau belum
	if _, err := authRepo.FindUserByUsername(db, input.UserName); err == nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Username sudah digunakan. Pilih username lain.")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses pendaftaran")
	}

	hashed, err := authHelper.HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		FullName: input.FullName,
		UserName: input.UserName,
		Email:    input.Email,
		Password: hashed,
		IsActive: true,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		log.Printf("[ERROR] create user: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat akun")
	}

	return helpers.JsonCreated(c, "Registrasi berhasil! Silakan login.", publicUser(&user))
}

/* ==========================
   LOGOUT + ME
========================== */

func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw, _ := c.Locals("raw_token").(string)
	if raw == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	// Blacklist sampai exp token; token tanpa exp diblacklist 24 jam.
	expiredAt := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, _, err := parser.ParseUnverified(raw, claims); err == nil {
		if expFloat, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(expFloat), 0)
		}
	}
	if err := authRepo.BlacklistToken(db, raw, expiredAt); err != nil {
		log.Printf("[ERROR] blacklist token: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal logout")
	}

	c.ClearCookie("access_token")
	return helpers.JsonOK(c, "Logout berhasil", nil)
}

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userIDStr, _ := c.Locals("user_id").(string)
	if userIDStr == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid user id")
	}

	user, err := authRepo.FindUserByID(db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Fallback dari klaim token saat row profil belum ada
			name, _ := c.Locals("user_name").(string)
			if name == "" {
				name = "admin"
			}
			return helpers.JsonOK(c, "ok", fiber.Map{
				"full_name": "Admin",
				"user_name": name,
			})
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helpers.JsonOK(c, "ok", publicUser(user))
}

/* ==========================
   Small helpers
========================== */

func createAccessToken(user *userModel.UserModel) (string, time.Time, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET belum diset")
	}
	expiredAt := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"sub":       user.ID.String(),
		"user_name": user.UserName,
		"iat":       time.Now().Unix(),
		"exp":       expiredAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiredAt, nil
}

func setAccessCookie(c *fiber.Ctx, token string, expiredAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiredAt,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}

func publicUser(u *userModel.UserModel) fiber.Map {
	return fiber.Map{
		"id":        u.ID,
		"full_name": u.FullName,
		"user_name": u.UserName,
		"email":     u.Email,
	}
}
