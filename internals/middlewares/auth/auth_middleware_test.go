package auth_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "alarqam_backend/internals/helpers"
	authMiddleware "alarqam_backend/internals/middlewares/auth"
)

// Request tanpa token harus ditolak 401 oleh middleware, sebelum handler
// (dan validasinya) jalan. DB sengaja nil: jalur tanpa-token tidak boleh
// menyentuh DB sama sekali.
func TestAuthMiddleware_RejectsBeforeValidation(t *testing.T) {
	app := fiber.New()

	handlerReached := false
	admin := app.Group("/a", authMiddleware.AuthMiddleware(nil))
	admin.Post("/events", func(c *fiber.Ctx) error {
		handlerReached = true
		return helper.JsonValidationError(c, map[string][]string{"title": {"wajib diisi"}})
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/a/events", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, handlerReached)

	// tidak ada envelope validasi yang bocor keluar
	body, _ := io.ReadAll(resp.Body)
	assert.NotContains(t, string(body), "errors")
	assert.NotContains(t, string(body), "wajib diisi")
}

// Cookie access_token kosong juga dihitung tanpa token.
func TestAuthMiddleware_EmptyCookieIsMissingToken(t *testing.T) {
	app := fiber.New()
	app.Get("/a/me", authMiddleware.AuthMiddleware(nil), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest("GET", "/a/me", nil)
	req.Header.Set("Cookie", "access_token=")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
