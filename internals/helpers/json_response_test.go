package helper_test

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	helper "alarqam_backend/internals/helpers"
)

func TestJsonDBError_NotFoundVsBackendFault(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return helper.JsonDBError(c, gorm.ErrRecordNotFound, "Baris tidak ditemukan", "Gagal mengambil baris")
	})
	app.Get("/down", func(c *fiber.Ctx) error {
		return helper.JsonDBError(c, errors.New("dial tcp 10.0.0.1:5432: connection refused"), "Baris tidak ditemukan", "Gagal mengambil baris")
	})

	// baris tidak ada = 404 biasa
	resp, err := app.Test(httptest.NewRequest("GET", "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")

	// DB tumbang = fault backend, bukan 404
	resp, err = app.Test(httptest.NewRequest("GET", "/down", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	body, _ = io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INTERNAL_ERROR")
}

func TestResolvePaging(t *testing.T) {
	app := fiber.New()
	var got helper.Paging
	app.Get("/", func(c *fiber.Ctx) error {
		got = helper.ResolvePaging(c, 9, 50)
		return c.SendStatus(fiber.StatusOK)
	})

	_, err := app.Test(httptest.NewRequest("GET", "/?page=3&per_page=10", nil))
	require.NoError(t, err)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 10, got.PerPage)
	assert.Equal(t, 20, got.Offset)

	// alias ?limit= dan clamp ke maxPerPage
	_, err = app.Test(httptest.NewRequest("GET", "/?limit=500", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, 50, got.PerPage)

	// tanpa query: default
	_, err = app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 9, got.PerPage)
	assert.Equal(t, 0, got.Offset)

	// page negatif dinormalisasi
	_, err = app.Test(httptest.NewRequest("GET", "/?page=-2", nil))
	require.NoError(t, err)
	assert.Equal(t, 1, got.Page)
}

func TestBuildPaginationFromPage(t *testing.T) {
	p := helper.BuildPaginationFromPage(25, 2, 10)
	assert.Equal(t, 3, p.TotalPages)
	assert.Equal(t, int64(25), p.Total)
	assert.True(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = helper.BuildPaginationFromPage(0, 1, 10)
	assert.Equal(t, 1, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
}
