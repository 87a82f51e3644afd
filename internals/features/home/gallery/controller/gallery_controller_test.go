package controller_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alarqam_backend/internals/features/home/gallery/controller"
)

// id yang bukan uuid harus 404 sebelum query apa pun (DB sengaja nil).
func TestGalleryMutations_MalformedIDIs404(t *testing.T) {
	ctrl := controller.NewGalleryController(nil, nil)
	app := fiber.New()
	app.Post("/gallery/:id/like", ctrl.LikeGalleryItem)
	app.Put("/gallery/:id", ctrl.UpdateGallery)
	app.Delete("/gallery/:id", ctrl.DeleteGallery)

	resp, err := app.Test(httptest.NewRequest("POST", "/gallery/xyz/like", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("PUT", "/gallery/xyz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/gallery/xyz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
