package controller_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alarqam_backend/internals/features/home/articles/controller"
)

// id yang bukan uuid harus 404 sebelum query apa pun (DB sengaja nil).
func TestArticleMutations_MalformedIDIs404(t *testing.T) {
	ctrl := controller.NewArticleController(nil, nil)
	app := fiber.New()
	app.Put("/articles/:id", ctrl.UpdateArticle)
	app.Delete("/articles/:id", ctrl.DeleteArticle)

	resp, err := app.Test(httptest.NewRequest("PUT", "/articles/123", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/articles/123", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
