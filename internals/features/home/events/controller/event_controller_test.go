package controller_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alarqam_backend/internals/features/home/events/controller"
)

// id yang bukan uuid harus 404 sebelum query apa pun (DB sengaja nil:
// kalau handler menyentuh DB, test ini panic).
func TestEventMutations_MalformedIDIs404(t *testing.T) {
	ctrl := controller.NewEventController(nil)
	app := fiber.New()
	app.Put("/events/:id", ctrl.UpdateEvent)
	app.Delete("/events/:id", ctrl.DeleteEvent)

	resp, err := app.Test(httptest.NewRequest("PUT", "/events/bukan-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("DELETE", "/events/bukan-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
