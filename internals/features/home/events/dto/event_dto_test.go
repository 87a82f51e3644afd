package dto_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alarqam_backend/internals/features/home/events/dto"
	"alarqam_backend/internals/features/home/events/model"
	helper "alarqam_backend/internals/helpers"
)

var validate = helper.NewValidator()

func validCreateEvent() dto.CreateEventRequest {
	return dto.CreateEventRequest{
		Title:       "Kajian Sabtu Sore",
		Date:        "2025-01-25",
		Time:        "16:00 WIB",
		Location:    "Masjid Al Arqam",
		Category:    "kajian",
		Description: "<p>Kajian rutin</p>",
	}
}

func TestCreateEventRequest_Valid(t *testing.T) {
	req := validCreateEvent()
	require.NoError(t, validate.Struct(&req))
}

func TestCreateEventRequest_CategoryEnum(t *testing.T) {
	for _, cat := range []string{"kajian", "olahraga", "sosial", "lainnya"} {
		req := validCreateEvent()
		req.Category = cat
		assert.NoError(t, validate.Struct(&req), cat)
	}

	req := validCreateEvent()
	req.Category = "konser"
	assert.Error(t, validate.Struct(&req))

	req.Category = ""
	assert.Error(t, validate.Struct(&req))
}

func TestCreateEventRequest_RequiredFields(t *testing.T) {
	req := validCreateEvent()
	req.Title = ""
	assert.Error(t, validate.Struct(&req))

	req = validCreateEvent()
	req.Description = ""
	assert.Error(t, validate.Struct(&req))

	// imageUrl opsional
	req = validCreateEvent()
	req.ImageURL = ""
	assert.NoError(t, validate.Struct(&req))

	// tapi kalau diisi, harus URL yang aman
	req.ImageURL = "javascript:alert(1)"
	assert.Error(t, validate.Struct(&req))
}

func TestApplyToModel_SanitizesDescription(t *testing.T) {
	req := validCreateEvent()
	req.Description = `<p>aman</p><script>alert(1)</script>`

	var m model.EventModel
	req.ApplyToModel(&m)

	assert.Contains(t, m.Description, "<p>aman</p>")
	assert.NotContains(t, m.Description, "<script>")
	assert.NotContains(t, m.Description, "alert(1)")
}

func TestApplyToModel_RejectsUnsafeImageURL(t *testing.T) {
	req := validCreateEvent()
	req.ImageURL = "javascript:alert(1)"

	var m model.EventModel
	req.ApplyToModel(&m)
	assert.Empty(t, m.ImageURL)

	req.ImageURL = "https://cdn.alarqam.or.id/images/kajian.webp"
	req.ApplyToModel(&m)
	assert.Equal(t, "https://cdn.alarqam.or.id/images/kajian.webp", m.ImageURL)
}

func TestToEventDTO_CamelCaseMapping(t *testing.T) {
	id := uuid.New()
	m := model.EventModel{
		ID:          id,
		Title:       "Futsal Cup",
		Date:        "2025-02-02",
		Time:        "08:00 WIB",
		Location:    "GOR Sejahtera",
		Category:    model.EventCategoryOlahraga,
		Description: "<p>match</p>",
		ImageURL:    "/images/futsal.jpg",
	}

	got := dto.ToEventDTO(m)
	assert.Equal(t, id.String(), got.ID)
	assert.Equal(t, "Futsal Cup", got.Title)
	assert.Equal(t, "/images/futsal.jpg", got.ImageURL)
}
