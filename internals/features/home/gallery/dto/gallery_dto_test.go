package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alarqam_backend/internals/features/home/gallery/dto"
	"alarqam_backend/internals/features/home/gallery/model"
	helper "alarqam_backend/internals/helpers"
)

var validate = helper.NewValidator()

func validCreateGallery() dto.CreateGalleryRequest {
	return dto.CreateGalleryRequest{
		Src:      "https://cdn.alarqam.or.id/gallery/kajian.webp",
		Alt:      "Suasana kajian sabtu sore",
		Caption:  "Kajian Riyadhus Shalihin",
		Category: "kajian",
	}
}

func TestCreateGalleryRequest_CategoryEnum(t *testing.T) {
	for _, cat := range []string{"kajian", "santunan", "outdoor", "festive"} {
		req := validCreateGallery()
		req.Category = cat
		assert.NoError(t, validate.Struct(&req), cat)
	}

	req := validCreateGallery()
	req.Category = "olahraga"
	assert.Error(t, validate.Struct(&req))
}

func TestCreateGalleryRequest_RequiredFields(t *testing.T) {
	req := validCreateGallery()
	require.NoError(t, validate.Struct(&req))

	req.Src = ""
	assert.Error(t, validate.Struct(&req))
}

func TestCreateGalleryRequest_UnsafeSrcRejected(t *testing.T) {
	// src wajib terisi; URL yang bakal dikosongkan sanitizer ditolak di validasi
	for _, bad := range []string{"javascript:alert(1)", "//evil.com/x.webp", "data:image/png;base64,x"} {
		req := validCreateGallery()
		req.Src = bad
		assert.Error(t, validate.Struct(&req), bad)
	}
}

func TestApplyToModel_LikesNotClientWritable(t *testing.T) {
	m := model.GalleryModel{Likes: 42}

	req := validCreateGallery()
	req.ApplyToModel(&m)

	// payload admin tidak pernah menyentuh likes
	assert.Equal(t, 42, m.Likes)
	assert.Equal(t, "Kajian Riyadhus Shalihin", m.Caption)
}

func TestApplyToModel_SanitizesSrc(t *testing.T) {
	var m model.GalleryModel

	req := validCreateGallery()
	req.Src = "javascript:alert(1)"
	req.ApplyToModel(&m)
	assert.Empty(t, m.Src)

	req.Src = "/gallery/santunan.webp"
	req.ApplyToModel(&m)
	assert.Equal(t, "/gallery/santunan.webp", m.Src)
}
