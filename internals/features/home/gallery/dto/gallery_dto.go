package dto

import (
	"alarqam_backend/internals/features/home/gallery/model"
	"alarqam_backend/internals/helpers/sanitize"
)

// ============================
// Response DTO
// ============================

type GalleryDTO struct {
	ID       string `json:"id"`
	Src      string `json:"src"`
	Alt      string `json:"alt"`
	Caption  string `json:"caption"`
	Category string `json:"category"`
	Likes    int    `json:"likes"`
}

// ============================
// Create & Update Request DTO
// ============================
// likes sengaja tidak ada di sini: server-maintained.

type CreateGalleryRequest struct {
	Src      string `json:"src" validate:"required,safe_url"`
	Alt      string `json:"alt" validate:"required"`
	Caption  string `json:"caption" validate:"required"`
	Category string `json:"category" validate:"required,oneof=kajian santunan outdoor festive"`
}

type UpdateGalleryRequest struct {
	Src      string `json:"src" validate:"required,safe_url"`
	Alt      string `json:"alt" validate:"required"`
	Caption  string `json:"caption" validate:"required"`
	Category string `json:"category" validate:"required,oneof=kajian santunan outdoor festive"`
}

// ============================
// Converter
// ============================

func ToGalleryDTO(m model.GalleryModel) GalleryDTO {
	return GalleryDTO{
		ID:       m.ID.String(),
		Src:      m.Src,
		Alt:      m.Alt,
		Caption:  m.Caption,
		Category: m.Category,
		Likes:    m.Likes,
	}
}

func (r CreateGalleryRequest) ApplyToModel(m *model.GalleryModel) {
	m.Src = sanitize.URL(r.Src)
	m.Alt = r.Alt
	m.Caption = r.Caption
	m.Category = r.Category
}

func (r UpdateGalleryRequest) ApplyToModel(m *model.GalleryModel) {
	CreateGalleryRequest(r).ApplyToModel(m)
}
