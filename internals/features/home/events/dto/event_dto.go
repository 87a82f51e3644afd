package dto

import (
	"alarqam_backend/internals/features/home/events/model"
	"alarqam_backend/internals/helpers/sanitize"
)

// ============================
// Response DTO
// ============================
// JSON memakai camelCase (konvensi aplikasi); kolom DB snake_case.
// Konverter di bawah adalah satu-satunya titik translasi dua arah.

type EventDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ============================
// Create & Update Request DTO
// ============================

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=kajian olahraga sosial lainnya"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,safe_url"`
}

type UpdateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Category    string `json:"category" validate:"required,oneof=kajian olahraga sosial lainnya"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,safe_url"`
}

// ============================
// Converter
// ============================

func ToEventDTO(m model.EventModel) EventDTO {
	return EventDTO{
		ID:          m.ID.String(),
		Title:       m.Title,
		Date:        m.Date,
		Time:        m.Time,
		Location:    m.Location,
		Category:    m.Category,
		Description: m.Description,
		ImageURL:    m.ImageURL,
	}
}

// ApplyToModel menyalin request ke model. Deskripsi (HTML dari editor)
// disanitasi di sini, URL gambar ditolak jadi kosong kalau tidak aman.
func (r CreateEventRequest) ApplyToModel(m *model.EventModel) {
	m.Title = r.Title
	m.Date = r.Date
	m.Time = r.Time
	m.Location = r.Location
	m.Category = r.Category
	m.Description = sanitize.HTML(r.Description)
	m.ImageURL = sanitize.URL(r.ImageURL)
}

func (r UpdateEventRequest) ApplyToModel(m *model.EventModel) {
	CreateEventRequest(r).ApplyToModel(m)
}
