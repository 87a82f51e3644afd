package dto

import (
	"alarqam_backend/internals/features/home/articles/model"
	"alarqam_backend/internals/helpers/sanitize"
)

// ============================
// Response DTO
// ============================
// Kolom author_* di DB dipetakan balik jadi objek author bersarang
// (konvensi aplikasi camelCase ↔ konvensi simpanan snake_case).

type ArticleAuthorDTO struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl"`
}

type ArticleDTO struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Excerpt     string           `json:"excerpt"`
	Content     string           `json:"content,omitempty"`
	Category    string           `json:"category"`
	Date        string           `json:"date"`
	ReadingTime string           `json:"readingTime"`
	ImageURL    string           `json:"imageUrl"`
	Author      ArticleAuthorDTO `json:"author"`
}

// ============================
// Create & Update Request DTO
// ============================
// imageUrl wajib HANYA saat create; update boleh tanpa gambar baru.

type CreateArticleRequest struct {
	Title       string           `json:"title" validate:"required"`
	Excerpt     string           `json:"excerpt" validate:"required"`
	Content     string           `json:"content" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	Date        string           `json:"date" validate:"required"`
	ReadingTime string           `json:"readingTime" validate:"required"`
	ImageURL    string           `json:"imageUrl" validate:"required,safe_url"`
	Author      ArticleAuthorDTO `json:"author"`
}

type UpdateArticleRequest struct {
	Title       string           `json:"title" validate:"required"`
	Excerpt     string           `json:"excerpt" validate:"required"`
	Content     string           `json:"content" validate:"required"`
	Category    string           `json:"category" validate:"required"`
	Date        string           `json:"date" validate:"required"`
	ReadingTime string           `json:"readingTime" validate:"required"`
	ImageURL    string           `json:"imageUrl" validate:"omitempty,safe_url"`
	Author      ArticleAuthorDTO `json:"author"`
}

// ============================
// Converter
// ============================

func ToArticleDTO(m model.ArticleModel) ArticleDTO {
	return ArticleDTO{
		ID:          m.ID.String(),
		Title:       m.Title,
		Excerpt:     m.Excerpt,
		Content:     m.Content,
		Category:    m.Category,
		Date:        m.Date,
		ReadingTime: m.ReadingTime,
		ImageURL:    m.ImageURL,
		Author: ArticleAuthorDTO{
			Name:      m.AuthorName,
			Role:      m.AuthorRole,
			AvatarURL: m.AuthorAvatarURL,
		},
	}
}

func (r CreateArticleRequest) ApplyToModel(m *model.ArticleModel) {
	m.Title = r.Title
	m.Excerpt = r.Excerpt
	m.Content = sanitize.HTML(r.Content)
	m.Category = r.Category
	m.Date = r.Date
	m.ReadingTime = r.ReadingTime
	m.ImageURL = sanitize.URL(r.ImageURL)
	m.AuthorName = r.Author.Name
	m.AuthorRole = r.Author.Role
	m.AuthorAvatarURL = sanitize.URL(r.Author.AvatarURL)
}

func (r UpdateArticleRequest) ApplyToModel(m *model.ArticleModel) {
	m.Title = r.Title
	m.Excerpt = r.Excerpt
	m.Content = sanitize.HTML(r.Content)
	m.Category = r.Category
	m.Date = r.Date
	m.ReadingTime = r.ReadingTime
	if r.ImageURL != "" {
		m.ImageURL = sanitize.URL(r.ImageURL)
	}
	m.AuthorName = r.Author.Name
	m.AuthorRole = r.Author.Role
	m.AuthorAvatarURL = sanitize.URL(r.Author.AvatarURL)
}
