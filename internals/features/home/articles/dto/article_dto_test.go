package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alarqam_backend/internals/features/home/articles/dto"
	"alarqam_backend/internals/features/home/articles/model"
	helper "alarqam_backend/internals/helpers"
)

var validate = helper.NewValidator()

func validCreateArticle() dto.CreateArticleRequest {
	return dto.CreateArticleRequest{
		Title:       "Membangun Generasi Rabbani",
		Excerpt:     "Tantangan dakwah digital.",
		Content:     "<p>isi artikel</p>",
		Category:    "Dakwah",
		Date:        "12 Jan 2026",
		ReadingTime: "5 menit baca",
		ImageURL:    "/images/article-1.jpg",
		Author: dto.ArticleAuthorDTO{
			Name:      "Ustadz Hanan",
			Role:      "Pembina Risma",
			AvatarURL: "/avatars/ustadz-hanan.jpg",
		},
	}
}

func TestCreateArticleRequest_ImageURLRequired(t *testing.T) {
	req := validCreateArticle()
	require.NoError(t, validate.Struct(&req))

	req.ImageURL = ""
	assert.Error(t, validate.Struct(&req))
}

func TestCreateArticleRequest_UnsafeImageURLRejected(t *testing.T) {
	// URL yang akan dikosongkan sanitizer tidak boleh lolos sebagai "terisi":
	// artikel baru wajib tersimpan dengan imageUrl yang benar-benar ada.
	for _, bad := range []string{"javascript:alert(1)", "data:text/html,x", "//evil.com/x.jpg"} {
		req := validCreateArticle()
		req.ImageURL = bad
		assert.Error(t, validate.Struct(&req), bad)
	}
}

func TestUpdateArticleRequest_UnsafeImageURLRejected(t *testing.T) {
	req := dto.UpdateArticleRequest{
		Title:       "Judul",
		Excerpt:     "Ringkasan",
		Content:     "<p>isi</p>",
		Category:    "Ibadah",
		Date:        "01 Jan 2026",
		ReadingTime: "6 menit baca",
		ImageURL:    "javascript:alert(1)",
	}
	assert.Error(t, validate.Struct(&req))
}

func TestUpdateArticleRequest_ImageURLOptional(t *testing.T) {
	req := dto.UpdateArticleRequest{
		Title:       "Judul",
		Excerpt:     "Ringkasan",
		Content:     "<p>isi</p>",
		Category:    "Ibadah",
		Date:        "01 Jan 2026",
		ReadingTime: "6 menit baca",
	}
	assert.NoError(t, validate.Struct(&req))
}

func TestUpdateApplyToModel_KeepsExistingImage(t *testing.T) {
	m := model.ArticleModel{ImageURL: "/images/lama.jpg"}

	req := dto.UpdateArticleRequest{
		Title:       "Judul Baru",
		Excerpt:     "Ringkasan",
		Content:     "<p>isi</p>",
		Category:    "Ibadah",
		Date:        "01 Jan 2026",
		ReadingTime: "6 menit baca",
		ImageURL:    "",
	}
	req.ApplyToModel(&m)

	assert.Equal(t, "/images/lama.jpg", m.ImageURL)
	assert.Equal(t, "Judul Baru", m.Title)
}

func TestApplyToModel_SanitizesContent(t *testing.T) {
	req := validCreateArticle()
	req.Content = `<p>halal</p><img src=x onerror="alert(1)"><script>evil()</script>`

	var m model.ArticleModel
	req.ApplyToModel(&m)

	assert.Contains(t, m.Content, "<p>halal</p>")
	assert.NotContains(t, m.Content, "onerror")
	assert.NotContains(t, m.Content, "<script>")
}

func TestApplyToModel_AuthorFlattening(t *testing.T) {
	req := validCreateArticle()

	var m model.ArticleModel
	req.ApplyToModel(&m)

	assert.Equal(t, "Ustadz Hanan", m.AuthorName)
	assert.Equal(t, "Pembina Risma", m.AuthorRole)
	assert.Equal(t, "/avatars/ustadz-hanan.jpg", m.AuthorAvatarURL)

	got := dto.ToArticleDTO(m)
	assert.Equal(t, "Ustadz Hanan", got.Author.Name)
	assert.Equal(t, "/avatars/ustadz-hanan.jpg", got.Author.AvatarURL)
}
