package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"alarqam_backend/internals/features/home/articles/dto"
	"alarqam_backend/internals/features/home/articles/model"
	helper "alarqam_backend/internals/helpers"
	"alarqam_backend/internals/helpers/oss"
	"alarqam_backend/internals/helpers/viewcache"
)

var validateArticle = helper.NewValidator()

type ArticleController struct {
	DB   *gorm.DB
	Blob *oss.OSSService // boleh nil: cleanup aset dilewati (hanya log)
}

func NewArticleController(db *gorm.DB, blob *oss.OSSService) *ArticleController {
	return &ArticleController{DB: db, Blob: blob}
}

// =============================
// 📄 Get All Articles (public)
// =============================
func (ctrl *ArticleController) GetAllArticles(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 9, 50)

	var total int64
	if err := ctrl.DB.Model(&model.ArticleModel{}).Count(&total).Error; err != nil {
		log.Printf("[ERROR] count articles: %v", err)
		viewcache.SetHeader(c, viewcache.SectionArticles)
		return helper.JsonList(c, "ok", []dto.ArticleDTO{}, nil)
	}

	var articles []model.ArticleModel
	q := ctrl.DB.Order("date DESC").Offset(paging.Offset).Limit(paging.Limit) // terbaru dulu
	if err := q.Find(&articles).Error; err != nil {
		log.Printf("[ERROR] fetch articles: %v", err)
		articles = nil
	}

	result := make([]dto.ArticleDTO, 0, len(articles))
	for _, a := range articles {
		result = append(result, dto.ToArticleDTO(a))
	}

	viewcache.SetHeader(c, viewcache.SectionArticles)
	return helper.JsonList(c, "ok", result, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// 🔍 Get Article By ID (public)
// =============================
func (ctrl *ArticleController) GetArticleByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}

	var article model.ArticleModel
	if err := ctrl.DB.First(&article, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] fetch article by id: %v", err)
		}
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.ToArticleDTO(article))
}

// =============================
// ➕ Create Article (admin)
// =============================
func (ctrl *ArticleController) CreateArticle(c *fiber.Ctx) error {
	var body dto.CreateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var article model.ArticleModel
	body.ApplyToModel(&article)

	if err := ctrl.DB.Create(&article).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat artikel: "+err.Error())
	}

	viewcache.Bump(viewcache.SectionArticles)
	return helper.JsonCreated(c, "Artikel berhasil dibuat", dto.ToArticleDTO(article))
}

// =============================
// 🔄 Update Article (admin)
// =============================
func (ctrl *ArticleController) UpdateArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}

	var body dto.UpdateArticleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateArticle.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var article model.ArticleModel
	if err := ctrl.DB.First(&article, "id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Artikel tidak ditemukan", "Gagal mengambil artikel")
	}

	body.ApplyToModel(&article)

	if err := ctrl.DB.Save(&article).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update artikel: "+err.Error())
	}

	viewcache.Bump(viewcache.SectionArticles)
	return helper.JsonUpdated(c, "Artikel berhasil diperbarui", dto.ToArticleDTO(article))
}

// =============================
// 🗑️ Delete Article (admin)
// =============================
// Two-phase: (a) hapus aset gambar best-effort, (b) hapus row.
// Gagal hapus aset hanya di-log; gagal hapus row = operasi gagal.
func (ctrl *ArticleController) DeleteArticle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Artikel tidak ditemukan")
	}

	var article model.ArticleModel
	if err := ctrl.DB.Select("id", "image_url").First(&article, "id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Artikel tidak ditemukan", "Gagal mengambil artikel")
	}

	if article.ImageURL != "" && ctrl.Blob != nil {
		if err := ctrl.Blob.DeleteByPublicURL(c.UserContext(), article.ImageURL); err != nil {
			log.Printf("[WARN] hapus aset artikel %s: %v", id, err)
		}
	}

	if err := ctrl.DB.Delete(&model.ArticleModel{}, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus artikel")
	}

	viewcache.Bump(viewcache.SectionArticles)
	return helper.JsonDeleted(c, "Artikel berhasil dihapus", nil)
}
