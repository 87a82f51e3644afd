package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"alarqam_backend/internals/features/home/gallery/dto"
	"alarqam_backend/internals/features/home/gallery/model"
	helper "alarqam_backend/internals/helpers"
	"alarqam_backend/internals/helpers/oss"
	"alarqam_backend/internals/helpers/viewcache"
)

var validateGallery = helper.NewValidator()

type GalleryController struct {
	DB   *gorm.DB
	Blob *oss.OSSService
}

func NewGalleryController(db *gorm.DB, blob *oss.OSSService) *GalleryController {
	return &GalleryController{DB: db, Blob: blob}
}

// =============================
// 📄 Get All Galleries (public)
// =============================
func (ctrl *GalleryController) GetAllGalleries(c *fiber.Ctx) error {
	var items []model.GalleryModel
	if err := ctrl.DB.Order("created_at DESC").Find(&items).Error; err != nil {
		log.Printf("[ERROR] fetch galleries: %v", err)
		items = nil
	}

	result := make([]dto.GalleryDTO, 0, len(items))
	for _, g := range items {
		result = append(result, dto.ToGalleryDTO(g))
	}

	viewcache.SetHeader(c, viewcache.SectionGallery)
	return helper.JsonList(c, "ok", result, nil)
}

// =============================
// 🕐 Get Latest Gallery Item (public)
// =============================
func (ctrl *GalleryController) GetLatestGalleryItem(c *fiber.Ctx) error {
	var item model.GalleryModel
	err := ctrl.DB.Order("created_at DESC").First(&item).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] fetch latest gallery item: %v", err)
		}
		return helper.JsonOK(c, "ok", nil)
	}
	return helper.JsonOK(c, "ok", dto.ToGalleryDTO(item))
}

// =============================
// ❤️ Like Gallery Item (public)
// =============================
func (ctrl *GalleryController) LikeGalleryItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
	}

	res := ctrl.DB.Model(&model.GalleryModel{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + 1"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan like")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
	}

	return helper.JsonUpdated(c, "Like tersimpan", nil)
}

// =============================
// ➕ Create Gallery Item (admin)
// =============================
func (ctrl *GalleryController) CreateGallery(c *fiber.Ctx) error {
	var body dto.CreateGalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var item model.GalleryModel
	body.ApplyToModel(&item)

	if err := ctrl.DB.Create(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah foto: "+err.Error())
	}

	viewcache.Bump(viewcache.SectionGallery)
	return helper.JsonCreated(c, "Foto berhasil ditambahkan", dto.ToGalleryDTO(item))
}

// =============================
// 🔄 Update Gallery Item (admin)
// =============================
func (ctrl *GalleryController) UpdateGallery(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
	}

	var body dto.UpdateGalleryRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateGallery.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var item model.GalleryModel
	if err := ctrl.DB.First(&item, "id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Foto tidak ditemukan", "Gagal mengambil foto")
	}

	body.ApplyToModel(&item)

	if err := ctrl.DB.Save(&item).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update foto: "+err.Error())
	}

	viewcache.Bump(viewcache.SectionGallery)
	return helper.JsonUpdated(c, "Foto berhasil diperbarui", dto.ToGalleryDTO(item))
}

// =============================
// 🗑️ Delete Gallery Item (admin)
// =============================
// Two-phase seperti artikel. Row yang tidak ketemu = 404; URL aset yang
// tidak bisa diurai tetap lanjut hapus row.
func (ctrl *GalleryController) DeleteGallery(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Foto tidak ditemukan")
	}

	var item model.GalleryModel
	if err := ctrl.DB.Select("id", "src").First(&item, "id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Foto tidak ditemukan", "Gagal mengambil foto")
	}

	if item.Src != "" && ctrl.Blob != nil {
		if err := ctrl.Blob.DeleteByPublicURL(c.UserContext(), item.Src); err != nil {
			log.Printf("[WARN] hapus aset galeri %s: %v", id, err)
		}
	}

	if err := ctrl.DB.Delete(&model.GalleryModel{}, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus foto")
	}

	viewcache.Bump(viewcache.SectionGallery)
	return helper.JsonDeleted(c, "Foto berhasil dihapus", nil)
}
