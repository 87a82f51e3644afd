package controller

import (
	"bytes"
	"log"

	"github.com/gofiber/fiber/v2"

	helper "alarqam_backend/internals/helpers"
	"alarqam_backend/internals/helpers/oss"
)

type UploadController struct {
	Blob *oss.OSSService
}

func NewUploadController(blob *oss.OSSService) *UploadController {
	return &UploadController{Blob: blob}
}

// =============================
// 📤 Upload Image
// =============================
// Gambar dikonversi ke WebP sebelum diunggah ke OSS, lalu URL publiknya
// dikembalikan untuk dipakai di field imageUrl / src.
func (ctrl *UploadController) UploadImage(c *fiber.Ctx) error {
	if ctrl.Blob == nil {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Penyimpanan berkas belum dikonfigurasi")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File tidak ditemukan pada request")
	}

	data, filename, err := helper.ConvertToWebP(fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Gagal memproses gambar: "+err.Error())
	}

	url, err := ctrl.Blob.UploadReader(c.UserContext(), filename, bytes.NewReader(data), "image/webp")
	if err != nil {
		log.Printf("[ERROR] upload gambar %s: %v", filename, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengunggah gambar")
	}

	return helper.JsonCreated(c, "Gambar berhasil diunggah", fiber.Map{
		"url": url,
	})
}
