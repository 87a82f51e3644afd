package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"alarqam_backend/internals/features/home/events/dto"
	"alarqam_backend/internals/features/home/events/model"
	helper "alarqam_backend/internals/helpers"
	"alarqam_backend/internals/helpers/viewcache"
)

var validateEvent = helper.NewValidator()

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// =============================
// 📄 Get All Events (public)
// =============================
// Error backend tidak menjalar ke halaman publik: log + list kosong.
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	q := ctrl.DB.Order("date ASC") // ascending: agenda terdekat dulu
	if limitStr := c.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			q = q.Limit(limit)
		}
	}

	var events []model.EventModel
	if err := q.Find(&events).Error; err != nil {
		log.Printf("[ERROR] fetch events: %v", err)
		events = nil
	}

	result := make([]dto.EventDTO, 0, len(events))
	for _, e := range events {
		result = append(result, dto.ToEventDTO(e))
	}

	viewcache.SetHeader(c, viewcache.SectionEvents)
	return helper.JsonList(c, "ok", result, nil)
}

// =============================
// 🕐 Get Latest Event (public)
// =============================
func (ctrl *EventController) GetLatestEvent(c *fiber.Ctx) error {
	var event model.EventModel
	err := ctrl.DB.Order("created_at DESC").First(&event).Error
	if err != nil {
		// belum ada agenda = hasil normal, bukan fault
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] fetch latest event: %v", err)
		}
		return helper.JsonOK(c, "ok", nil)
	}
	return helper.JsonOK(c, "ok", dto.ToEventDTO(event))
}

// =============================
// 🔍 Get Event By ID (public)
// =============================
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		// id bukan uuid diperlakukan sama dengan tidak ketemu
		return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "id = ?", id).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[ERROR] fetch event by id: %v", err)
		}
		return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
	}
	return helper.JsonOK(c, "ok", dto.ToEventDTO(event))
}

// =============================
// ➕ Create Event (admin)
// =============================
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var event model.EventModel
	body.ApplyToModel(&event)

	if err := ctrl.DB.Create(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat agenda: "+err.Error())
	}

	viewcache.Bump(viewcache.SectionEvents)
	return helper.JsonCreated(c, "Agenda berhasil dibuat", dto.ToEventDTO(event))
}

// =============================
// 🔄 Update Event (admin)
// =============================
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
	}

	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateEvent.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.FieldErrors(err))
	}

	var event model.EventModel
	if err := ctrl.DB.First(&event, "id = ?", id).Error; err != nil {
		return helper.JsonDBError(c, err, "Agenda tidak ditemukan", "Gagal mengambil agenda")
	}

	body.ApplyToModel(&event)

	if err := ctrl.DB.Save(&event).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update agenda: "+err.Error())
	}

	viewcache.Bump(viewcache.SectionEvents)
	return helper.JsonUpdated(c, "Agenda berhasil diperbarui", dto.ToEventDTO(event))
}

// =============================
// 🗑️ Delete Event (admin)
// =============================
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agenda tidak ditemukan")
	}

	if err := ctrl.DB.Delete(&model.EventModel{}, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus agenda")
	}

	viewcache.Bump(viewcache.SectionEvents)
	return helper.JsonDeleted(c, "Agenda berhasil dihapus", nil)
}
