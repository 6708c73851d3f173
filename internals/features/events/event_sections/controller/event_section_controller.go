package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "eventku_backend/internals/features/events/events/model"
	dto "eventku_backend/internals/features/events/event_sections/dto"
	model "eventku_backend/internals/features/events/event_sections/model"
	helper "eventku_backend/internals/helpers"
)

type EventSectionController struct {
	DB *gorm.DB
}

func NewEventSectionController(db *gorm.DB) *EventSectionController {
	return &EventSectionController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/event-sections
func (h *EventSectionController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if !req.AgeRangeValid() {
		return fiber.NewError(fiber.StatusBadRequest, "event_section_min_age tidak boleh lebih besar dari event_section_max_age")
	}

	// Guard: event induk harus ada (referensi menggantung = 404)
	var parent eventModel.EventModel
	if err := h.DB.WithContext(c.Context()).
		Where("event_id = ?", req.EventSectionEventID).
		First(&parent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat event section")
	}

	return helper.JsonCreated(c, "Event section berhasil dibuat", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/public/event-sections/:id
func (h *EventSectionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.EventSectionModel
	if err := h.DB.WithContext(c.Context()).
		Where("event_section_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event section tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST BY EVENT ======================== */
// GET /api/public/events/:id/sections
func (h *EventSectionController) ListByEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.Context()).
		Model(&model.EventSectionModel{}).
		Where("event_section_event_id = ?", eventID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.EventSectionModel
	if err := base.
		Order("event_section_date ASC, event_section_start_time ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/event-sections/:id
func (h *EventSectionController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateEventSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var curr model.EventSectionModel
	if err := h.DB.WithContext(c.Context()).
		Where("event_section_id = ?", id).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event section tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)
	if curr.EventSectionMinAge != nil && curr.EventSectionMaxAge != nil &&
		*curr.EventSectionMinAge > *curr.EventSectionMaxAge {
		return fiber.NewError(fiber.StatusBadRequest, "event_section_min_age tidak boleh lebih besar dari event_section_max_age")
	}

	if err := h.DB.WithContext(c.Context()).Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui event section")
	}

	return helper.JsonUpdated(c, "Event section berhasil diperbarui", dto.FromModel(curr))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/event-sections/:id
func (h *EventSectionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.WithContext(c.Context()).
		Where("event_section_id = ?", id).
		Delete(&model.EventSectionModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Event section tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Event section berhasil dihapus", fiber.Map{"event_section_id": id})
}
