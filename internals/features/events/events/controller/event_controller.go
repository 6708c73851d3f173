package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sectionDTO "eventku_backend/internals/features/events/event_sections/dto"
	sectionModel "eventku_backend/internals/features/events/event_sections/model"
	dto "eventku_backend/internals/features/events/events/dto"
	model "eventku_backend/internals/features/events/events/model"
	helper "eventku_backend/internals/helpers"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/events
func (h *EventController) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.Context()).Create(m).Error; err != nil {
		if helper.IsDuplicateErr(err) {
			return fiber.NewError(fiber.StatusConflict, "Kode registrasi sudah dipakai event lain")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat event")
	}

	return helper.JsonCreated(c, "Event berhasil dibuat", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /api/public/events/:id (detail event beserta section-nya)
func (h *EventController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.EventModel
	if err := h.DB.WithContext(c.Context()).
		Where("event_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var sections []sectionModel.EventSectionModel
	if err := h.DB.WithContext(c.Context()).
		Where("event_section_event_id = ?", id).
		Order("event_section_date ASC, event_section_start_time ASC").
		Find(&sections).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	resp := dto.FromModel(row)
	resp.EventSections = sectionDTO.FromModels(sections)

	return helper.JsonOK(c, "OK", resp)
}

/* ======================== LIST ======================== */
// GET /api/public/events?type=&date_from=&date_to=&q=&page=&per_page=
func (h *EventController) List(c *fiber.Ctx) error {
	var q dto.ListEventQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := helper.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.Context()).Model(&model.EventModel{})

	if q.Type != nil {
		base = base.Where("event_type = ?", *q.Type)
	}
	if q.DateFrom != nil {
		base = base.Where("event_start_date >= ?", *q.DateFrom)
	}
	if q.DateTo != nil {
		base = base.Where("event_start_date <= ?", *q.DateTo)
	}
	if q.Q != nil && *q.Q != "" {
		like := fmt.Sprintf("%%%s%%", *q.Q)
		base = base.Where("(event_title ILIKE ? OR event_description ILIKE ?)", like, like)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.EventModel
	if err := base.
		Order("event_start_date ASC, event_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== UPDATE (PUT, partial) ======================== */
// PUT /api/a/events/:id
func (h *EventController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var curr model.EventModel
	if err := h.DB.WithContext(c.Context()).
		Where("event_id = ?", id).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr)
	if curr.EventEndDate.Before(curr.EventStartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "event_end_date tidak boleh sebelum event_start_date")
	}

	// Save selalu menyentuh event_updated_at (autoUpdateTime)
	if err := h.DB.WithContext(c.Context()).Save(&curr).Error; err != nil {
		if helper.IsDuplicateErr(err) {
			return fiber.NewError(fiber.StatusConflict, "Kode registrasi sudah dipakai event lain")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui event")
	}

	return helper.JsonUpdated(c, "Event berhasil diperbarui", dto.FromModel(curr))
}

/* ======================== DELETE (SOFT) ======================== */
// DELETE /api/a/events/:id
// Event tidak boleh dihapus selama masih punya section aktif.
func (h *EventController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var sectionCount int64
	if err := h.DB.WithContext(c.Context()).
		Model(&sectionModel.EventSectionModel{}).
		Where("event_section_event_id = ?", id).
		Count(&sectionCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if sectionCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Event masih memiliki section aktif, hapus section-nya dulu")
	}

	res := h.DB.WithContext(c.Context()).
		Where("event_id = ?", id).
		Delete(&model.EventModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Event berhasil dihapus", fiber.Map{"event_id": id})
}
