package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	sectionModel "eventku_backend/internals/features/events/event_sections/model"
	eventModel "eventku_backend/internals/features/events/events/model"
	dto "eventku_backend/internals/features/registrations/registrations/dto"
	model "eventku_backend/internals/features/registrations/registrations/model"
	service "eventku_backend/internals/features/registrations/registrations/service"
	userModel "eventku_backend/internals/features/users/user/model"
	helper "eventku_backend/internals/helpers"
)

type RegistrationController struct {
	DB *gorm.DB
}

func NewRegistrationController(db *gorm.DB) *RegistrationController {
	return &RegistrationController{DB: db}
}

/* ======================= REGISTER (atomic) ======================= */
// POST /api/u/registrations
// Seluruh alur dalam satu transaksi: lock section FOR UPDATE → cek deadline,
// kecocokan tipe, kuota → resolve registrants → cek umur → hitung total →
// simpan + kuota naik 1. Gagal di titik mana pun = rollback total.
func (h *RegistrationController) Register(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	if req.RegistrationType == model.RegistrationTypeTeam &&
		(req.RegistrationTeamName == nil || strings.TrimSpace(*req.RegistrationTeamName) == "") {
		return fiber.NewError(fiber.StatusBadRequest, "registration_team_name wajib diisi untuk registrasi team")
	}

	var created model.RegistrationModel
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		// Lock section supaya pengecekan kuota dan kenaikan counter atomik
		var sec sectionModel.EventSectionModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&sec, "event_section_id = ?", req.RegistrationEventSectionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Section tidak ditemukan")
			}
			return err
		}

		var ev eventModel.EventModel
		if err := tx.First(&ev, "event_id = ?", sec.EventSectionEventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Event tidak ditemukan")
			}
			return err
		}

		if ev.EventRegistrationDeadline != nil && time.Now().After(ev.EventRegistrationDeadline.AddDate(0, 0, 1)) {
			return fiber.NewError(fiber.StatusBadRequest, "Batas waktu pendaftaran event sudah lewat")
		}
		if req.RegistrationType != ev.EventType {
			return fiber.NewError(fiber.StatusBadRequest, "Tipe registrasi tidak sesuai dengan tipe event")
		}
		if !sec.HasCapacity() {
			return fiber.NewError(fiber.StatusConflict, "Kuota section sudah penuh")
		}

		var creator userModel.UserModel
		if err := tx.First(&creator, "user_id = ?", userID).Error; err != nil {
			return err
		}

		resolved, err := service.ResolveRegistrants(tx, creator, req.Registrants)
		if err != nil {
			return err
		}
		if err := service.CheckAgeEligibility(resolved, sec.EventSectionDate, sec.EventSectionMinAge, sec.EventSectionMaxAge); err != nil {
			return err
		}

		total := 0
		switch {
		case sec.EventSectionPriceIDR != nil:
			total = *sec.EventSectionPriceIDR
		case ev.EventBasePriceIDR != nil:
			total = *ev.EventBasePriceIDR
		}

		reg := model.RegistrationModel{
			RegistrationEventID:        ev.EventID,
			RegistrationEventSectionID: sec.EventSectionID,
			RegistrationUserID:         userID,
			RegistrationType:           req.RegistrationType,
			RegistrationTeamName:       req.RegistrationTeamName,
			RegistrationStatus:         model.RegistrationStatusPending,
			RegistrationPaymentStatus:  model.PaymentStatusUnpaid,
			RegistrationTotalAmountIDR: total,
		}
		for _, r := range resolved {
			reg.Registrants = append(reg.Registrants, r.Model)
		}
		if err := tx.Create(&reg).Error; err != nil {
			return err
		}

		if err := tx.Model(&sectionModel.EventSectionModel{}).
			Where("event_section_id = ?", sec.EventSectionID).
			Update("event_section_quota_taken", gorm.Expr("event_section_quota_taken + 1")).Error; err != nil {
			return err
		}

		created = reg
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat registrasi")
	}

	return helper.JsonCreated(c, "Registrasi berhasil dibuat", dto.FromModel(created))
}

/* ======================= LIST MINE ======================= */
// GET /api/u/registrations
func (h *RegistrationController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.Context()).
		Model(&model.RegistrationModel{}).
		Where("registration_user_id = ?", userID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.RegistrationModel
	if err := base.
		Preload("Registrants").
		Order("registration_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= GET BY ID ======================= */
// GET /api/u/registrations/:id (pemilik atau admin)
func (h *RegistrationController) GetByID(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.RegistrationModel
	if err := h.DB.WithContext(c.Context()).
		Preload("Registrants").
		First(&row, "registration_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Registrasi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if row.RegistrationUserID != userID && !helper.IsAdminFromToken(c) {
		return fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak melihat registrasi ini")
	}

	resp := dto.FromModel(row)
	participants, err := service.BuildParticipants(h.DB.WithContext(c.Context()), row.Registrants)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	resp.Participants = participants

	return helper.JsonOK(c, "OK", resp)
}

/* ======================= CANCEL (owner) ======================= */
// POST /api/u/registrations/:id/cancel
// Kuota section dikembalikan dalam transaksi yang sama.
func (h *RegistrationController) Cancel(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var updated model.RegistrationModel
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var reg model.RegistrationModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Registrants").
			First(&reg, "registration_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Registrasi tidak ditemukan")
			}
			return err
		}
		if reg.RegistrationUserID != userID {
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak membatalkan registrasi ini")
		}
		if reg.RegistrationStatus == model.RegistrationStatusCancelled {
			return fiber.NewError(fiber.StatusConflict, "Registrasi sudah dibatalkan")
		}

		if err := tx.Model(&reg).
			Update("registration_status", model.RegistrationStatusCancelled).Error; err != nil {
			return err
		}
		if err := releaseQuota(tx, reg.RegistrationEventSectionID); err != nil {
			return err
		}

		updated = reg
		updated.RegistrationStatus = model.RegistrationStatusCancelled
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membatalkan registrasi")
	}

	return helper.JsonUpdated(c, "Registrasi berhasil dibatalkan", dto.FromModel(updated))
}

/* ======================= ADMIN: LIST ======================= */
// GET /api/a/registrations?event_id=&event_section_id=&status=&payment_status=&type=
func (h *RegistrationController) List(c *fiber.Ctx) error {
	var q dto.ListRegistrationQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := helper.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.Context()).Model(&model.RegistrationModel{})
	if q.EventID != nil {
		base = base.Where("registration_event_id = ?", *q.EventID)
	}
	if q.EventSectionID != nil {
		base = base.Where("registration_event_section_id = ?", *q.EventSectionID)
	}
	if q.Status != nil {
		base = base.Where("registration_status = ?", *q.Status)
	}
	if q.PaymentStatus != nil {
		base = base.Where("registration_payment_status = ?", *q.PaymentStatus)
	}
	if q.Type != nil {
		base = base.Where("registration_type = ?", *q.Type)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.RegistrationModel
	if err := base.
		Preload("Registrants").
		Order("registration_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= ADMIN: UPDATE STATUS ======================= */
// PATCH /api/a/registrations/:id/status
// Transisi ke/dari cancelled menyesuaikan kuota section.
func (h *RegistrationController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateRegistrationStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var updated model.RegistrationModel
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var reg model.RegistrationModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("Registrants").
			First(&reg, "registration_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Registrasi tidak ditemukan")
			}
			return err
		}

		was := reg.RegistrationStatus
		next := req.RegistrationStatus
		if was != next {
			if err := tx.Model(&reg).
				Update("registration_status", next).Error; err != nil {
				return err
			}
			// cancelled → aktif ambil slot lagi; aktif → cancelled lepas slot
			switch {
			case was != model.RegistrationStatusCancelled && next == model.RegistrationStatusCancelled:
				if err := releaseQuota(tx, reg.RegistrationEventSectionID); err != nil {
					return err
				}
			case was == model.RegistrationStatusCancelled && next != model.RegistrationStatusCancelled:
				var sec sectionModel.EventSectionModel
				if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
					First(&sec, "event_section_id = ?", reg.RegistrationEventSectionID).Error; err != nil {
					return err
				}
				if !sec.HasCapacity() {
					return fiber.NewError(fiber.StatusConflict, "Kuota section sudah penuh")
				}
				if err := tx.Model(&sectionModel.EventSectionModel{}).
					Where("event_section_id = ?", sec.EventSectionID).
					Update("event_section_quota_taken", gorm.Expr("event_section_quota_taken + 1")).Error; err != nil {
					return err
				}
			}
		}

		reg.RegistrationStatus = next
		updated = reg
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui status registrasi")
	}

	return helper.JsonUpdated(c, "Status registrasi berhasil diperbarui", dto.FromModel(updated))
}

// releaseQuota menurunkan counter dengan lantai 0.
func releaseQuota(tx *gorm.DB, sectionID uuid.UUID) error {
	return tx.Model(&sectionModel.EventSectionModel{}).
		Where("event_section_id = ?", sectionID).
		Update("event_section_quota_taken",
			gorm.Expr("GREATEST(event_section_quota_taken - 1, 0)")).Error
}
