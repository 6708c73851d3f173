package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dto "eventku_backend/internals/features/payments/payments/dto"
	model "eventku_backend/internals/features/payments/payments/model"
	service "eventku_backend/internals/features/payments/payments/service"
	regModel "eventku_backend/internals/features/registrations/registrations/model"
	userModel "eventku_backend/internals/features/users/user/model"
	helper "eventku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/u/payments
// Cek saldo (amount ≤ sisa tagihan) di bawah lock FOR UPDATE registrasi.
// Metode manual langsung completed; credit/debit dibuat pending lalu
// diterbitkan Snap token-nya.
func (h *PaymentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var created model.PaymentModel
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var reg regModel.RegistrationModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&reg, "registration_id = ?", req.PaymentRegistrationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Registrasi tidak ditemukan")
			}
			return err
		}
		if reg.RegistrationUserID != userID && !helper.IsAdminFromToken(c) {
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak membayar registrasi ini")
		}
		if reg.RegistrationStatus == regModel.RegistrationStatusCancelled {
			return fiber.NewError(fiber.StatusConflict, "Registrasi sudah dibatalkan")
		}

		// pending ikut mengikat saldo; sesi Snap kedaluwarsa dilepas
		// lewat webhook (expire → failed)
		var reservedSum int64
		if err := tx.Model(&model.PaymentModel{}).
			Where("payment_registration_id = ? AND payment_status IN ?", reg.RegistrationID, model.BalanceReservingStatuses).
			Select("COALESCE(SUM(payment_amount_idr), 0)").
			Scan(&reservedSum).Error; err != nil {
			return err
		}
		outstanding := reg.RegistrationTotalAmountIDR - int(reservedSum)
		if req.PaymentAmountIDR > outstanding {
			return fiber.NewError(fiber.StatusConflict,
				fmt.Sprintf("Jumlah melebihi sisa tagihan (Rp%d)", outstanding))
		}

		p := model.PaymentModel{
			PaymentRegistrationID: reg.RegistrationID,
			PaymentMethod:         req.PaymentMethod,
			PaymentAmountIDR:      req.PaymentAmountIDR,
			PaymentStatus:         model.PaymentStatusPending,
			PaymentOrderID:        fmt.Sprintf("PAY-%s", uuid.NewString()),
			PaymentNotes:          req.PaymentNotes,
		}
		if !model.IsGatewayMethod(req.PaymentMethod) {
			now := time.Now()
			p.PaymentStatus = model.PaymentStatusCompleted
			p.PaymentPaidAt = &now
		}
		if err := tx.Create(&p).Error; err != nil {
			return err
		}

		if p.PaymentStatus == model.PaymentStatusCompleted {
			if err := service.RecomputeRegistrationPaymentStatus(tx, reg.RegistrationID, reg.RegistrationTotalAmountIDR); err != nil {
				return err
			}
		}

		created = p
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat pembayaran")
	}

	resp := dto.FromModel(created)
	if model.IsGatewayMethod(created.PaymentMethod) {
		var payer userModel.UserModel
		if err := h.DB.WithContext(c.Context()).
			First(&payer, "user_id = ?", userID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		token, redirect, err := service.GenerateSnapToken(created, payer.UserName, payer.UserEmail)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Gagal membuat transaksi Midtrans")
		}
		resp.SnapToken = &token
		resp.RedirectURL = &redirect
	}

	return helper.JsonCreated(c, "Pembayaran berhasil dibuat", resp)
}

/* ======================= LIST MINE ======================= */
// GET /api/u/payments
func (h *PaymentController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 20, 100)

	myRegs := h.DB.Model(&regModel.RegistrationModel{}).
		Select("registration_id").
		Where("registration_user_id = ?", userID)

	base := h.DB.WithContext(c.Context()).
		Model(&model.PaymentModel{}).
		Where("payment_registration_id IN (?)", myRegs)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PaymentModel
	if err := base.
		Order("payment_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= ADMIN: LIST ======================= */
// GET /api/a/payments?registration_id=&status=&method=
func (h *PaymentController) List(c *fiber.Ctx) error {
	var q dto.ListPaymentQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	if err := helper.Validate.Struct(q); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.Context()).Model(&model.PaymentModel{})
	if q.RegistrationID != nil {
		base = base.Where("payment_registration_id = ?", *q.RegistrationID)
	}
	if q.Status != nil {
		base = base.Where("payment_status = ?", *q.Status)
	}
	if q.Method != nil {
		base = base.Where("payment_method = ?", *q.Method)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PaymentModel
	if err := base.
		Order("payment_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================= ADMIN: UPDATE STATUS ======================= */
// PATCH /api/a/payments/:id/status
// Termasuk jalur refund: payment_status registrasi dihitung ulang.
func (h *PaymentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var updated model.PaymentModel
	txErr := h.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		var p model.PaymentModel
		if err := tx.First(&p, "payment_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
			}
			return err
		}

		var reg regModel.RegistrationModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&reg, "registration_id = ?", p.PaymentRegistrationID).Error; err != nil {
			return err
		}

		p.PaymentStatus = req.PaymentStatus
		if req.PaymentStatus == model.PaymentStatusCompleted && p.PaymentPaidAt == nil {
			now := time.Now()
			p.PaymentPaidAt = &now
		}
		if err := tx.Save(&p).Error; err != nil {
			return err
		}

		if err := service.RecomputeRegistrationPaymentStatus(tx, reg.RegistrationID, reg.RegistrationTotalAmountIDR); err != nil {
			return err
		}

		updated = p
		return nil
	})
	if txErr != nil {
		if fe, ok := txErr.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui status pembayaran")
	}

	return helper.JsonUpdated(c, "Status pembayaran berhasil diperbarui", dto.FromModel(updated))
}

/* ======================= WEBHOOK ======================= */
// POST /api/payments/notification (publik, dipanggil Midtrans)
func (h *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}

	if err := service.HandlePaymentStatusWebhook(h.DB.WithContext(c.Context()), body); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Notifikasi diproses", nil)
}
