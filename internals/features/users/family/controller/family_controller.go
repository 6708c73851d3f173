package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eventku_backend/internals/features/users/family/dto"
	model "eventku_backend/internals/features/users/family/model"
	userModel "eventku_backend/internals/features/users/user/model"
	helper "eventku_backend/internals/helpers"
)

type FamilyController struct {
	DB *gorm.DB
}

func NewFamilyController(db *gorm.DB) *FamilyController {
	return &FamilyController{DB: db}
}

func (h *FamilyController) loadMembers(c *fiber.Ctx, familyID uuid.UUID) ([]userModel.UserModel, error) {
	var members []userModel.UserModel
	err := h.DB.WithContext(c.Context()).
		Where("user_family_id = ?", familyID).
		Order("user_created_at ASC").
		Find(&members).Error
	return members, err
}

/* ======================= CREATE ======================= */
// POST /api/u/families
// Pembuat otomatis jadi kontak utama sekaligus anggota pertama.
func (h *FamilyController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var creator userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&creator).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if creator.UserFamilyID != nil {
		return fiber.NewError(fiber.StatusConflict, "Anda sudah tergabung di keluarga lain")
	}

	m := req.ToModel(userID)

	tx := h.DB.WithContext(c.Context()).Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memulai transaksi")
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Create(m).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat keluarga")
	}
	if err := tx.Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_family_id", m.FamilyID).Error; err != nil {
		tx.Rollback()
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menautkan anggota")
	}
	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	creator.UserFamilyID = &m.FamilyID
	return helper.JsonCreated(c, "Keluarga berhasil dibuat",
		dto.FromModel(*m, []userModel.UserModel{creator}))
}

/* ======================== MY FAMILY ======================== */
// GET /api/u/families/me
func (h *FamilyController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var u userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&u).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if u.UserFamilyID == nil {
		return fiber.NewError(fiber.StatusNotFound, "Anda belum tergabung di keluarga")
	}

	var fam model.FamilyModel
	if err := h.DB.WithContext(c.Context()).
		Where("family_id = ?", *u.UserFamilyID).
		First(&fam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Keluarga tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	members, err := h.loadMembers(c, fam.FamilyID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(fam, members))
}

/* ======================== UPDATE ======================== */
// PUT /api/u/families/me (hanya kontak utama)
func (h *FamilyController) Update(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateFamilyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	fam, err := h.myFamilyAsMainContact(c, userID)
	if err != nil {
		return err
	}

	req.ApplyTo(fam)
	if err := h.DB.WithContext(c.Context()).Save(fam).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui keluarga")
	}

	members, err := h.loadMembers(c, fam.FamilyID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Keluarga berhasil diperbarui", dto.FromModel(*fam, members))
}

/* ======================== ADD MEMBER ======================== */
// POST /api/u/families/members (hanya kontak utama)
func (h *FamilyController) AddMember(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.AddFamilyMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	fam, err := h.myFamilyAsMainContact(c, userID)
	if err != nil {
		return err
	}

	var member userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		Where("user_id = ?", req.UserID).
		First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User calon anggota tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if member.UserFamilyID != nil {
		return fiber.NewError(fiber.StatusConflict, "User sudah tergabung di keluarga lain")
	}

	if err := h.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("user_id = ?", member.UserID).
		Update("user_family_id", fam.FamilyID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menambahkan anggota")
	}

	members, err := h.loadMembers(c, fam.FamilyID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Anggota berhasil ditambahkan", dto.FromModel(*fam, members))
}

/* ======================== REMOVE MEMBER ======================== */
// DELETE /api/u/families/members/:userId (hanya kontak utama)
func (h *FamilyController) RemoveMember(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	targetID, err := uuid.Parse(strings.TrimSpace(c.Params("userId")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "userId tidak valid")
	}

	fam, err := h.myFamilyAsMainContact(c, userID)
	if err != nil {
		return err
	}
	if targetID == fam.FamilyMainContactUserID {
		return fiber.NewError(fiber.StatusBadRequest, "Kontak utama tidak bisa dikeluarkan dari keluarganya sendiri")
	}

	res := h.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("user_id = ? AND user_family_id = ?", targetID, fam.FamilyID).
		Update("user_family_id", nil)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Anggota tidak ditemukan di keluarga ini")
	}

	return helper.JsonDeleted(c, "Anggota berhasil dikeluarkan", fiber.Map{"user_id": targetID})
}

// myFamilyAsMainContact memuat keluarga user dan memastikan dia kontak utamanya.
func (h *FamilyController) myFamilyAsMainContact(c *fiber.Ctx, userID uuid.UUID) (*model.FamilyModel, error) {
	var u userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&u).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if u.UserFamilyID == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Anda belum tergabung di keluarga")
	}

	var fam model.FamilyModel
	if err := h.DB.WithContext(c.Context()).
		Where("family_id = ?", *u.UserFamilyID).
		First(&fam).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Keluarga tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if fam.FamilyMainContactUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Hanya kontak utama yang boleh mengelola keluarga")
	}
	return &fam, nil
}
