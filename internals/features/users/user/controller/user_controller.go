package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "eventku_backend/internals/features/users/user/dto"
	model "eventku_backend/internals/features/users/user/model"
	helper "eventku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

/* ======================== ME ======================== */
// GET /api/u/users/me
func (h *UserController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var row model.UserModel
	if err := h.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

// PUT /api/u/users/me
func (h *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	return h.updateUser(c, userID, false)
}

/* ======================== LIST (ADMIN) ======================== */
// GET /api/a/users?q=&is_admin=&page=&per_page=
func (h *UserController) List(c *fiber.Ctx) error {
	var q dto.ListUserQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.WithContext(c.Context()).Model(&model.UserModel{})
	if q.Q != nil && *q.Q != "" {
		like := fmt.Sprintf("%%%s%%", *q.Q)
		base = base.Where("(user_name ILIKE ? OR user_email ILIKE ?)", like, like)
	}
	if q.IsAdmin != nil {
		base = base.Where("user_is_admin = ?", *q.IsAdmin)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.UserModel
	if err := base.
		Order("user_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list),
		helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* ======================== GET BY ID (ADMIN) ======================== */
// GET /api/a/users/:id
func (h *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.UserModel
	if err := h.DB.WithContext(c.Context()).
		Where("user_id = ?", id).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== UPDATE (ADMIN) ======================== */
// PUT /api/a/users/:id
func (h *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}
	return h.updateUser(c, id, true)
}

func (h *UserController) updateUser(c *fiber.Ctx, id uuid.UUID, allowAdminFlag bool) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var curr model.UserModel
	if err := h.DB.WithContext(c.Context()).
		Where("user_id = ?", id).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&curr, allowAdminFlag)

	if err := h.DB.WithContext(c.Context()).Save(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui user")
	}

	return helper.JsonUpdated(c, "User berhasil diperbarui", dto.FromModel(curr))
}

/* ======================== DELETE (ADMIN, SOFT) ======================== */
// DELETE /api/a/users/:id
func (h *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.WithContext(c.Context()).
		Where("user_id = ?", id).
		Delete(&model.UserModel{})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"user_id": id})
}
