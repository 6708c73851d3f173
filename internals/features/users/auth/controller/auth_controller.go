package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	authService "eventku_backend/internals/features/users/auth/service"
	userDTO "eventku_backend/internals/features/users/user/dto"
	userModel "eventku_backend/internals/features/users/user/model"
	helper "eventku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

type RegisterRequest struct {
	UserName     string  `json:"user_name" validate:"required,min=3,max=50"`
	UserEmail    string  `json:"user_email" validate:"required,email"`
	UserPassword string  `json:"user_password" validate:"required,min=8"`
	UserPhone    *string `json:"user_phone" validate:"omitempty,max=30"`
	UserAddress  *string `json:"user_address" validate:"omitempty"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type LoginGoogleRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

/* ========================== REGISTER ========================== */
// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
	}

	u := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword: string(hashed),
		UserPhone:    req.UserPhone,
		UserAddress:  req.UserAddress,
	}

	// Keunikan email ditegakkan unique index; duplikat = 409
	if err := h.DB.WithContext(c.Context()).Create(&u).Error; err != nil {
		if helper.IsDuplicateErr(err) {
			return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", userDTO.FromModel(u))
}

/* ========================== LOGIN ========================== */
// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var u userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.UserPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := authService.GenerateAccessToken(u)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"user":         userDTO.FromModel(u),
	})
}

/* ========================== LOGIN GOOGLE ========================== */
// POST /api/auth/login-google
// Find-or-create user berdasarkan email Google yang terverifikasi.
func (h *AuthController) LoginGoogle(c *fiber.Ctx) error {
	var req LoginGoogleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	profile, err := authService.VerifyGoogleIDToken(req.IDToken)
	if err != nil {
		return err
	}
	email := strings.ToLower(strings.TrimSpace(profile.Email))

	var u userModel.UserModel
	err = h.DB.WithContext(c.Context()).
		Where("user_email = ?", email).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// User baru: password acak, login selanjutnya tetap via Google
		randomPw := make([]byte, 24)
		if _, err := rand.Read(randomPw); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat kredensial")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(randomPw)), bcrypt.DefaultCost)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password")
		}
		u = userModel.UserModel{
			UserName:     profile.Name,
			UserEmail:    email,
			UserPassword: string(hashed),
		}
		if err := h.DB.WithContext(c.Context()).Create(&u).Error; err != nil {
			if helper.IsDuplicateErr(err) {
				return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mendaftarkan user")
		}
	} else if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	token, err := authService.GenerateAccessToken(u)
	if err != nil {
		return err
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"user":         userDTO.FromModel(u),
	})
}

/* ========================== CHANGE PASSWORD ========================== */
// POST /api/auth/change-password (butuh token)
func (h *AuthController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorsToMap(err))
	}

	var u userModel.UserModel
	if err := h.DB.WithContext(c.Context()).
		Where("user_id = ?", userID).
		First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "User tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.UserPassword), []byte(req.CurrentPassword)); err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Password lama salah")
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hash password baru")
	}

	if err := h.DB.WithContext(c.Context()).
		Model(&userModel.UserModel{}).
		Where("user_id = ?", userID).
		Update("user_password", string(newHash)).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui password")
	}

	return helper.JsonUpdated(c, "Password berhasil diubah", nil)
}
