// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "eventku_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

// Update (partial, admin atau user sendiri)
type UpdateUserRequest struct {
	UserName    *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	UserPhone   *string `json:"user_phone" validate:"omitempty,max=30"`
	UserAddress *string `json:"user_address" validate:"omitempty"`
	UserIsAdmin *bool   `json:"user_is_admin" validate:"omitempty"`
}

// Terapkan perubahan ke model existing
func (r UpdateUserRequest) ApplyTo(mo *m.UserModel, allowAdminFlag bool) {
	if r.UserName != nil {
		mo.UserName = *r.UserName
	}
	if r.UserPhone != nil {
		mo.UserPhone = r.UserPhone
	}
	if r.UserAddress != nil {
		mo.UserAddress = r.UserAddress
	}
	// flag admin hanya boleh diubah oleh admin
	if allowAdminFlag && r.UserIsAdmin != nil {
		mo.UserIsAdmin = *r.UserIsAdmin
	}
}

// List / Query params
type ListUserQuery struct {
	Q       *string `query:"q" validate:"omitempty"`
	IsAdmin *bool   `query:"is_admin" validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type UserResponse struct {
	UserID uuid.UUID `json:"user_id"`

	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`

	UserPhone   *string `json:"user_phone,omitempty"`
	UserAddress *string `json:"user_address,omitempty"`

	UserIsAdmin  bool       `json:"user_is_admin"`
	UserFamilyID *uuid.UUID `json:"user_family_id,omitempty"`

	UserCreatedAt time.Time `json:"user_created_at"`
	UserUpdatedAt time.Time `json:"user_updated_at"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.UserModel) UserResponse {
	return UserResponse{
		UserID:        x.UserID,
		UserName:      x.UserName,
		UserEmail:     x.UserEmail,
		UserPhone:     x.UserPhone,
		UserAddress:   x.UserAddress,
		UserIsAdmin:   x.UserIsAdmin,
		UserFamilyID:  x.UserFamilyID,
		UserCreatedAt: x.UserCreatedAt,
		UserUpdatedAt: x.UserUpdatedAt,
	}
}

func FromModels(list []m.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
