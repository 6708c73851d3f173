// file: internals/features/users/family/dto/family_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "eventku_backend/internals/features/users/family/model"
	userDTO "eventku_backend/internals/features/users/user/dto"
	userModel "eventku_backend/internals/features/users/user/model"
)

/* =============== REQUESTS =============== */

type CreateFamilyRequest struct {
	FamilyName             string         `json:"family_name" validate:"required,min=3"`
	FamilyEmergencyContact datatypes.JSON `json:"family_emergency_contact" validate:"omitempty"`
	FamilyAddress          *string        `json:"family_address" validate:"omitempty"`
}

func (r CreateFamilyRequest) ToModel(mainContactUserID uuid.UUID) *m.FamilyModel {
	return &m.FamilyModel{
		FamilyName:              r.FamilyName,
		FamilyMainContactUserID: mainContactUserID,
		FamilyEmergencyContact:  r.FamilyEmergencyContact,
		FamilyAddress:           r.FamilyAddress,
	}
}

type UpdateFamilyRequest struct {
	FamilyName             *string        `json:"family_name" validate:"omitempty,min=3"`
	FamilyEmergencyContact datatypes.JSON `json:"family_emergency_contact" validate:"omitempty"`
	FamilyAddress          *string        `json:"family_address" validate:"omitempty"`
}

func (r UpdateFamilyRequest) ApplyTo(mo *m.FamilyModel) {
	if r.FamilyName != nil {
		mo.FamilyName = *r.FamilyName
	}
	if len(r.FamilyEmergencyContact) > 0 {
		mo.FamilyEmergencyContact = r.FamilyEmergencyContact
	}
	if r.FamilyAddress != nil {
		mo.FamilyAddress = r.FamilyAddress
	}
}

type AddFamilyMemberRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

/* =============== RESPONSES =============== */

type FamilyResponse struct {
	FamilyID uuid.UUID `json:"family_id"`

	FamilyName              string         `json:"family_name"`
	FamilyMainContactUserID uuid.UUID      `json:"family_main_contact_user_id"`
	FamilyEmergencyContact  datatypes.JSON `json:"family_emergency_contact,omitempty"`
	FamilyAddress           *string        `json:"family_address,omitempty"`

	// Turunan, tidak disimpan: jumlah anggota saat ini
	FamilySize int                    `json:"family_size"`
	Members    []userDTO.UserResponse `json:"members"`

	FamilyCreatedAt time.Time `json:"family_created_at"`
	FamilyUpdatedAt time.Time `json:"family_updated_at"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.FamilyModel, members []userModel.UserModel) FamilyResponse {
	return FamilyResponse{
		FamilyID:                x.FamilyID,
		FamilyName:              x.FamilyName,
		FamilyMainContactUserID: x.FamilyMainContactUserID,
		FamilyEmergencyContact:  x.FamilyEmergencyContact,
		FamilyAddress:           x.FamilyAddress,
		FamilySize:              len(members),
		Members:                 userDTO.FromModels(members),
		FamilyCreatedAt:         x.FamilyCreatedAt,
		FamilyUpdatedAt:         x.FamilyUpdatedAt,
	}
}
