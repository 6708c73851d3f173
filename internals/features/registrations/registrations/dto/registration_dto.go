// file: internals/features/registrations/registrations/dto/registration_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "eventku_backend/internals/features/registrations/registrations/model"
)

/* =============== REQUESTS =============== */

// Satu entri registrant. Tag type menentukan payload yang berlaku;
// service resolver menegakkan eksklusivitasnya.
type RegistrantInput struct {
	Type string `json:"type" validate:"required,oneof=user family_member external"`

	UserID         *uuid.UUID `json:"user_id" validate:"omitempty"`
	FamilyMemberID *uuid.UUID `json:"family_member_id" validate:"omitempty"`

	Name        *string    `json:"name" validate:"omitempty,min=2"`
	Email       *string    `json:"email" validate:"omitempty,email"`
	Phone       *string    `json:"phone" validate:"omitempty,max=30"`
	Gender      *string    `json:"gender" validate:"omitempty,oneof=male female other 'prefer not to say'"`
	DateOfBirth *time.Time `json:"date_of_birth" validate:"omitempty"`
}

type CreateRegistrationRequest struct {
	RegistrationEventSectionID uuid.UUID `json:"registration_event_section_id" validate:"required"`

	RegistrationType     string  `json:"registration_type" validate:"required,oneof=individual team family"`
	RegistrationTeamName *string `json:"registration_team_name" validate:"omitempty,min=2"`

	Registrants []RegistrantInput `json:"registrants" validate:"omitempty,dive"`
}

// Update status (admin)
type UpdateRegistrationStatusRequest struct {
	RegistrationStatus string `json:"registration_status" validate:"required,oneof=pending confirmed cancelled"`
}

// List / Query params
type ListRegistrationQuery struct {
	EventID        *uuid.UUID `query:"event_id" validate:"omitempty"`
	EventSectionID *uuid.UUID `query:"event_section_id" validate:"omitempty"`
	Status         *string    `query:"status" validate:"omitempty,oneof=pending confirmed cancelled"`
	PaymentStatus  *string    `query:"payment_status" validate:"omitempty,oneof=unpaid partial paid"`
	Type           *string    `query:"type" validate:"omitempty,oneof=individual team family"`
}

/* =============== RESPONSES =============== */

type RegistrantResponse struct {
	RegistrantID uuid.UUID `json:"registrant_id"`

	RegistrantType string `json:"registrant_type"`

	RegistrantUserID         *uuid.UUID `json:"registrant_user_id,omitempty"`
	RegistrantFamilyMemberID *uuid.UUID `json:"registrant_family_member_id,omitempty"`

	RegistrantName        *string    `json:"registrant_name,omitempty"`
	RegistrantEmail       *string    `json:"registrant_email,omitempty"`
	RegistrantPhone       *string    `json:"registrant_phone,omitempty"`
	RegistrantGender      *string    `json:"registrant_gender,omitempty"`
	RegistrantDateOfBirth *time.Time `json:"registrant_date_of_birth,omitempty"`
}

// Participant: identitas ternormalisasi hasil resolve (untuk display/report)
type ParticipantResponse struct {
	RegistrantID uuid.UUID  `json:"registrant_id"`
	Type         string     `json:"type"`
	Name         string     `json:"name"`
	Email        *string    `json:"email,omitempty"`
	UserID       *uuid.UUID `json:"user_id,omitempty"`
}

type RegistrationResponse struct {
	RegistrationID uuid.UUID `json:"registration_id"`

	RegistrationEventID        uuid.UUID `json:"registration_event_id"`
	RegistrationEventSectionID uuid.UUID `json:"registration_event_section_id"`
	RegistrationUserID         uuid.UUID `json:"registration_user_id"`

	RegistrationType     string  `json:"registration_type"`
	RegistrationTeamName *string `json:"registration_team_name,omitempty"`

	RegistrationStatus        string `json:"registration_status"`
	RegistrationPaymentStatus string `json:"registration_payment_status"`

	RegistrationTotalAmountIDR int `json:"registration_total_amount_idr"`

	// Turunan, dihitung saat mapping, tidak pernah dibaca dari cache
	TeamSize   int `json:"team_size"`
	FamilySize int `json:"family_size"`

	Registrants  []RegistrantResponse  `json:"registrants"`
	Participants []ParticipantResponse `json:"participants,omitempty"`

	RegistrationCreatedAt time.Time `json:"registration_created_at"`
	RegistrationUpdatedAt time.Time `json:"registration_updated_at"`
}

/* =============== MAPPERS =============== */

func FromRegistrantModel(x m.RegistrantModel) RegistrantResponse {
	return RegistrantResponse{
		RegistrantID:             x.RegistrantID,
		RegistrantType:           x.RegistrantType,
		RegistrantUserID:         x.RegistrantUserID,
		RegistrantFamilyMemberID: x.RegistrantFamilyMemberID,
		RegistrantName:           x.RegistrantName,
		RegistrantEmail:          x.RegistrantEmail,
		RegistrantPhone:          x.RegistrantPhone,
		RegistrantGender:         x.RegistrantGender,
		RegistrantDateOfBirth:    x.RegistrantDateOfBirth,
	}
}

func FromModel(x m.RegistrationModel) RegistrationResponse {
	regs := make([]RegistrantResponse, 0, len(x.Registrants))
	for _, rg := range x.Registrants {
		regs = append(regs, FromRegistrantModel(rg))
	}
	return RegistrationResponse{
		RegistrationID:             x.RegistrationID,
		RegistrationEventID:        x.RegistrationEventID,
		RegistrationEventSectionID: x.RegistrationEventSectionID,
		RegistrationUserID:         x.RegistrationUserID,
		RegistrationType:           x.RegistrationType,
		RegistrationTeamName:       x.RegistrationTeamName,
		RegistrationStatus:         x.RegistrationStatus,
		RegistrationPaymentStatus:  x.RegistrationPaymentStatus,
		RegistrationTotalAmountIDR: x.RegistrationTotalAmountIDR,
		TeamSize:                   x.TeamSize(),
		FamilySize:                 x.FamilySize(),
		Registrants:                regs,
		RegistrationCreatedAt:      x.RegistrationCreatedAt,
		RegistrationUpdatedAt:      x.RegistrationUpdatedAt,
	}
}

func FromModels(list []m.RegistrationModel) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
