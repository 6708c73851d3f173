// file: internals/features/events/events/dto/event_dto.go
package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/google/uuid"

	sectionDTO "eventku_backend/internals/features/events/event_sections/dto"
	m "eventku_backend/internals/features/events/events/model"
)

/* =============== REQUESTS =============== */

// Create
type CreateEventRequest struct {
	EventTitle       string  `json:"event_title" validate:"required,min=3"`
	EventDescription *string `json:"event_description" validate:"omitempty"`
	EventLocation    *string `json:"event_location" validate:"omitempty"`

	EventRegistrationCode string `json:"event_registration_code" validate:"required,min=3,max=50"`

	EventStartDate            time.Time  `json:"event_start_date" validate:"required"`
	EventEndDate              time.Time  `json:"event_end_date" validate:"required,gtefield=EventStartDate"`
	EventRegistrationDeadline *time.Time `json:"event_registration_deadline" validate:"omitempty"`

	EventMaxParticipants *int `json:"event_max_participants" validate:"omitempty,gte=0"`
	EventBasePriceIDR    *int `json:"event_base_price_idr" validate:"omitempty,gte=0"`

	EventType string `json:"event_type" validate:"required,oneof=individual team family"`

	EventTags datatypes.JSON `json:"event_tags" validate:"omitempty"`
}

func (r CreateEventRequest) ToModel() *m.EventModel {
	tags := r.EventTags
	if len(tags) == 0 {
		tags = datatypes.JSON([]byte("[]"))
	}
	return &m.EventModel{
		EventTitle:                r.EventTitle,
		EventDescription:          r.EventDescription,
		EventLocation:             r.EventLocation,
		EventRegistrationCode:     r.EventRegistrationCode,
		EventStartDate:            r.EventStartDate,
		EventEndDate:              r.EventEndDate,
		EventRegistrationDeadline: r.EventRegistrationDeadline,
		EventMaxParticipants:      r.EventMaxParticipants,
		EventBasePriceIDR:         r.EventBasePriceIDR,
		EventType:                 r.EventType,
		EventTags:                 tags,
	}
}

// Update (partial)
type UpdateEventRequest struct {
	EventTitle       *string `json:"event_title" validate:"omitempty,min=3"`
	EventDescription *string `json:"event_description" validate:"omitempty"`
	EventLocation    *string `json:"event_location" validate:"omitempty"`

	EventRegistrationCode *string `json:"event_registration_code" validate:"omitempty,min=3,max=50"`

	EventStartDate            *time.Time `json:"event_start_date" validate:"omitempty"`
	EventEndDate              *time.Time `json:"event_end_date" validate:"omitempty"`
	EventRegistrationDeadline *time.Time `json:"event_registration_deadline" validate:"omitempty"`

	EventMaxParticipants *int `json:"event_max_participants" validate:"omitempty,gte=0"`
	EventBasePriceIDR    *int `json:"event_base_price_idr" validate:"omitempty,gte=0"`

	EventType *string `json:"event_type" validate:"omitempty,oneof=individual team family"`

	EventTags datatypes.JSON `json:"event_tags" validate:"omitempty"`
}

// Terapkan perubahan ke model existing (untuk PUT)
func (r UpdateEventRequest) ApplyTo(mo *m.EventModel) {
	if r.EventTitle != nil {
		mo.EventTitle = *r.EventTitle
	}
	if r.EventDescription != nil {
		mo.EventDescription = r.EventDescription
	}
	if r.EventLocation != nil {
		mo.EventLocation = r.EventLocation
	}
	if r.EventRegistrationCode != nil {
		mo.EventRegistrationCode = *r.EventRegistrationCode
	}
	if r.EventStartDate != nil {
		mo.EventStartDate = *r.EventStartDate
	}
	if r.EventEndDate != nil {
		mo.EventEndDate = *r.EventEndDate
	}
	if r.EventRegistrationDeadline != nil {
		mo.EventRegistrationDeadline = r.EventRegistrationDeadline
	}
	if r.EventMaxParticipants != nil {
		mo.EventMaxParticipants = r.EventMaxParticipants
	}
	if r.EventBasePriceIDR != nil {
		mo.EventBasePriceIDR = r.EventBasePriceIDR
	}
	if r.EventType != nil {
		mo.EventType = *r.EventType
	}
	if len(r.EventTags) > 0 {
		mo.EventTags = r.EventTags
	}
}

// List / Query params
type ListEventQuery struct {
	Type     *string    `query:"type" validate:"omitempty,oneof=individual team family"`
	DateFrom *time.Time `query:"date_from" validate:"omitempty"`
	DateTo   *time.Time `query:"date_to" validate:"omitempty"`
	Q        *string    `query:"q" validate:"omitempty"`
}

/* =============== RESPONSES =============== */

type EventResponse struct {
	EventID uuid.UUID `json:"event_id"`

	EventTitle       string  `json:"event_title"`
	EventDescription *string `json:"event_description,omitempty"`
	EventLocation    *string `json:"event_location,omitempty"`

	EventRegistrationCode string `json:"event_registration_code"`

	EventStartDate            time.Time  `json:"event_start_date"`
	EventEndDate              time.Time  `json:"event_end_date"`
	EventRegistrationDeadline *time.Time `json:"event_registration_deadline,omitempty"`

	EventMaxParticipants *int `json:"event_max_participants,omitempty"`
	EventBasePriceIDR    *int `json:"event_base_price_idr,omitempty"`

	EventType string         `json:"event_type"`
	EventTags datatypes.JSON `json:"event_tags"`

	// Terisi hanya di endpoint detail
	EventSections []sectionDTO.EventSectionResponse `json:"event_sections,omitempty"`

	EventCreatedAt time.Time `json:"event_created_at"`
	EventUpdatedAt time.Time `json:"event_updated_at"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.EventModel) EventResponse {
	return EventResponse{
		EventID:                   x.EventID,
		EventTitle:                x.EventTitle,
		EventDescription:          x.EventDescription,
		EventLocation:             x.EventLocation,
		EventRegistrationCode:     x.EventRegistrationCode,
		EventStartDate:            x.EventStartDate,
		EventEndDate:              x.EventEndDate,
		EventRegistrationDeadline: x.EventRegistrationDeadline,
		EventMaxParticipants:      x.EventMaxParticipants,
		EventBasePriceIDR:         x.EventBasePriceIDR,
		EventType:                 x.EventType,
		EventTags:                 x.EventTags,
		EventCreatedAt:            x.EventCreatedAt,
		EventUpdatedAt:            x.EventUpdatedAt,
	}
}

func FromModels(list []m.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
