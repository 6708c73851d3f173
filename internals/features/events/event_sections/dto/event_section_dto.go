// file: internals/features/events/event_sections/dto/event_section_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "eventku_backend/internals/features/events/event_sections/model"
)

/* =============== REQUESTS =============== */

// Create
type CreateEventSectionRequest struct {
	EventSectionEventID uuid.UUID `json:"event_section_event_id" validate:"required"`

	EventSectionTitle       string  `json:"event_section_title" validate:"required,min=3"`
	EventSectionDescription *string `json:"event_section_description" validate:"omitempty"`

	EventSectionDate      time.Time `json:"event_section_date" validate:"required"`
	EventSectionStartTime string    `json:"event_section_start_time" validate:"required,datetime=15:04"`
	EventSectionLocation  *string   `json:"event_section_location" validate:"omitempty"`

	EventSectionMaxParticipants *int `json:"event_section_max_participants" validate:"omitempty,gte=0"`
	EventSectionPriceIDR        *int `json:"event_section_price_idr" validate:"omitempty,gte=0"`

	EventSectionMinAge *int `json:"event_section_min_age" validate:"omitempty,gte=0,lte=150"`
	EventSectionMaxAge *int `json:"event_section_max_age" validate:"omitempty,gte=0,lte=150"`
}

// AgeRangeValid memastikan min <= max ketika keduanya terisi.
func (r CreateEventSectionRequest) AgeRangeValid() bool {
	if r.EventSectionMinAge == nil || r.EventSectionMaxAge == nil {
		return true
	}
	return *r.EventSectionMinAge <= *r.EventSectionMaxAge
}

func (r CreateEventSectionRequest) ToModel() *m.EventSectionModel {
	return &m.EventSectionModel{
		EventSectionEventID:         r.EventSectionEventID,
		EventSectionTitle:           r.EventSectionTitle,
		EventSectionDescription:     r.EventSectionDescription,
		EventSectionDate:            r.EventSectionDate,
		EventSectionStartTime:       r.EventSectionStartTime,
		EventSectionLocation:        r.EventSectionLocation,
		EventSectionMaxParticipants: r.EventSectionMaxParticipants,
		EventSectionPriceIDR:        r.EventSectionPriceIDR,
		EventSectionMinAge:          r.EventSectionMinAge,
		EventSectionMaxAge:          r.EventSectionMaxAge,
	}
}

// Update (partial)
type UpdateEventSectionRequest struct {
	EventSectionTitle       *string `json:"event_section_title" validate:"omitempty,min=3"`
	EventSectionDescription *string `json:"event_section_description" validate:"omitempty"`

	EventSectionDate      *time.Time `json:"event_section_date" validate:"omitempty"`
	EventSectionStartTime *string    `json:"event_section_start_time" validate:"omitempty,datetime=15:04"`
	EventSectionLocation  *string    `json:"event_section_location" validate:"omitempty"`

	EventSectionMaxParticipants *int `json:"event_section_max_participants" validate:"omitempty,gte=0"`
	EventSectionPriceIDR        *int `json:"event_section_price_idr" validate:"omitempty,gte=0"`

	EventSectionMinAge *int `json:"event_section_min_age" validate:"omitempty,gte=0,lte=150"`
	EventSectionMaxAge *int `json:"event_section_max_age" validate:"omitempty,gte=0,lte=150"`
}

// Terapkan perubahan ke model existing (untuk PUT)
func (r UpdateEventSectionRequest) ApplyTo(mo *m.EventSectionModel) {
	if r.EventSectionTitle != nil {
		mo.EventSectionTitle = *r.EventSectionTitle
	}
	if r.EventSectionDescription != nil {
		mo.EventSectionDescription = r.EventSectionDescription
	}
	if r.EventSectionDate != nil {
		mo.EventSectionDate = *r.EventSectionDate
	}
	if r.EventSectionStartTime != nil {
		mo.EventSectionStartTime = *r.EventSectionStartTime
	}
	if r.EventSectionLocation != nil {
		mo.EventSectionLocation = r.EventSectionLocation
	}
	if r.EventSectionMaxParticipants != nil {
		mo.EventSectionMaxParticipants = r.EventSectionMaxParticipants
	}
	if r.EventSectionPriceIDR != nil {
		mo.EventSectionPriceIDR = r.EventSectionPriceIDR
	}
	if r.EventSectionMinAge != nil {
		mo.EventSectionMinAge = r.EventSectionMinAge
	}
	if r.EventSectionMaxAge != nil {
		mo.EventSectionMaxAge = r.EventSectionMaxAge
	}
}

/* =============== RESPONSES =============== */

type EventSectionResponse struct {
	EventSectionID      uuid.UUID `json:"event_section_id"`
	EventSectionEventID uuid.UUID `json:"event_section_event_id"`

	EventSectionTitle       string  `json:"event_section_title"`
	EventSectionDescription *string `json:"event_section_description,omitempty"`

	EventSectionDate      time.Time `json:"event_section_date"`
	EventSectionStartTime string    `json:"event_section_start_time"`
	EventSectionLocation  *string   `json:"event_section_location,omitempty"`

	EventSectionMaxParticipants *int `json:"event_section_max_participants,omitempty"`
	EventSectionPriceIDR        *int `json:"event_section_price_idr,omitempty"`

	EventSectionMinAge *int `json:"event_section_min_age,omitempty"`
	EventSectionMaxAge *int `json:"event_section_max_age,omitempty"`

	EventSectionQuotaTaken int `json:"event_section_quota_taken"`

	EventSectionCreatedAt time.Time `json:"event_section_created_at"`
	EventSectionUpdatedAt time.Time `json:"event_section_updated_at"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.EventSectionModel) EventSectionResponse {
	return EventSectionResponse{
		EventSectionID:              x.EventSectionID,
		EventSectionEventID:         x.EventSectionEventID,
		EventSectionTitle:           x.EventSectionTitle,
		EventSectionDescription:     x.EventSectionDescription,
		EventSectionDate:            x.EventSectionDate,
		EventSectionStartTime:       x.EventSectionStartTime,
		EventSectionLocation:        x.EventSectionLocation,
		EventSectionMaxParticipants: x.EventSectionMaxParticipants,
		EventSectionPriceIDR:        x.EventSectionPriceIDR,
		EventSectionMinAge:          x.EventSectionMinAge,
		EventSectionMaxAge:          x.EventSectionMaxAge,
		EventSectionQuotaTaken:      x.EventSectionQuotaTaken,
		EventSectionCreatedAt:       x.EventSectionCreatedAt,
		EventSectionUpdatedAt:       x.EventSectionUpdatedAt,
	}
}

func FromModels(list []m.EventSectionModel) []EventSectionResponse {
	out := make([]EventSectionResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
