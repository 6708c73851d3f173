package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Tipe event menentukan bentuk registrasi yang diterima section-nya.
const (
	EventTypeIndividual = "individual"
	EventTypeTeam       = "team"
	EventTypeFamily     = "family"
)

type EventModel struct {
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_id"`

	EventTitle       string  `gorm:"column:event_title;type:text;not null" json:"event_title"`
	EventDescription *string `gorm:"column:event_description;type:text" json:"event_description,omitempty"`
	EventLocation    *string `gorm:"column:event_location;type:text" json:"event_location,omitempty"`

	// Kode registrasi unik global (unique index di DB, bukan check-then-insert)
	EventRegistrationCode string `gorm:"column:event_registration_code;type:varchar(50);not null;uniqueIndex" json:"event_registration_code"`

	EventStartDate            time.Time  `gorm:"column:event_start_date;type:date;not null" json:"event_start_date"`
	EventEndDate              time.Time  `gorm:"column:event_end_date;type:date;not null" json:"event_end_date"`
	EventRegistrationDeadline *time.Time `gorm:"column:event_registration_deadline;type:date" json:"event_registration_deadline,omitempty"`

	EventMaxParticipants *int `gorm:"column:event_max_participants" json:"event_max_participants,omitempty"`
	EventBasePriceIDR    *int `gorm:"column:event_base_price_idr" json:"event_base_price_idr,omitempty"`

	EventType string `gorm:"column:event_type;type:varchar(20);not null" json:"event_type"`

	EventTags datatypes.JSON `gorm:"column:event_tags;type:jsonb;not null;default:'[]'" json:"event_tags"`

	EventCreatedAt time.Time      `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time      `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
	EventDeletedAt gorm.DeletedAt `gorm:"column:event_deleted_at;index" json:"event_deleted_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }
