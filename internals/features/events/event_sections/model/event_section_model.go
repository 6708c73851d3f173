package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventSectionModel struct {
	EventSectionID uuid.UUID `gorm:"column:event_section_id;type:uuid;default:gen_random_uuid();primaryKey" json:"event_section_id"`

	// FK wajib; section selalu milik tepat satu event
	EventSectionEventID uuid.UUID `gorm:"column:event_section_event_id;type:uuid;not null;index" json:"event_section_event_id"`

	EventSectionTitle       string  `gorm:"column:event_section_title;type:text;not null" json:"event_section_title"`
	EventSectionDescription *string `gorm:"column:event_section_description;type:text" json:"event_section_description,omitempty"`

	EventSectionDate      time.Time `gorm:"column:event_section_date;type:date;not null" json:"event_section_date"`
	EventSectionStartTime string    `gorm:"column:event_section_start_time;type:varchar(5);not null" json:"event_section_start_time"` // "HH:MM"
	EventSectionLocation  *string   `gorm:"column:event_section_location;type:text" json:"event_section_location,omitempty"`

	// NULL / 0 = tanpa batas
	EventSectionMaxParticipants *int `gorm:"column:event_section_max_participants" json:"event_section_max_participants,omitempty"`
	EventSectionPriceIDR        *int `gorm:"column:event_section_price_idr" json:"event_section_price_idr,omitempty"`

	// Batas usia opsional (min <= max divalidasi di DTO)
	EventSectionMinAge *int `gorm:"column:event_section_min_age" json:"event_section_min_age,omitempty"`
	EventSectionMaxAge *int `gorm:"column:event_section_max_age" json:"event_section_max_age,omitempty"`

	// Counter slot terpakai; hanya dimutasi di dalam transaksi registrasi
	EventSectionQuotaTaken int `gorm:"column:event_section_quota_taken;not null;default:0" json:"event_section_quota_taken"`

	EventSectionCreatedAt time.Time      `gorm:"column:event_section_created_at;autoCreateTime" json:"event_section_created_at"`
	EventSectionUpdatedAt time.Time      `gorm:"column:event_section_updated_at;autoUpdateTime" json:"event_section_updated_at"`
	EventSectionDeletedAt gorm.DeletedAt `gorm:"column:event_section_deleted_at;index" json:"event_section_deleted_at,omitempty"`
}

func (EventSectionModel) TableName() string { return "event_sections" }

// HasCapacity melaporkan apakah masih ada slot tersisa.
// Max nil atau 0 berarti tanpa batas.
func (s EventSectionModel) HasCapacity() bool {
	if s.EventSectionMaxParticipants == nil || *s.EventSectionMaxParticipants <= 0 {
		return true
	}
	return s.EventSectionQuotaTaken < *s.EventSectionMaxParticipants
}
