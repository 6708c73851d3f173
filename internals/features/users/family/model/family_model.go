package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FamilyModel struct {
	FamilyID uuid.UUID `gorm:"column:family_id;type:uuid;default:gen_random_uuid();primaryKey" json:"family_id"`

	FamilyName string `gorm:"column:family_name;type:text;not null" json:"family_name"`

	// Kontak utama keluarga (FK ke users)
	FamilyMainContactUserID uuid.UUID `gorm:"column:family_main_contact_user_id;type:uuid;not null" json:"family_main_contact_user_id"`

	// Kontak darurat bentuk bebas: {"name": ..., "phone": ..., "relation": ...}
	FamilyEmergencyContact datatypes.JSON `gorm:"column:family_emergency_contact;type:jsonb" json:"family_emergency_contact,omitempty"`

	FamilyAddress *string `gorm:"column:family_address;type:text" json:"family_address,omitempty"`

	FamilyCreatedAt time.Time      `gorm:"column:family_created_at;autoCreateTime" json:"family_created_at"`
	FamilyUpdatedAt time.Time      `gorm:"column:family_updated_at;autoUpdateTime" json:"family_updated_at"`
	FamilyDeletedAt gorm.DeletedAt `gorm:"column:family_deleted_at;index" json:"family_deleted_at,omitempty"`
}

func (FamilyModel) TableName() string { return "families" }
