package model

import (
	"time"

	"github.com/google/uuid"
)

// Tag registrant menentukan payload mana yang berlaku:
// user / family_member → field referensi; external → field inline.
const (
	RegistrantTypeUser         = "user"
	RegistrantTypeFamilyMember = "family_member"
	RegistrantTypeExternal     = "external"

	GenderMale        = "male"
	GenderFemale      = "female"
	GenderOther       = "other"
	GenderUndisclosed = "prefer not to say"
)

type RegistrantModel struct {
	RegistrantID uuid.UUID `gorm:"column:registrant_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registrant_id"`

	RegistrantRegistrationID uuid.UUID `gorm:"column:registrant_registration_id;type:uuid;not null;index" json:"registrant_registration_id"`

	RegistrantType string `gorm:"column:registrant_type;type:varchar(20);not null" json:"registrant_type"`

	// type=user
	RegistrantUserID *uuid.UUID `gorm:"column:registrant_user_id;type:uuid" json:"registrant_user_id,omitempty"`
	// type=family_member (user yang tergabung di keluarga pembuat registrasi)
	RegistrantFamilyMemberID *uuid.UUID `gorm:"column:registrant_family_member_id;type:uuid" json:"registrant_family_member_id,omitempty"`

	// type=external (inline)
	RegistrantName        *string    `gorm:"column:registrant_name;type:text" json:"registrant_name,omitempty"`
	RegistrantEmail       *string    `gorm:"column:registrant_email;type:varchar(255)" json:"registrant_email,omitempty"`
	RegistrantPhone       *string    `gorm:"column:registrant_phone;type:varchar(30)" json:"registrant_phone,omitempty"`
	RegistrantGender      *string    `gorm:"column:registrant_gender;type:varchar(20)" json:"registrant_gender,omitempty"`
	RegistrantDateOfBirth *time.Time `gorm:"column:registrant_date_of_birth;type:date" json:"registrant_date_of_birth,omitempty"`

	RegistrantCreatedAt time.Time `gorm:"column:registrant_created_at;autoCreateTime" json:"registrant_created_at"`
	RegistrantUpdatedAt time.Time `gorm:"column:registrant_updated_at;autoUpdateTime" json:"registrant_updated_at"`
}

func (RegistrantModel) TableName() string { return "registrants" }
