package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RegistrationTypeIndividual = "individual"
	RegistrationTypeTeam       = "team"
	RegistrationTypeFamily     = "family"

	RegistrationStatusPending   = "pending"
	RegistrationStatusConfirmed = "confirmed"
	RegistrationStatusCancelled = "cancelled"

	PaymentStatusUnpaid  = "unpaid"
	PaymentStatusPartial = "partial"
	PaymentStatusPaid    = "paid"
)

// RegistrationModel: bentuk kanonik registrasi, yaitu event + section + tipe
// + daftar registrant. Bentuk lama (participants/registeredBy) tidak dipakai.
type RegistrationModel struct {
	RegistrationID uuid.UUID `gorm:"column:registration_id;type:uuid;default:gen_random_uuid();primaryKey" json:"registration_id"`

	RegistrationEventID        uuid.UUID `gorm:"column:registration_event_id;type:uuid;not null;index" json:"registration_event_id"`
	RegistrationEventSectionID uuid.UUID `gorm:"column:registration_event_section_id;type:uuid;not null;index" json:"registration_event_section_id"`

	// User pembuat registrasi
	RegistrationUserID uuid.UUID `gorm:"column:registration_user_id;type:uuid;not null;index" json:"registration_user_id"`

	RegistrationType     string  `gorm:"column:registration_type;type:varchar(20);not null" json:"registration_type"`
	RegistrationTeamName *string `gorm:"column:registration_team_name;type:text" json:"registration_team_name,omitempty"`

	RegistrationStatus        string `gorm:"column:registration_status;type:varchar(20);not null;default:'pending'" json:"registration_status"`
	RegistrationPaymentStatus string `gorm:"column:registration_payment_status;type:varchar(20);not null;default:'unpaid'" json:"registration_payment_status"`

	RegistrationTotalAmountIDR int `gorm:"column:registration_total_amount_idr;not null;default:0" json:"registration_total_amount_idr"`

	RegistrationCreatedAt time.Time      `gorm:"column:registration_created_at;autoCreateTime" json:"registration_created_at"`
	RegistrationUpdatedAt time.Time      `gorm:"column:registration_updated_at;autoUpdateTime" json:"registration_updated_at"`
	RegistrationDeletedAt gorm.DeletedAt `gorm:"column:registration_deleted_at;index" json:"registration_deleted_at,omitempty"`

	Registrants []RegistrantModel `gorm:"foreignKey:RegistrantRegistrationID;references:RegistrationID" json:"registrants"`
}

func (RegistrationModel) TableName() string { return "registrations" }

// TeamSize dihitung on-demand, tidak disimpan.
// 0 untuk registrasi non-team.
func (r RegistrationModel) TeamSize() int {
	if r.RegistrationType != RegistrationTypeTeam {
		return 0
	}
	return len(r.Registrants)
}

// FamilySize menghitung registrant bertipe family_member, sengaja tanpa
// melihat registration_type. TeamSize digate, FamilySize tidak.
func (r RegistrationModel) FamilySize() int {
	n := 0
	for _, rg := range r.Registrants {
		if rg.RegistrantType == RegistrantTypeFamilyMember {
			n++
		}
	}
	return n
}
