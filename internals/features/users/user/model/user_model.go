package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users di database
type UserModel struct {
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`

	UserName  string `gorm:"column:user_name;size:50;not null" json:"user_name"`
	UserEmail string `gorm:"column:user_email;size:255;not null;uniqueIndex" json:"user_email"`

	// Hash bcrypt; tidak pernah ikut response
	UserPassword string `gorm:"column:user_password;not null" json:"-"`

	UserPhone   *string `gorm:"column:user_phone;size:30" json:"user_phone,omitempty"`
	UserAddress *string `gorm:"column:user_address;type:text" json:"user_address,omitempty"`

	UserIsAdmin bool `gorm:"column:user_is_admin;not null;default:false" json:"user_is_admin"`

	// FK opsional ke families (anggota keluarga)
	UserFamilyID *uuid.UUID `gorm:"column:user_family_id;type:uuid;index" json:"user_family_id,omitempty"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

// TableName memastikan nama tabel sesuai dengan skema database
func (UserModel) TableName() string { return "users" }
