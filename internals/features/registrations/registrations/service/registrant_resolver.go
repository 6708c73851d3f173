// file: internals/features/registrations/registrations/service/registrant_resolver.go
package service

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	regDTO "eventku_backend/internals/features/registrations/registrations/dto"
	regModel "eventku_backend/internals/features/registrations/registrations/model"
	userModel "eventku_backend/internals/features/users/user/model"
)

var validGenders = map[string]bool{
	regModel.GenderMale:        true,
	regModel.GenderFemale:      true,
	regModel.GenderOther:       true,
	regModel.GenderUndisclosed: true,
}

// ResolvedRegistrant: hasil resolve satu entri, berisi model siap simpan
// plus identitas ternormalisasi untuk respons.
type ResolvedRegistrant struct {
	Model regModel.RegistrantModel

	Name        string
	Email       *string
	UserID      *uuid.UUID
	DateOfBirth *time.Time
}

// ResolveRegistrants memvalidasi daftar registrant terhadap tipe tag-nya.
// Tag referensi (user / family_member) mengabaikan field inline; tag
// external mewajibkan nama. family_member harus anggota keluarga pembuat.
// Dipanggil di dalam transaksi registrasi.
func ResolveRegistrants(tx *gorm.DB, creator userModel.UserModel, inputs []regDTO.RegistrantInput) ([]ResolvedRegistrant, error) {
	out := make([]ResolvedRegistrant, 0, len(inputs))
	for i, in := range inputs {
		r, err := resolveOne(tx, creator, in)
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return nil, fiber.NewError(fe.Code, "Registrant ke-"+strconv.Itoa(i+1)+": "+fe.Message)
			}
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func resolveOne(tx *gorm.DB, creator userModel.UserModel, in regDTO.RegistrantInput) (ResolvedRegistrant, error) {
	switch in.Type {
	case regModel.RegistrantTypeUser:
		if in.UserID == nil {
			return ResolvedRegistrant{}, fiber.NewError(fiber.StatusBadRequest, "user_id wajib diisi untuk tipe user")
		}
		var u userModel.UserModel
		if err := tx.First(&u, "user_id = ?", *in.UserID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ResolvedRegistrant{}, fiber.NewError(fiber.StatusBadRequest, "User tidak ditemukan")
			}
			return ResolvedRegistrant{}, err
		}
		uid := u.UserID
		email := u.UserEmail
		return ResolvedRegistrant{
			Model: regModel.RegistrantModel{
				RegistrantType:   regModel.RegistrantTypeUser,
				RegistrantUserID: &uid,
			},
			Name:   u.UserName,
			Email:  &email,
			UserID: &uid,
		}, nil

	case regModel.RegistrantTypeFamilyMember:
		if in.FamilyMemberID == nil {
			return ResolvedRegistrant{}, fiber.NewError(fiber.StatusBadRequest, "family_member_id wajib diisi untuk tipe family_member")
		}
		if creator.UserFamilyID == nil {
			return ResolvedRegistrant{}, fiber.NewError(fiber.StatusBadRequest, "Anda belum tergabung dalam keluarga")
		}
		var u userModel.UserModel
		if err := tx.First(&u, "user_id = ?", *in.FamilyMemberID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return ResolvedRegistrant{}, fiber.NewError(fiber.StatusBadRequest, "Anggota keluarga tidak ditemukan")
			}
			return ResolvedRegistrant{}, err
		}
		if u.UserFamilyID == nil || *u.UserFamilyID != *creator.UserFamilyID {
			return ResolvedRegistrant{}, fiber.NewError(fiber.StatusBadRequest, "User tersebut bukan anggota keluarga Anda")
		}
		uid := u.UserID
		email := u.UserEmail
		return ResolvedRegistrant{
			Model: regModel.RegistrantModel{
				RegistrantType:           regModel.RegistrantTypeFamilyMember,
				RegistrantFamilyMemberID: &uid,
			},
			Name:   u.UserName,
			Email:  &email,
			UserID: &uid,
		}, nil

	case regModel.RegistrantTypeExternal:
		if in.Name == nil || *in.Name == "" {
			return ResolvedRegistrant{}, fiber.NewError(fiber.StatusBadRequest, "name wajib diisi untuk tipe external")
		}
		if in.Gender != nil && !validGenders[*in.Gender] {
			return ResolvedRegistrant{}, fiber.NewError(fiber.StatusBadRequest, "Gender tidak valid")
		}
		return ResolvedRegistrant{
			Model: regModel.RegistrantModel{
				RegistrantType:        regModel.RegistrantTypeExternal,
				RegistrantName:        in.Name,
				RegistrantEmail:       in.Email,
				RegistrantPhone:       in.Phone,
				RegistrantGender:      in.Gender,
				RegistrantDateOfBirth: in.DateOfBirth,
			},
			Name:        *in.Name,
			Email:       in.Email,
			DateOfBirth: in.DateOfBirth,
		}, nil

	default:
		return ResolvedRegistrant{}, fiber.NewError(fiber.StatusBadRequest, "Tipe registrant tidak dikenali")
	}
}

// AgeAt menghitung umur penuh pada tanggal acuan. Perbandingan pakai
// (bulan, hari), bukan YearDay, supaya tahun kabisat tidak menggeser hasil.
func AgeAt(dob, at time.Time) int {
	age := at.Year() - dob.Year()
	if at.Month() < dob.Month() ||
		(at.Month() == dob.Month() && at.Day() < dob.Day()) {
		age--
	}
	return age
}

// CheckAgeEligibility: registrant dengan tanggal lahir terisi harus masuk
// rentang umur section; tanggal lahir kosong diloloskan.
func CheckAgeEligibility(list []ResolvedRegistrant, sectionDate time.Time, minAge, maxAge *int) error {
	if minAge == nil && maxAge == nil {
		return nil
	}
	for _, r := range list {
		if r.DateOfBirth == nil {
			continue
		}
		age := AgeAt(*r.DateOfBirth, sectionDate)
		if minAge != nil && age < *minAge {
			return fiber.NewError(fiber.StatusBadRequest, "Registrant "+r.Name+" di bawah batas umur minimum section")
		}
		if maxAge != nil && age > *maxAge {
			return fiber.NewError(fiber.StatusBadRequest, "Registrant "+r.Name+" melebihi batas umur maksimum section")
		}
	}
	return nil
}
