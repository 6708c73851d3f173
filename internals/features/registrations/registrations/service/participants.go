package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	regDTO "eventku_backend/internals/features/registrations/registrations/dto"
	regModel "eventku_backend/internals/features/registrations/registrations/model"
	userModel "eventku_backend/internals/features/users/user/model"
)

// BuildParticipants menormalkan daftar registrant menjadi identitas
// seragam: referensi user/family_member di-lookup sekali batch, external
// dibaca dari field inline.
func BuildParticipants(db *gorm.DB, registrants []regModel.RegistrantModel) ([]regDTO.ParticipantResponse, error) {
	ids := make([]uuid.UUID, 0, len(registrants))
	for _, rg := range registrants {
		if rg.RegistrantUserID != nil {
			ids = append(ids, *rg.RegistrantUserID)
		}
		if rg.RegistrantFamilyMemberID != nil {
			ids = append(ids, *rg.RegistrantFamilyMemberID)
		}
	}

	byID := map[uuid.UUID]userModel.UserModel{}
	if len(ids) > 0 {
		var users []userModel.UserModel
		if err := db.Where("user_id IN ?", ids).Find(&users).Error; err != nil {
			return nil, err
		}
		for _, u := range users {
			byID[u.UserID] = u
		}
	}

	out := make([]regDTO.ParticipantResponse, 0, len(registrants))
	for _, rg := range registrants {
		p := regDTO.ParticipantResponse{
			RegistrantID: rg.RegistrantID,
			Type:         rg.RegistrantType,
		}
		switch rg.RegistrantType {
		case regModel.RegistrantTypeUser, regModel.RegistrantTypeFamilyMember:
			ref := rg.RegistrantUserID
			if ref == nil {
				ref = rg.RegistrantFamilyMemberID
			}
			if ref != nil {
				if u, ok := byID[*ref]; ok {
					uid := u.UserID
					email := u.UserEmail
					p.Name = u.UserName
					p.Email = &email
					p.UserID = &uid
				}
			}
		case regModel.RegistrantTypeExternal:
			if rg.RegistrantName != nil {
				p.Name = *rg.RegistrantName
			}
			p.Email = rg.RegistrantEmail
		}
		out = append(out, p)
	}
	return out, nil
}
