package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "eventku_backend/internals/features/registrations/registrations/model"
)

func TestFromModel_ExposesDerivedSizes(t *testing.T) {
	reg := m.RegistrationModel{
		RegistrationID:   uuid.New(),
		RegistrationType: m.RegistrationTypeTeam,
		Registrants: []m.RegistrantModel{
			{RegistrantID: uuid.New(), RegistrantType: m.RegistrantTypeUser},
			{RegistrantID: uuid.New(), RegistrantType: m.RegistrantTypeFamilyMember},
			{RegistrantID: uuid.New(), RegistrantType: m.RegistrantTypeExternal},
		},
	}

	resp := FromModel(reg)
	assert.Equal(t, 3, resp.TeamSize)
	assert.Equal(t, 1, resp.FamilySize)
	assert.Len(t, resp.Registrants, 3)
}
