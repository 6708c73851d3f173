package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeamSize_ZeroForNonTeam(t *testing.T) {
	r := RegistrationModel{
		RegistrationType: RegistrationTypeIndividual,
		Registrants: []RegistrantModel{
			{RegistrantType: RegistrantTypeUser},
			{RegistrantType: RegistrantTypeExternal},
		},
	}
	assert.Equal(t, 0, r.TeamSize())
}

func TestTeamSize_CountsAllRegistrantsForTeam(t *testing.T) {
	r := RegistrationModel{
		RegistrationType: RegistrationTypeTeam,
		Registrants: []RegistrantModel{
			{RegistrantType: RegistrantTypeUser},
			{RegistrantType: RegistrantTypeFamilyMember},
			{RegistrantType: RegistrantTypeExternal},
		},
	}
	assert.Equal(t, 3, r.TeamSize())
}

func TestFamilySize_CountsFamilyMembersOnly(t *testing.T) {
	r := RegistrationModel{
		RegistrationType: RegistrationTypeFamily,
		Registrants: []RegistrantModel{
			{RegistrantType: RegistrantTypeFamilyMember},
			{RegistrantType: RegistrantTypeFamilyMember},
			{RegistrantType: RegistrantTypeExternal},
		},
	}
	assert.Equal(t, 2, r.FamilySize())
}

// Dihitung apa pun tipe registrasinya, sesuai perilaku terdokumentasi.
func TestFamilySize_IgnoresRegistrationType(t *testing.T) {
	r := RegistrationModel{
		RegistrationType: RegistrationTypeIndividual,
		Registrants: []RegistrantModel{
			{RegistrantType: RegistrantTypeFamilyMember},
		},
	}
	assert.Equal(t, 1, r.FamilySize())
}
