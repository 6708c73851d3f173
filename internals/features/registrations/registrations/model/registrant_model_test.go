package model

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

// Registrasi dengan dua registrant external harus bolak-balik lewat JSON
// tanpa kehilangan kelima field inline (name, email, phone, gender, dob).
func TestRegistrationJSONRoundTrip_ExternalRegistrants(t *testing.T) {
	dob1 := time.Date(1995, 8, 17, 0, 0, 0, 0, time.UTC)
	dob2 := time.Date(2002, 1, 5, 0, 0, 0, 0, time.UTC)

	reg := RegistrationModel{
		RegistrationID:       uuid.New(),
		RegistrationType:     RegistrationTypeTeam,
		RegistrationTeamName: strPtr("Tim Garuda"),
		Registrants: []RegistrantModel{
			{
				RegistrantID:          uuid.New(),
				RegistrantType:        RegistrantTypeExternal,
				RegistrantName:        strPtr("Budi Santoso"),
				RegistrantEmail:       strPtr("budi@example.com"),
				RegistrantPhone:       strPtr("0812345678"),
				RegistrantGender:      strPtr(GenderMale),
				RegistrantDateOfBirth: &dob1,
			},
			{
				RegistrantID:          uuid.New(),
				RegistrantType:        RegistrantTypeExternal,
				RegistrantName:        strPtr("Siti Aminah"),
				RegistrantEmail:       strPtr("siti@example.com"),
				RegistrantPhone:       strPtr("0898765432"),
				RegistrantGender:      strPtr(GenderUndisclosed),
				RegistrantDateOfBirth: &dob2,
			},
		},
	}

	raw, err := sonic.Marshal(reg)
	require.NoError(t, err)

	var back RegistrationModel
	require.NoError(t, sonic.Unmarshal(raw, &back))

	require.Len(t, back.Registrants, 2)
	for i, want := range reg.Registrants {
		got := back.Registrants[i]
		assert.Equal(t, want.RegistrantID, got.RegistrantID)
		assert.Equal(t, RegistrantTypeExternal, got.RegistrantType)
		require.NotNil(t, got.RegistrantName)
		assert.Equal(t, *want.RegistrantName, *got.RegistrantName)
		require.NotNil(t, got.RegistrantEmail)
		assert.Equal(t, *want.RegistrantEmail, *got.RegistrantEmail)
		require.NotNil(t, got.RegistrantPhone)
		assert.Equal(t, *want.RegistrantPhone, *got.RegistrantPhone)
		require.NotNil(t, got.RegistrantGender)
		assert.Equal(t, *want.RegistrantGender, *got.RegistrantGender)
		require.NotNil(t, got.RegistrantDateOfBirth)
		assert.True(t, got.RegistrantDateOfBirth.Equal(*want.RegistrantDateOfBirth))
	}

	assert.Equal(t, reg.RegistrationID, back.RegistrationID)
	require.NotNil(t, back.RegistrationTeamName)
	assert.Equal(t, "Tim Garuda", *back.RegistrationTeamName)
	assert.Equal(t, 2, back.TeamSize())
}
