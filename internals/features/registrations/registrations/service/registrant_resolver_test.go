package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	regDTO "eventku_backend/internals/features/registrations/registrations/dto"
	regModel "eventku_backend/internals/features/registrations/registrations/model"
	userModel "eventku_backend/internals/features/users/user/model"
)

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "expected *fiber.Error, got %T", err)
	return fe.Code
}

func TestResolveOne_ExternalRequiresName(t *testing.T) {
	_, err := resolveOne(nil, userModel.UserModel{}, regDTO.RegistrantInput{
		Type: regModel.RegistrantTypeExternal,
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestResolveOne_ExternalRejectsUnknownGender(t *testing.T) {
	_, err := resolveOne(nil, userModel.UserModel{}, regDTO.RegistrantInput{
		Type:   regModel.RegistrantTypeExternal,
		Name:   strPtr("Budi"),
		Gender: strPtr("alien"),
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestResolveOne_ExternalKeepsInlineFields(t *testing.T) {
	dob := time.Date(2010, 3, 14, 0, 0, 0, 0, time.UTC)
	in := regDTO.RegistrantInput{
		Type:        regModel.RegistrantTypeExternal,
		Name:        strPtr("Budi Santoso"),
		Email:       strPtr("budi@example.com"),
		Phone:       strPtr("0812345678"),
		Gender:      strPtr(regModel.GenderUndisclosed),
		DateOfBirth: &dob,
	}

	got, err := resolveOne(nil, userModel.UserModel{}, in)
	require.NoError(t, err)

	m := got.Model
	assert.Equal(t, regModel.RegistrantTypeExternal, m.RegistrantType)
	require.NotNil(t, m.RegistrantName)
	assert.Equal(t, "Budi Santoso", *m.RegistrantName)
	require.NotNil(t, m.RegistrantEmail)
	assert.Equal(t, "budi@example.com", *m.RegistrantEmail)
	require.NotNil(t, m.RegistrantPhone)
	assert.Equal(t, "0812345678", *m.RegistrantPhone)
	require.NotNil(t, m.RegistrantGender)
	assert.Equal(t, "prefer not to say", *m.RegistrantGender)
	require.NotNil(t, m.RegistrantDateOfBirth)
	assert.True(t, m.RegistrantDateOfBirth.Equal(dob))

	assert.Equal(t, "Budi Santoso", got.Name)
	require.NotNil(t, got.DateOfBirth)
}

func TestResolveOne_UserRequiresUserID(t *testing.T) {
	_, err := resolveOne(nil, userModel.UserModel{}, regDTO.RegistrantInput{
		Type: regModel.RegistrantTypeUser,
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestResolveOne_FamilyMemberRequiresID(t *testing.T) {
	_, err := resolveOne(nil, userModel.UserModel{}, regDTO.RegistrantInput{
		Type: regModel.RegistrantTypeFamilyMember,
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestResolveOne_UnknownTypeRejected(t *testing.T) {
	_, err := resolveOne(nil, userModel.UserModel{}, regDTO.RegistrantInput{
		Type: "robot",
	})
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestAgeAt(t *testing.T) {
	dob := time.Date(2010, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 13, AgeAt(dob, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 14, AgeAt(dob, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 14, AgeAt(dob, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
}

// Ulang tahun tepat di tanggal acuan harus dihitung penuh walaupun tahun
// lahir kabisat dan tahun acuan bukan (atau sebaliknya).
func TestAgeAt_LeapYearBoundary(t *testing.T) {
	dob := time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC) // tahun kabisat

	assert.Equal(t, 26, AgeAt(dob, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 25, AgeAt(dob, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)))

	dob = time.Date(2001, 3, 1, 0, 0, 0, 0, time.UTC) // tahun biasa
	assert.Equal(t, 23, AgeAt(dob, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 22, AgeAt(dob, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
}

// Registrant tepat di umur minimum pada tanggal section tidak boleh ditolak.
func TestCheckAgeEligibility_ExactMinimumOnLeapBoundary(t *testing.T) {
	dob := time.Date(2000, 3, 1, 0, 0, 0, 0, time.UTC)
	sectionDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	err := CheckAgeEligibility(
		[]ResolvedRegistrant{{Name: "A", DateOfBirth: &dob}},
		sectionDate, intPtr(26), nil)
	assert.NoError(t, err)
}

func TestCheckAgeEligibility(t *testing.T) {
	sectionDate := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	dobTooYoung := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)  // 5 tahun
	dobInRange := time.Date(2014, 5, 1, 0, 0, 0, 0, time.UTC)   // 11 tahun
	dobTooOld := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)    // 35 tahun

	t.Run("no limits passes", func(t *testing.T) {
		err := CheckAgeEligibility([]ResolvedRegistrant{{Name: "A", DateOfBirth: &dobTooOld}}, sectionDate, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("unknown dob passes", func(t *testing.T) {
		err := CheckAgeEligibility([]ResolvedRegistrant{{Name: "A"}}, sectionDate, intPtr(10), intPtr(17))
		assert.NoError(t, err)
	})

	t.Run("in range passes", func(t *testing.T) {
		err := CheckAgeEligibility([]ResolvedRegistrant{{Name: "A", DateOfBirth: &dobInRange}}, sectionDate, intPtr(10), intPtr(17))
		assert.NoError(t, err)
	})

	t.Run("below min rejected", func(t *testing.T) {
		err := CheckAgeEligibility([]ResolvedRegistrant{{Name: "A", DateOfBirth: &dobTooYoung}}, sectionDate, intPtr(10), intPtr(17))
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})

	t.Run("above max rejected", func(t *testing.T) {
		err := CheckAgeEligibility([]ResolvedRegistrant{{Name: "A", DateOfBirth: &dobTooOld}}, sectionDate, intPtr(10), intPtr(17))
		require.Error(t, err)
		assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
	})
}
