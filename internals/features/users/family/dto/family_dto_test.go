package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	m "eventku_backend/internals/features/users/family/model"
	userModel "eventku_backend/internals/features/users/user/model"
)

func TestFromModel_FamilySizeDerivedFromMembers(t *testing.T) {
	fam := m.FamilyModel{
		FamilyID:                uuid.New(),
		FamilyName:              "Keluarga Santoso",
		FamilyMainContactUserID: uuid.New(),
	}
	members := []userModel.UserModel{
		{UserID: uuid.New(), UserName: "Budi"},
		{UserID: uuid.New(), UserName: "Siti"},
		{UserID: uuid.New(), UserName: "Andi"},
	}

	resp := FromModel(fam, members)
	assert.Equal(t, 3, resp.FamilySize)
	assert.Len(t, resp.Members, 3)

	resp = FromModel(fam, nil)
	assert.Equal(t, 0, resp.FamilySize)
	assert.Empty(t, resp.Members)
}
