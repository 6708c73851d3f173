package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	helper "eventku_backend/internals/helpers"
)

func intPtr(v int) *int { return &v }

func validCreateReq() CreateEventSectionRequest {
	return CreateEventSectionRequest{
		EventSectionEventID:   uuid.New(),
		EventSectionTitle:     "Lari 5K",
		EventSectionDate:      time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		EventSectionStartTime: "07:30",
	}
}

func TestCreateEventSectionRequest_Valid(t *testing.T) {
	assert.NoError(t, helper.Validate.Struct(validCreateReq()))
}

func TestCreateEventSectionRequest_RejectsBadStartTime(t *testing.T) {
	req := validCreateReq()
	req.EventSectionStartTime = "7.30 pagi"
	assert.Error(t, helper.Validate.Struct(req))

	req.EventSectionStartTime = "25:00"
	assert.Error(t, helper.Validate.Struct(req))
}

func TestAgeRangeValid(t *testing.T) {
	req := validCreateReq()
	assert.True(t, req.AgeRangeValid())

	req.EventSectionMinAge = intPtr(10)
	assert.True(t, req.AgeRangeValid())

	req.EventSectionMaxAge = intPtr(17)
	assert.True(t, req.AgeRangeValid())

	req.EventSectionMinAge = intPtr(18)
	assert.False(t, req.AgeRangeValid())
}
