package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestHasCapacity_UnlimitedWhenMaxNil(t *testing.T) {
	s := EventSectionModel{EventSectionQuotaTaken: 9999}
	assert.True(t, s.HasCapacity())
}

func TestHasCapacity_UnlimitedWhenMaxZero(t *testing.T) {
	s := EventSectionModel{
		EventSectionMaxParticipants: intPtr(0),
		EventSectionQuotaTaken:      5,
	}
	assert.True(t, s.HasCapacity())
}

func TestHasCapacity_BelowMax(t *testing.T) {
	s := EventSectionModel{
		EventSectionMaxParticipants: intPtr(2),
		EventSectionQuotaTaken:      1,
	}
	assert.True(t, s.HasCapacity())
}

func TestHasCapacity_FullAtMax(t *testing.T) {
	s := EventSectionModel{
		EventSectionMaxParticipants: intPtr(2),
		EventSectionQuotaTaken:      2,
	}
	assert.False(t, s.HasCapacity())
}
