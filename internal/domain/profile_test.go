package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetCalendar_ActivatesProfileAtomically(t *testing.T) {
	profile := &Profile{
		BirthDate:  "1995-03-15",
		BirthTime:  "09:30",
		BirthPlace: "Seoul",
		Gender:     GenderFemale,
	}
	require.False(t, profile.IsSajuActive)

	profile.SetCalendar(&CalendarAttributes{
		YearStem: "Gap", YearBranch: "Ja",
		MonthStem: "Eul", MonthBranch: "Chuk",
		DayStem: "Byeong", DayBranch: "In",
		TimeStem: "Jeong", TimeBranch: "Myo",
		ElementFire: 3, ElementWood: 2,
		TenGodsYear: []string{"Bi-gyeon", "Sik-sin"},
		MajorCycle:  4,
	})

	assert.True(t, profile.IsSajuActive)
	assert.Equal(t, "Gap", profile.YearStem)
	assert.Equal(t, "Myo", profile.TimeBranch)
	assert.Equal(t, 3, profile.ElementFire)
	assert.Equal(t, "Bi-gyeon, Sik-sin", profile.TenGodsYear)
	assert.Equal(t, 4, profile.MajorCycle)
}

func TestMissingSlots_CompleteProfile(t *testing.T) {
	profile := &Profile{
		BirthDate:  "1995-03-15",
		BirthTime:  "09:30",
		BirthPlace: "Seoul",
		Gender:     GenderMale,
	}

	assert.Empty(t, profile.MissingSlots())
}

func TestApplySlots_UnknownKeysIgnored(t *testing.T) {
	profile := &Profile{}

	profile.ApplySlots(SlotValues{
		"zodiac":      "tiger",
		SlotBirthDate: "1995-03-15",
	})

	assert.Equal(t, "1995-03-15", profile.BirthDate)
	assert.Empty(t, profile.BirthPlace)
}
