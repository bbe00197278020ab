package fortune

import (
	"context"
	"testing"

	"github.com/TBOO-AI/agent/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSlots_OnlyRequestedSlotsKept(t *testing.T) {
	env := newTestEnv()
	env.generator.responses = []string{
		`{"birth_date": "1995-03-15", "gender": "male", "birth_place": "Seoul"}`,
	}

	values, err := env.svc.extractSlots(context.Background(), "born march 15 1995, male", []string{domain.SlotBirthDate, domain.SlotGender})

	require.NoError(t, err)
	assert.Equal(t, "1995-03-15", values[domain.SlotBirthDate])
	assert.Equal(t, domain.GenderMale, values[domain.SlotGender])
	// birth_place не запрашивался - модель его выдумала, игнорируем
	assert.NotContains(t, values, domain.SlotBirthPlace)
}

func TestExtractSlots_MalformedJSONIsEmptyNotError(t *testing.T) {
	env := newTestEnv()
	env.generator.responses = []string{"I could not find any structured data, sorry!"}

	values, err := env.svc.extractSlots(context.Background(), "hello", []string{domain.SlotBirthDate})

	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestExtractSlots_CodeFencedJSON(t *testing.T) {
	env := newTestEnv()
	env.generator.responses = []string{"```json\n{\"birth_time\": \"09:30\"}\n```"}

	values, err := env.svc.extractSlots(context.Background(), "around 9:30 in the morning", []string{domain.SlotBirthTime})

	require.NoError(t, err)
	assert.Equal(t, "09:30", values[domain.SlotBirthTime])
}

func TestExtractSlots_GeneratorFailurePropagates(t *testing.T) {
	env := newTestEnv()
	env.generator.err = &domain.DownstreamServiceError{Service: "generation", Err: assert.AnError}

	_, err := env.svc.extractSlots(context.Background(), "hello", []string{domain.SlotBirthDate})

	require.Error(t, err)
	var downstream *domain.DownstreamServiceError
	assert.ErrorAs(t, err, &downstream)
}

func TestNormalizeBirthDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"1995-03-15", "1995-03-15", true},
		{"19950315", "1995-03-15", true},
		{"1995.03.15", "1995-03-15", true},
		{"1995/03/15", "1995-03-15", true},
		{"March 15, 1995", "1995-03-15", true},
		{"15th of March", "", false},
		{"not a date", "", false},
	}

	for _, tc := range cases {
		got, ok := normalizeBirthDate(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeBirthTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"09:30", "09:30", true},
		{"9:30", "09:30", true},
		{"09.30", "09:30", true},
		{"3:04 PM", "15:04", true},
		{"00:00", "00:00", true}, // сентинел "не знаю время"
		{"morningish", "", false},
	}

	for _, tc := range cases {
		got, ok := normalizeBirthTime(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestNormalizeGender(t *testing.T) {
	for _, in := range []string{"male", "M", "Man"} {
		got, ok := normalizeGender(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, domain.GenderMale, got)
	}
	for _, in := range []string{"female", "F", "Woman"} {
		got, ok := normalizeGender(in)
		require.True(t, ok, "input %q", in)
		assert.Equal(t, domain.GenderFemale, got)
	}

	_, ok := normalizeGender("attack helicopter")
	assert.False(t, ok)
}

func TestParseStructured_RepairsSloppyJSON(t *testing.T) {
	// незакрытая кавычка и одинарные кавычки - типичный выхлоп модели
	parsed := parseStructured(`{'concern': 'career change'}`)

	require.NotNil(t, parsed)
	assert.Equal(t, "career change", parsed["concern"])
}

func TestParseStructured_NonStringValuesSkipped(t *testing.T) {
	parsed := parseStructured(`{"concern": "money", "confidence": 0.9}`)

	require.NotNil(t, parsed)
	assert.Equal(t, "money", parsed["concern"])
	assert.NotContains(t, parsed, "confidence")
}

func TestApplySlots_NeverBlanksExistingSlot(t *testing.T) {
	profile := &domain.Profile{BirthDate: "1995-03-15", Gender: domain.GenderMale}

	profile.ApplySlots(domain.SlotValues{
		domain.SlotBirthDate: "",
		domain.SlotBirthTime: "14:00",
	})

	assert.Equal(t, "1995-03-15", profile.BirthDate)
	assert.Equal(t, "14:00", profile.BirthTime)
	assert.Equal(t, domain.GenderMale, profile.Gender)
}

func TestMissingSlots_FixedOrder(t *testing.T) {
	profile := &domain.Profile{BirthTime: "09:30"}

	missing := profile.MissingSlots()

	assert.Equal(t, []string{domain.SlotBirthDate, domain.SlotBirthPlace, domain.SlotGender}, missing)
}
