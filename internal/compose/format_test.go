package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
)

func TestFormatPeriodLabel(t *testing.T) {
	cases := []struct {
		period, regulation int
		want               string
	}{
		{1, 3, "1st"},
		{2, 3, "2nd"},
		{3, 3, "3rd"},
		{4, 3, "OT"},
		{5, 3, "2OT"},
		{7, 3, "4OT"},
		{4, 4, "4th"},
		{4, 0, "OT"},
		{1, 1, "1st"},
		{3, 1, "3rd"},
		{5, 1, "2OT"},
		{6, 2, "3OT"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPeriodLabel(tc.period, tc.regulation), "period %d regulation %d", tc.period, tc.regulation)
	}
}

func TestPeriodLabelShootout(t *testing.T) {
	assert.Equal(t, "SO", PeriodLabel(game.PeriodDescriptor{Number: 5, Type: game.PeriodShootout}, 3))
	assert.Equal(t, "OT", PeriodLabel(game.PeriodDescriptor{Number: 4, Type: game.PeriodOvertime}, 3))
}

func TestFormatPeriodTime(t *testing.T) {
	assert.Equal(t, "OT – 07:54", FormatPeriodTime(4, "754", 2))
	assert.Equal(t, "1st – 12:34", FormatPeriodTime(1, "12:34", 2))
	assert.Equal(t, "3rd – 00:05", FormatPeriodTime(3, "5", 2))
}

func TestNormalizeClock(t *testing.T) {
	cases := map[string]string{
		"754":   "07:54",
		"7:54":  "07:54",
		"12:34": "12:34",
		"00:00": "00:00",
		"54":    "00:54",
		"":      "",
		"n/a":   "n/a",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizeClock(raw, 2), "raw %q", raw)
	}
	assert.Equal(t, "007:54", NormalizeClock("754", 3))
	assert.Equal(t, "7:54", NormalizeClock("754", 1))
}

func TestRepeatEmoji(t *testing.T) {
	assert.Equal(t, "", RepeatEmoji("🚨", 0))
	assert.Equal(t, "", RepeatEmoji("🚨", -2))
	assert.Equal(t, "🚨", RepeatEmoji("🚨", 1))
	assert.Equal(t, "🚨🚨🚨", RepeatEmoji("🚨", 3))
}
