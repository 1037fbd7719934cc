package compose

import (
	"fmt"
	"strings"

	"github.com/gboparai/nhl-gamebot-sub000/internal/domain/game"
)

// DefaultRegulationPeriods is the NHL regulation length.
const DefaultRegulationPeriods = 3

const periodTimeSeparator = " – "

// FormatPeriodLabel renders regulation periods as ordinals, then "OT", "2OT", ...
// Overtime is numbered from period 4 unless regulation is longer than three
// periods; smaller or unset regulation values do not shorten the game.
func FormatPeriodLabel(period, regulation int) string {
	regulation = max(regulation, DefaultRegulationPeriods)
	if period <= regulation {
		return ordinal(period)
	}
	if ot := period - regulation; ot > 1 {
		return fmt.Sprintf("%dOT", ot)
	}
	return "OT"
}

// PeriodLabel is FormatPeriodLabel aware of the shootout.
func PeriodLabel(p game.PeriodDescriptor, regulation int) string {
	if p.Type == game.PeriodShootout {
		return "SO"
	}
	return FormatPeriodLabel(p.Number, regulation)
}

// FormatPeriodTime joins the period label and a normalized clock, e.g. "OT – 07:54".
// minuteDigits is the zero-padded width of the minutes field.
func FormatPeriodTime(period int, timeInPeriod string, minuteDigits int) string {
	return FormatPeriodLabel(period, DefaultRegulationPeriods) + periodTimeSeparator + NormalizeClock(timeInPeriod, minuteDigits)
}

// NormalizeClock turns "754" or "7:54" into "07:54" for minuteDigits=2.
// Input that is not a clock is returned unchanged.
func NormalizeClock(raw string, minuteDigits int) string {
	if minuteDigits <= 0 {
		minuteDigits = 2
	}
	digits := strings.ReplaceAll(strings.TrimSpace(raw), ":", "")
	if digits == "" {
		return raw
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return raw
		}
	}
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	minutes, seconds := digits[:len(digits)-2], digits[len(digits)-2:]
	minutes = strings.TrimLeft(minutes, "0")
	if len(minutes) < minuteDigits {
		minutes = strings.Repeat("0", minuteDigits-len(minutes)) + minutes
	}
	return minutes + ":" + seconds
}

// RepeatEmoji repeats glyph count times; zero or negative counts yield "".
func RepeatEmoji(glyph string, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(glyph, count)
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
