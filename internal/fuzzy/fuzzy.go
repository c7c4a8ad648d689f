// Package fuzzy renders a wall-clock reading as a natural-language time
// phrase, e.g. "quarter past three", "ten to noon", "midnight". It is pure
// and stateless: the same (hour, minute) always yields the same phrase.
package fuzzy

import "time"

// hour words indexed 0..12. Hours 0 and 12 carry irregular names; every
// other hour folds modulo 12, so 13..23 reuse the words for 1..11.
var hourWords = [13]string{
	"midnight", "one", "two", "three", "four", "five", "six",
	"seven", "eight", "nine", "ten", "eleven", "noon",
}

// HourWord names an hour of day in [0,23].
func HourWord(hour int) string {
	switch hour {
	case 0:
		return hourWords[0]
	case 12:
		return hourWords[12]
	default:
		return hourWords[(hour-1)%12+1]
	}
}

// bucket is one of the twelve phrase slots an hour is divided into.
// An empty connective marks the exact-hour slot, which renders as
// "<hour> o'clock" instead of "<connective> <hour>". Slots on the "to"
// side of the half hour name the upcoming hour, not the current one.
type bucket struct {
	connective string
	nextHour   bool
}

var buckets = [12]bucket{
	{"", false},
	{"five past", false},
	{"ten past", false},
	{"quarter past", false},
	{"twenty past", false},
	{"twentyfive past", false},
	{"half past", false},
	{"twentyfive to", true},
	{"twenty to", true},
	{"quarter to", true},
	{"ten to", true},
	{"five to", true},
}

// bucketByMinute maps each minute of the hour onto a slot in buckets.
// The table is kept verbatim from the shipped rounding behavior and is
// deliberately not a uniform partition: the exact-hour slot wraps around
// zero ({58,59,0,1,2}), "ten to" covers six minutes (48..53) and "five to"
// only four (54..57). Do not rebalance.
var bucketByMinute = [60]int{
	0, 0, 0, // 0..2
	1, 1, 1, 1, 1, // 3..7
	2, 2, 2, 2, 2, // 8..12
	3, 3, 3, 3, 3, // 13..17
	4, 4, 4, 4, 4, // 18..22
	5, 5, 5, 5, 5, // 23..27
	6, 6, 6, 6, 6, // 28..32
	7, 7, 7, 7, 7, // 33..37
	8, 8, 8, 8, 8, // 38..42
	9, 9, 9, 9, 9, // 43..47
	10, 10, 10, 10, 10, 10, // 48..53
	11, 11, 11, 11, // 54..57
	0, 0, // 58..59
}

// Phrase renders the fuzzy-time phrase for a wall-clock reading.
// hour must be in [0,23] and minute in [0,59]; the function performs no
// validation of its own, callers sit behind a validated boundary (see the
// HTTP packets binding tags).
func Phrase(hour, minute int) string {
	b := buckets[bucketByMinute[minute]]
	if b.connective == "" {
		// exact hour: noon and midnight stand alone, every other hour
		// takes the o'clock suffix
		if hour == 0 || hour == 12 {
			return HourWord(hour)
		}
		return HourWord(hour) + " o'clock"
	}
	if b.nextHour {
		return b.connective + " " + HourWord((hour+1)%24)
	}
	return b.connective + " " + HourWord(hour)
}

// At renders the phrase for the wall-clock reading carried by t, in t's
// location.
func At(t time.Time) string {
	return Phrase(t.Hour(), t.Minute())
}
