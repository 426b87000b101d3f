package scrape

import "strings"

// PublicationDateTime is the normalized form of an article's localized
// publication timestamp. Each field is independently empty when its part of
// the input could not be parsed.
type PublicationDateTime struct {
	Date     string // YYYY-MM-DD
	Time     string // HH:MM:00
	Timezone string // raw token, e.g. "WIB"
}

// monthNumbers maps the English month names the site emits to zero-padded
// month numbers.
var monthNumbers = map[string]string{
	"January": "01", "February": "02", "March": "03", "April": "04",
	"May": "05", "June": "06", "July": "07", "August": "08",
	"September": "09", "October": "10", "November": "11", "December": "12",
}

// ParsePublicationDateTime parses a publication timestamp of the shape
// "12 September 2025 | 15.22 WIB" into its date, time, and timezone parts.
// A string that does not split into exactly two parts around " | " yields
// all-empty fields; within a well-formed string, a malformed date or time
// part only blanks that field. An unknown month name maps to "01" rather
// than failing, a long-standing quirk kept for output compatibility.
func ParsePublicationDateTime(raw string) PublicationDateTime {
	if raw == "" {
		return PublicationDateTime{}
	}

	parts := strings.Split(raw, " | ")
	if len(parts) != 2 {
		return PublicationDateTime{}
	}

	datePart := strings.TrimSpace(parts[0])
	timePart := strings.TrimSpace(parts[1])

	var out PublicationDateTime

	// Date part, e.g. "12 September 2025".
	dateFields := strings.Fields(datePart)
	if len(dateFields) == 3 {
		day := zeroPad(dateFields[0])
		month, ok := monthNumbers[dateFields[1]]
		if !ok {
			month = "01"
		}
		year := dateFields[2]
		out.Date = year + "-" + month + "-" + day
	}

	// Time part, e.g. "15.22 WIB". The first token is H.MM, the optional
	// second token is the timezone, passed through verbatim.
	timeFields := strings.Fields(timePart)
	if len(timeFields) >= 1 {
		clock := strings.Split(timeFields[0], ".")
		if len(clock) == 2 {
			out.Time = zeroPad(clock[0]) + ":" + zeroPad(clock[1]) + ":00"
		}
		if len(timeFields) > 1 {
			out.Timezone = timeFields[1]
		}
	}

	return out
}

func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
