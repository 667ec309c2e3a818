package utils

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// FormatDate turns "2024-05-01T09:07:33" into "2024-05-01 09:07".
// Anything that is not a date, one 'T', then at least HH:MM yields "".
func FormatDate(s string) string {
	datePart, timePart, ok := strings.Cut(s, "T")
	if !ok || datePart == "" || strings.Contains(timePart, "T") {
		return ""
	}

	fields := strings.SplitN(timePart, ":", 3)
	if len(fields) < 2 {
		return ""
	}
	hours, minutes := fields[0], fields[1]
	if len(hours) != 2 || len(minutes) < 2 || !digits(hours) || !digits(minutes[:2]) {
		return ""
	}
	return datePart + " " + hours + ":" + minutes[:2]
}

func digits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

var dateLocales = language.NewMatcher([]language.Tag{
	language.Korean,
	language.English,
})

// MatchLocale picks the date locale for an Accept-Language header value.
func MatchLocale(acceptLanguage string) language.Tag {
	tag, _ := language.MatchStrings(dateLocales, acceptLanguage)
	base, _ := tag.Base()
	if base.String() == "en" {
		return language.English
	}
	return language.Korean
}

// FormatLongDate renders the detail-page creation date for locale.
func FormatLongDate(t time.Time, locale language.Tag) string {
	if t.IsZero() {
		return ""
	}
	if locale == language.English {
		return t.Format("January 2, 2006 15:04")
	}
	return fmt.Sprintf("%d년%d월%d일 %d:%d", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
}
