package template

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Date defaults.
const (
	DefaultLocale     = "de_DE"
	DefaultDateLayout = "02. January 2006"
	DefaultZone       = "CET"
)

// ErrUnknownLocale is returned for a locale without month names.
var ErrUnknownLocale = errors.New("template: unknown locale")

type names struct {
	months      [12]string
	shortMonths [12]string
	days        [7]string // Sunday first, as time.Weekday
	shortDays   [7]string
}

var german = names{
	months:      [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
	shortMonths: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
	days:        [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
	shortDays:   [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
}

var austrian = func() names {
	n := german
	n.months[0] = "Jänner"
	n.shortMonths[0] = "Jän."
	return n
}()

var english = names{
	months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	shortMonths: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	days:        [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	shortDays:   [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

var locales = map[string]*names{
	"de":    &german,
	"de_de": &german,
	"de_ch": &german,
	"de_li": &german,
	"de_lu": &german,
	"de_at": &austrian,
	"en":    &english,
	"en_us": &english,
	"en_gb": &english,
}

func lookupLocale(locale string) (*names, bool) {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "-", "_"))
	n, ok := locales[key]
	return n, ok
}

// ValidLocale reports whether FormatDate knows locale.
func ValidLocale(locale string) bool {
	_, ok := lookupLocale(locale)
	return ok
}

// Placeholders for the name elements of a layout. They are control
// characters, which time.Format copies verbatim.
const (
	phMonth    = "\x01"
	phDay      = "\x02"
	phShortMon = "\x03"
	phShortDay = "\x04"
)

// FormatDate formats t with a Go time layout, replacing the English month and
// weekday names with those of locale. "de_AT" uses "Jänner".
func FormatDate(t time.Time, locale, layout string) (string, error) {
	n, ok := lookupLocale(locale)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownLocale, locale)
	}
	if layout == "" {
		layout = DefaultDateLayout
	}

	// Long forms first: "January" contains "Jan" and "Monday" contains "Mon".
	layout = strings.NewReplacer("January", phMonth, "Monday", phDay).Replace(layout)
	layout = strings.NewReplacer("Jan", phShortMon, "Mon", phShortDay).Replace(layout)

	m, d := t.Month()-1, t.Weekday()
	return strings.NewReplacer(
		phMonth, n.months[m],
		phDay, n.days[d],
		phShortMon, n.shortMonths[m],
		phShortDay, n.shortDays[d],
	).Replace(t.Format(layout)), nil
}
