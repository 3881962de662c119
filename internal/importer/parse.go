package importer

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Liandro13/method-passion-site/internal/domain"
)

const unknownGuestName = "Desconhecido"

var ErrBadDate = errors.New("importer: unrecognised date")

var months = map[string]time.Month{
	"jan": time.January, "fev": time.February, "feb": time.February,
	"mar": time.March, "abr": time.April, "apr": time.April,
	"mai": time.May, "may": time.May, "jun": time.June, "jul": time.July,
	"ago": time.August, "aug": time.August, "set": time.September, "sep": time.September,
	"out": time.October, "oct": time.October, "nov": time.November,
	"dez": time.December, "dec": time.December,
}

var nationalities = map[string]string{
	"portugues": "PT", "português": "PT", "portgues": "PT", "portguês": "PT",
	"frances": "FR", "francês": "FR", "français": "FR", "francês/inglês": "FR",
	"ingles": "EN", "inglês": "EN", "ingl~es": "EN", "inglês/frances": "EN",
	"espanhol": "ES",
	"brazileiro": "BR", "brasileiro": "BR",
	"italiano": "IT",
	"americano": "US",
	"francês/belga": "BE",
}

var (
	guestsAndMore  = regexp.MustCompile(`(?i)^(.+?)\s+e\s+mais\s+(\d+)`)
	guestsPlus     = regexp.MustCompile(`(?i)^(.+?)\s*\+\s*(\d+)\s*(h[óo]spedes?|adultos?|pessoas?)`)
	guestsPlusOne  = regexp.MustCompile(`(?i)^(.+?)\s+(e\s+mais\s+um|e\s+outro|\+\s*adulto|\+\s*1\s*adulto)`)
	guestsChildren = regexp.MustCompile(`(?i)\b(\d+|uma|um)\s*(crian[çc]as?|beb[ée]s?)`)
	guestsTrailer  = regexp.MustCompile(`(?i)\s*(e\s+mais.*|mais\s+\d+.*|\+.*|\(\d+.*)`)
)

// ParseDate reads DD-Mon-YY (or DD-Mon-YYYY) with Portuguese or English month names
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}

	monthName := strings.ToLower(parts[1])
	if len(monthName) > 3 {
		monthName = monthName[:3]
	}
	month, ok := months[monthName]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: unknown month in %q", ErrBadDate, s)
	}

	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, s)
	}
	if len(parts[2]) == 2 {
		year += 2000
	}

	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day || t.Month() != month {
		return time.Time{}, fmt.Errorf("%w: no such day %q", ErrBadDate, s)
	}
	return t, nil
}

// ParseMoney reads amounts like "€ 1.234,56". Blank and "-" mean no value.
func ParseMoney(s string) *float64 {
	clean := strings.NewReplacer("€", "", " ", "", "\u00a0", "", ".", "").Replace(strings.TrimSpace(s))
	if clean == "" || clean == "-" {
		return nil
	}
	clean = strings.Replace(clean, ",", ".", 1)

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil
	}
	v = domain.Round2(v)
	return &v
}

// ParseGuests splits "Ana Silva e mais 3 adultos" into the primary name and the party size,
// capped at the per-booking maximum
func ParseGuests(s string) (string, int) {
	name := strings.TrimSpace(s)
	if name == "" {
		return unknownGuestName, 1
	}

	additional := 0
	if m := guestsAndMore.FindStringSubmatch(name); m != nil {
		name = strings.TrimSpace(m[1])
		additional, _ = strconv.Atoi(m[2])
	}
	if m := guestsPlus.FindStringSubmatch(name); m != nil {
		name = strings.TrimSpace(m[1])
		additional, _ = strconv.Atoi(m[2])
	}
	if m := guestsPlusOne.FindStringSubmatch(name); m != nil {
		name = strings.TrimSpace(m[1])
		additional = 1
	}

	for _, m := range guestsChildren.FindAllStringSubmatch(s, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			n = 1 // "uma criança", "um bebé"
		}
		additional += n
	}

	name = strings.TrimSpace(guestsTrailer.ReplaceAllString(name, ""))
	if name == "" {
		name = unknownGuestName
	}

	return name, min(max(1, 1+additional), domain.MaxGuests)
}

// MapNationality turns the spoken-language column into a country code
func MapNationality(language string) string {
	if code, ok := nationalities[strings.ToLower(strings.TrimSpace(language))]; ok {
		return code
	}
	return "OTHER"
}
