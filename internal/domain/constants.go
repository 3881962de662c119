package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxGuests             = 20
	MaxNameLength         = 200
	MaxNotesLength        = 2000
	MaxReasonLength       = 500
	MinPasswordLength     = 6
	SessionTokenBytes     = 32
	DefaultNationality    = ""
	ImageURLPrefix        = "/api/v1/images/file/"
	AccommodationKeyspace = "accommodations"
)

// Supported description languages
var DescriptionLanguages = []string{"pt", "en", "fr", "de", "es"}
