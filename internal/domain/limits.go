package domain

// Validation limits shared by the entity packages.
const (
	PhoneDigits     = 10
	MaxNameLength   = 100
	MaxTitleLength  = 200
	MaxPriceDigits  = 12
	MaxPhoneLength  = 20
	MaxSearchLength = 200

	// MaxUpcomingDays bounds the upcoming-task window (one century).
	MaxUpcomingDays = 36500
)

// Common validation messages.
const (
	MsgRequired     = "is required"
	MsgMustNotEmpty = "must not be empty"
)
