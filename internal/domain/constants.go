package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default configuration values
const (
	DefaultDurationMinutes  = 30
	DefaultIncrementMinutes = 15
	DefaultLeadMinutes      = 120
	DefaultOpenHour         = 9
	DefaultCloseHour        = 17
)

// Business validation constants
const (
	MaxCustomerNameLength  = 200
	MaxCustomerPhoneLength = 32
	MinDurationMinutes     = 5
	MaxDurationMinutes     = 480 // 8 hours
)
