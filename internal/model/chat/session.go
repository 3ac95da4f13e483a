package chat

import "time"

// Locale selects the language of synthesized responses.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleArabic  Locale = "ar"
)

// ParseLocale normalizes a client-supplied locale, defaulting to English.
func ParseLocale(raw string) Locale {
	if raw == string(LocaleArabic) {
		return LocaleArabic
	}
	return LocaleEnglish
}

// Session captures a transient anonymous conversation. The id doubles as the
// key for session-scoped generated data (spending, profile); switching
// language starts a fresh session and therefore fresh generated data.
type Session struct {
	ID        string    `json:"id"`
	Locale    Locale    `json:"locale"`
	CreatedAt time.Time `json:"createdAt"`
}
