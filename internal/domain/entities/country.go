package entities

// Country is one entry of the static country catalog.
type Country struct {
	Code      string `json:"code"`      // ISO 3166-1 alpha-2 code, uppercase, e.g. "FR"
	Name      string `json:"name"`      // English display name, e.g. "France"
	Continent string `json:"continent"` // continent label, e.g. "Europe"
}

// regionalIndicatorBase is the code point of REGIONAL INDICATOR SYMBOL
// LETTER A. A pair of regional indicators renders as a flag emoji on
// every Telegram client.
const regionalIndicatorBase = 0x1F1E6

// FlagEmoji returns the flag emoji derived from the country code, or an
// empty string when the code is not two ASCII letters.
func (c Country) FlagEmoji() string {
	if len(c.Code) != 2 {
		return ""
	}

	runes := make([]rune, 0, 2)
	for _, r := range c.Code {
		if r < 'A' || r > 'Z' {
			return ""
		}
		runes = append(runes, regionalIndicatorBase+r-'A')
	}

	return string(runes)
}
