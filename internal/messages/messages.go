// Package messages turns outcome identifiers into user-facing text.
package messages

import "cleaningrobot/internal/cleaning"

// Locale selects a message table.
type Locale string

const (
	Portuguese Locale = "pt"
	English    Locale = "en"

	DefaultLocale = Portuguese
)

var catalog = map[Locale]map[cleaning.MessageID]string{
	Portuguese: {
		cleaning.MessageDirtRemains: "Ainda há sujeira no chão!",
		cleaning.MessageNotAtGoal:   "O robô não está no destino!",
		cleaning.MessageSuccess:     "Parabéns, você concluiu o desafio!",
	},
	English: {
		cleaning.MessageDirtRemains: "There is still dirt on the floor!",
		cleaning.MessageNotAtGoal:   "The robot is not at the destination!",
		cleaning.MessageSuccess:     "Congratulations, you completed the challenge!",
	},
}

// Supported reports whether l has a message table.
func Supported(l Locale) bool {
	_, ok := catalog[l]
	return ok
}

// Text returns the message for id. Unknown locales fall back to
// DefaultLocale; unknown ids are returned verbatim.
func Text(l Locale, id cleaning.MessageID) string {
	table, ok := catalog[l]
	if !ok {
		table = catalog[DefaultLocale]
	}
	if s, ok := table[id]; ok {
		return s
	}
	return string(id)
}

// Localized is an outcome with its message rendered.
type Localized struct {
	Successful bool   `json:"successful"`
	Message    string `json:"message"`
}

// Localize renders o in locale l.
func Localize(l Locale, o cleaning.Outcome) Localized {
	return Localized{Successful: o.Successful, Message: Text(l, o.Message)}
}
