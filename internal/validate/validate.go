// Package validate holds the pure validation and derivation rules for group
// identifiers, language tags, and translated-text arguments.
package validate

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/compsman/internal/apperr"
)

// groupIDChars is the character class allowed in group identifiers.
const groupIDChars = "-a-z0-9_.:"

var (
	groupIDRe    = regexp.MustCompile("^[" + groupIDChars + "]+$")
	groupIDStrip = regexp.MustCompile("[^" + groupIDChars + "]")
	langTagRe    = regexp.MustCompile(`^[-a-zA-Z0-9_.@]+$`)
)

// GroupID reports whether s is a valid group identifier: non-empty and made up
// solely of characters from the set `-a-z0-9_.:`.
func GroupID(s string) error {
	if err := validation.Validate(s, validation.Required, validation.Match(groupIDRe)); err != nil {
		return apperr.ErrGroupID
	}
	return nil
}

// LangTag reports whether s is a valid language tag: non-empty and made up
// solely of characters from the set `-a-zA-Z0-9_.@`.
func LangTag(s string) error {
	if err := validation.Validate(s, validation.Required, validation.Match(langTagRe)); err != nil {
		return apperr.ErrLanguageTag
	}
	return nil
}

// Translation splits a raw 'lang:text' argument on the first colon. Colons
// inside the text part are preserved.
func Translation(raw string) (lang, text string, err error) {
	parts := strings.SplitN(raw, ":", 2)
	if len(parts) != 2 {
		return "", "", apperr.ErrTranslationFormat
	}
	if err := LangTag(parts[0]); err != nil {
		return "", "", err
	}
	return parts[0], parts[1], nil
}

// DeriveID generates a group id from a human-readable name by lowercasing it
// and stripping every character outside the identifier set.
func DeriveID(name string) (string, error) {
	id := groupIDStrip.ReplaceAllString(strings.ToLower(name), "")
	if id == "" {
		return "", &apperr.EmptyDerivedIDError{Name: name}
	}
	return id, nil
}
