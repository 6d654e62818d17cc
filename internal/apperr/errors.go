// Package apperr defines the domain errors shared across the application.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrGroupRequired is returned when edit flags are given without --id or --name.
	ErrGroupRequired = errors.New("can't edit group without specifying it (use --id or --name)")
	// ErrRemoveNonexistent is returned when --remove targets a group that does not exist.
	ErrRemoveNonexistent = errors.New("can't remove packages from non-existent group")
	// ErrTranslationFormat is returned for translated data not in 'lang:text' form.
	ErrTranslationFormat = errors.New("invalid translated data, should be in form 'lang:text'")
	// ErrLanguageTag is returned for an invalid or empty translation language.
	ErrLanguageTag = errors.New("invalid/empty language for translated data")
	// ErrGroupID is returned for a group id outside the allowed character set.
	ErrGroupID = errors.New("invalid group id")
)

// EmptyDerivedIDError reports that deriving a group id from a name stripped
// every character.
type EmptyDerivedIDError struct {
	Name string
}

func (e *EmptyDerivedIDError) Error() string {
	return fmt.Sprintf("can't generate group id from %q, please specify group id using --id", e.Name)
}

// DuplicateDerivedIDError reports that the id derived from a requested group
// name collides with an existing group.
type DuplicateDerivedIDError struct {
	ID   string
	Name string
}

func (e *DuplicateDerivedIDError) Error() string {
	return fmt.Sprintf("group id %q generated from %q is duplicit, please specify group id using --id", e.ID, e.Name)
}
