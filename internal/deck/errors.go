package deck

import "errors"

var (
	// ErrInvalidDefinition marks a malformed or semantically invalid deck
	// definition (empty deck, empty or duplicate card name, non-positive
	// count). Only table construction returns it.
	ErrInvalidDefinition = errors.New("invalid deck definition")

	// ErrEmptyDeck is returned by Draw when no cards remain.
	ErrEmptyDeck = errors.New("deck is empty")

	// ErrDuplicateDeck is returned when registering a deck under an id
	// that is already taken.
	ErrDuplicateDeck = errors.New("deck id already registered")

	// ErrUnknownDeck is returned when looking up or removing an id that
	// is not registered.
	ErrUnknownDeck = errors.New("unknown deck id")
)
