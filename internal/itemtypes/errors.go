package itemtypes

import "errors"

var (
	// ErrInvalidItemType indicates an unrecognized item type value.
	ErrInvalidItemType = errors.New("invalid item type")

	// ErrInvalidGrade indicates a grade level outside the supported range.
	ErrInvalidGrade = errors.New("invalid grade level")

	// ErrContract indicates a bundle payload violates its type's structural contract.
	ErrContract = errors.New("item contract violation")

	// ErrUnexpectedType indicates a bundle carries a payload for a type
	// that was not requested.
	ErrUnexpectedType = errors.New("unexpected item type in bundle")
)
