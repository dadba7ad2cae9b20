// Package itemtypes defines the assessment item taxonomy: item types, grade
// levels, and the generated item bundle with its structural contracts.
package itemtypes

import (
	"encoding/json"
	"fmt"
	"slices"
)

// ItemType identifies a literacy assessment measure.
type ItemType string

// Valid assessment item types.
const (
	LNF  ItemType = "LNF"  // Letter Naming Fluency
	PSF  ItemType = "PSF"  // Phoneme Segmentation Fluency
	NWF  ItemType = "NWF"  // Nonsense Word Fluency
	WRF  ItemType = "WRF"  // Word Reading Fluency
	ORF  ItemType = "ORF"  // Oral Reading Fluency
	MAZE ItemType = "MAZE" // Maze Comprehension
)

var itemTypes = []ItemType{LNF, PSF, NWF, WRF, ORF, MAZE}

// ItemTypes returns the list of valid assessment item types.
func ItemTypes() []ItemType {
	return itemTypes
}

// UnmarshalJSON validates that the decoded string is a known item type.
func (t *ItemType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := ItemType(raw)
	if !slices.Contains(itemTypes, v) {
		return ErrInvalidItemType
	}
	*t = v
	return nil
}

// ParseItemType validates a string as a known item type.
// Returns ErrInvalidItemType if the value is not recognized.
func ParseItemType(s string) (ItemType, error) {
	v := ItemType(s)
	if !slices.Contains(itemTypes, v) {
		return "", ErrInvalidItemType
	}
	return v, nil
}

// Grade is an elementary school grade level, 1 through 6.
type Grade int

// MinGrade and MaxGrade bound the supported grade levels.
const (
	MinGrade Grade = 1
	MaxGrade Grade = 6
)

// Valid reports whether the grade is within the supported range.
func (g Grade) Valid() bool {
	return g >= MinGrade && g <= MaxGrade
}

// UnmarshalJSON validates that the decoded number is a supported grade.
func (g *Grade) UnmarshalJSON(data []byte) error {
	var raw int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Grade(raw)
	if !v.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidGrade, raw)
	}
	*g = v
	return nil
}

// ParseGrade validates an integer as a supported grade level.
func ParseGrade(n int) (Grade, error) {
	g := Grade(n)
	if !g.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidGrade, n)
	}
	return g, nil
}
