// Package vocabulary loads grade-leveled curriculum word and expression lists
// from embedded data files.
package vocabulary

import (
	"embed"
	"fmt"

	"github.com/seojin-dev/quill/internal/itemtypes"
	"github.com/seojin-dev/quill/pkg/formatting"
)

//go:embed data/vocabulary.json data/expressions.json
var dataFS embed.FS

type wordUnit struct {
	Unit  int      `json:"unit"`
	Words []string `json:"words"`
}

type expressionUnit struct {
	Unit        int      `json:"unit"`
	Expressions []string `json:"expressions"`
}

type vocabularyFile struct {
	Units []wordUnit `json:"units"`
}

type expressionsFile struct {
	Units []expressionUnit `json:"units"`
}

// Loader serves grade-appropriate slices of the curriculum vocabulary.
// Lists are ordered by curriculum unit, so a grade slice covers the
// earliest material first.
type Loader struct {
	words       []string
	expressions []string
}

// NewLoader parses the embedded curriculum data.
func NewLoader() (*Loader, error) {
	words, err := loadWords()
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}

	expressions, err := loadExpressions()
	if err != nil {
		return nil, fmt.Errorf("load expressions: %w", err)
	}

	return &Loader{
		words:       words,
		expressions: expressions,
	}, nil
}

// Words returns the high-frequency word candidates for the given grade.
func (l *Loader) Words(grade itemtypes.Grade) []string {
	return truncate(l.words, sliceSize(grade))
}

// Expressions returns the core expressions for the given grade.
func (l *Loader) Expressions(grade itemtypes.Grade) []string {
	return truncate(l.expressions, sliceSize(grade))
}

// sliceSize maps a grade to the number of leading entries it covers.
// Higher grades accumulate all earlier material.
func sliceSize(grade itemtypes.Grade) int {
	switch grade {
	case 1:
		return 80
	case 2:
		return 120
	case 3:
		return 160
	case 4:
		return 200
	default:
		return 240
	}
}

func loadWords() ([]string, error) {
	data, err := dataFS.ReadFile("data/vocabulary.json")
	if err != nil {
		return nil, err
	}

	file, err := formatting.Parse[vocabularyFile](string(data))
	if err != nil {
		return nil, err
	}

	var words []string
	for _, unit := range file.Units {
		words = append(words, unit.Words...)
	}
	return dedupe(words), nil
}

func loadExpressions() ([]string, error) {
	data, err := dataFS.ReadFile("data/expressions.json")
	if err != nil {
		return nil, err
	}

	file, err := formatting.Parse[expressionsFile](string(data))
	if err != nil {
		return nil, err
	}

	var expressions []string
	for _, unit := range file.Units {
		expressions = append(expressions, unit.Expressions...)
	}
	return dedupe(expressions), nil
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	unique := make([]string, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		unique = append(unique, v)
	}
	return unique
}

func truncate(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
