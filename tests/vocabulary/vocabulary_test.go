package vocabulary_test

import (
	"fmt"
	"testing"

	"github.com/seojin-dev/quill/internal/itemtypes"
	"github.com/seojin-dev/quill/internal/vocabulary"
)

func newLoader(t *testing.T) *vocabulary.Loader {
	t.Helper()

	loader, err := vocabulary.NewLoader()
	if err != nil {
		t.Fatalf("NewLoader() error: %v", err)
	}
	return loader
}

func TestWords(t *testing.T) {
	loader := newLoader(t)

	tests := []struct {
		grade itemtypes.Grade
		want  int
	}{
		{1, 80},
		{2, 120},
		{3, 160},
		{4, 200},
		{5, 240},
		{6, 240},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("grade %d", tt.grade), func(t *testing.T) {
			words := loader.Words(tt.grade)
			if len(words) != tt.want {
				t.Errorf("Words(%d) returned %d words, want %d", tt.grade, len(words), tt.want)
			}
		})
	}
}

func TestWordsAccumulate(t *testing.T) {
	loader := newLoader(t)

	lower := loader.Words(1)
	higher := loader.Words(3)

	if len(higher) <= len(lower) {
		t.Fatalf("grade 3 list (%d) not larger than grade 1 list (%d)", len(higher), len(lower))
	}
	for i, w := range lower {
		if higher[i] != w {
			t.Errorf("entry %d differs: grade 1 %q, grade 3 %q", i, w, higher[i])
		}
	}
}

func TestWordsUnique(t *testing.T) {
	loader := newLoader(t)

	words := loader.Words(6)
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if seen[w] {
			t.Errorf("duplicate word %q", w)
		}
		seen[w] = true
	}
}

func TestExpressions(t *testing.T) {
	loader := newLoader(t)

	for grade := itemtypes.Grade(1); grade <= 6; grade++ {
		expressions := loader.Expressions(grade)
		if len(expressions) == 0 {
			t.Errorf("Expressions(%d) returned no entries", grade)
		}
	}

	lower := loader.Expressions(1)
	higher := loader.Expressions(6)
	if len(higher) < len(lower) {
		t.Errorf("grade 6 expressions (%d) fewer than grade 1 (%d)", len(higher), len(lower))
	}
}
