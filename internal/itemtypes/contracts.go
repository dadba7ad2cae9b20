package itemtypes

import (
	"fmt"
	"strings"
)

// Structural contract bounds per item type.
const (
	LNFCount     = 100
	PSFCount     = 20
	NWFCount     = 75
	WRFCount     = 85
	ORFMinWords  = 150
	MazeMinItems = 20
	MazeChoices  = 3
)

// lnfExcluded are letters visually ambiguous for early readers and
// excluded from letter naming sets.
var lnfExcluded = map[string]bool{"W": true, "w": true, "l": true}

func newContractError(t ItemType, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrContract, t, fmt.Sprintf(format, args...))
}

func newUnexpectedTypeError(t ItemType) error {
	return fmt.Errorf("%w: %s", ErrUnexpectedType, t)
}

func checkContract(t ItemType, b *Bundle) error {
	switch t {
	case LNF:
		return checkLNF(b.LNF)
	case PSF:
		return checkWordList(t, b.PSF, PSFCount)
	case NWF:
		return checkWordList(t, b.NWF, NWFCount)
	case WRF:
		return checkWordList(t, b.WRF, WRFCount)
	case ORF:
		return checkORF(b.ORF)
	case MAZE:
		return checkMaze(b.MAZE)
	}
	return nil
}

func checkLNF(letters []string) error {
	if len(letters) != LNFCount {
		return newContractError(LNF, "expected %d letters, got %d", LNFCount, len(letters))
	}
	for i, l := range letters {
		if len(l) != 1 || !isLetter(l[0]) {
			return newContractError(LNF, "entry %d is not a single letter: %q", i, l)
		}
		if lnfExcluded[l] {
			return newContractError(LNF, "entry %d uses excluded letter %q", i, l)
		}
	}
	return nil
}

func checkWordList(t ItemType, words []string, count int) error {
	if len(words) != count {
		return newContractError(t, "expected %d words, got %d", count, len(words))
	}
	for i, w := range words {
		if strings.TrimSpace(w) == "" {
			return newContractError(t, "entry %d is empty", i)
		}
	}
	return nil
}

func checkORF(passage string) error {
	words := strings.Fields(passage)
	if len(words) < ORFMinWords {
		return newContractError(ORF, "passage too short: %d words", len(words))
	}
	return nil
}

func checkMaze(items []MazeItem) error {
	if len(items) < MazeMinItems {
		return newContractError(MAZE, "expected at least %d items, got %d", MazeMinItems, len(items))
	}
	for i, item := range items {
		if item.Num < 1 {
			return newContractError(MAZE, "item %d has invalid number %d", i, item.Num)
		}
		if strings.TrimSpace(item.Sentence) == "" {
			return newContractError(MAZE, "item %d has empty sentence", i)
		}
		if len(item.Choices) != MazeChoices {
			return newContractError(MAZE, "item %d expected %d choices, got %d", i, MazeChoices, len(item.Choices))
		}
		found := false
		for _, c := range item.Choices {
			if c == item.Answer {
				found = true
				break
			}
		}
		if !found {
			return newContractError(MAZE, "item %d answer %q not among choices", i, item.Answer)
		}
	}
	return nil
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
