package itemtypes

import "slices"

// MazeItem is a single maze comprehension item: a sentence with a blank,
// three candidate words, and the correct answer.
type MazeItem struct {
	Num      int      `json:"num"`
	Sentence string   `json:"sentence"`
	Choices  []string `json:"choices"`
	Answer   string   `json:"answer"`
}

// Bundle holds generated item payloads keyed by item type. The payload
// location is determined by the type: list measures occupy their own slice
// field, ORF a passage string, MAZE a structured item list. A bundle never
// carries a payload under another type's field.
type Bundle struct {
	LNF  []string   `json:"LNF,omitempty"`
	PSF  []string   `json:"PSF,omitempty"`
	NWF  []string   `json:"NWF,omitempty"`
	WRF  []string   `json:"WRF,omitempty"`
	ORF  string     `json:"ORF,omitempty"`
	MAZE []MazeItem `json:"MAZE,omitempty"`
}

// Has reports whether the bundle carries a payload for the given type.
func (b *Bundle) Has(t ItemType) bool {
	switch t {
	case LNF:
		return len(b.LNF) > 0
	case PSF:
		return len(b.PSF) > 0
	case NWF:
		return len(b.NWF) > 0
	case WRF:
		return len(b.WRF) > 0
	case ORF:
		return b.ORF != ""
	case MAZE:
		return len(b.MAZE) > 0
	}
	return false
}

// Types returns the item types with payloads present, in canonical order.
func (b *Bundle) Types() []ItemType {
	present := make([]ItemType, 0, len(itemTypes))
	for _, t := range itemTypes {
		if b.Has(t) {
			present = append(present, t)
		}
	}
	return present
}

// Payload returns the payload for the given type, or nil if absent.
func (b *Bundle) Payload(t ItemType) any {
	if !b.Has(t) {
		return nil
	}
	switch t {
	case LNF:
		return b.LNF
	case PSF:
		return b.PSF
	case NWF:
		return b.NWF
	case WRF:
		return b.WRF
	case ORF:
		return b.ORF
	case MAZE:
		return b.MAZE
	}
	return nil
}

// Validate checks the bundle against the requested types. Payloads present
// for unrequested types are an error. Requested types with no payload are
// returned as omissions for the caller to handle. Every present payload
// must satisfy its type's structural contract.
func (b *Bundle) Validate(requested []ItemType) ([]ItemType, error) {
	for _, t := range b.Types() {
		if !slices.Contains(requested, t) {
			return nil, newUnexpectedTypeError(t)
		}
	}

	var omitted []ItemType
	for _, t := range requested {
		if !b.Has(t) {
			omitted = append(omitted, t)
			continue
		}
		if err := checkContract(t, b); err != nil {
			return nil, err
		}
	}

	return omitted, nil
}
