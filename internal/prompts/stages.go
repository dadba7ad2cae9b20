package prompts

import (
	"encoding/json"
	"slices"

	"github.com/seojin-dev/quill/internal/itemtypes"
)

// Stage identifies a pipeline prompt that an override targets: one
// generation stage per item type plus the shared validation stage.
type Stage string

// Valid prompt stages.
const (
	StageLNF      Stage = "lnf"
	StagePSF      Stage = "psf"
	StageNWF      Stage = "nwf"
	StageWRF      Stage = "wrf"
	StageORF      Stage = "orf"
	StageMAZE     Stage = "maze"
	StageValidate Stage = "validate"
)

var stages = []Stage{
	StageLNF,
	StagePSF,
	StageNWF,
	StageWRF,
	StageORF,
	StageMAZE,
	StageValidate,
}

var itemTypeStages = map[itemtypes.ItemType]Stage{
	itemtypes.LNF:  StageLNF,
	itemtypes.PSF:  StagePSF,
	itemtypes.NWF:  StageNWF,
	itemtypes.WRF:  StageWRF,
	itemtypes.ORF:  StageORF,
	itemtypes.MAZE: StageMAZE,
}

// Stages returns the list of valid prompt stages.
func Stages() []Stage {
	return stages
}

// StageFor returns the generation stage for an item type.
func StageFor(t itemtypes.ItemType) Stage {
	return itemTypeStages[t]
}

// UnmarshalJSON validates that the decoded string is a known stage value.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Stage(raw)
	if !slices.Contains(stages, v) {
		return ErrInvalidStage
	}
	*s = v
	return nil
}

// ParseStage validates a string as a known prompt stage.
// Returns ErrInvalidStage if the value is not recognized.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}
