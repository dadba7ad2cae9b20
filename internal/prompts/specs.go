package prompts

const lnfSpec = `Emit the LNF payload under the "LNF" key as a JSON array of exactly 100 single-letter strings:

"LNF": ["m", "S", "a", "T", ...]`

const psfSpec = `Emit the PSF payload under the "PSF" key as a JSON array of exactly 20 word strings:

"PSF": ["sat", "mop", "in", ...]`

const nwfSpec = `Emit the NWF payload under the "NWF" key as a JSON array of exactly 75 nonsense word strings in difficulty band order:

"NWF": ["ib", "mub", ...]`

const wrfSpec = `Emit the WRF payload under the "WRF" key as a JSON array of exactly 85 word strings in frequency band order:

"WRF": ["the", "and", ...]`

const orfSpec = `Emit the ORF payload under the "ORF" key as a single JSON string containing the full 150-200 word passage:

"ORF": "<passage text>"`

const mazeSpec = `Emit the MAZE payload under the "MAZE" key as a JSON array of at least 20 item objects:

"MAZE": [
  {
    "num": 1,
    "sentence": "<sentence with ___ where the target word was>",
    "choices": ["<correct>", "<distractor>", "<distractor>"],
    "answer": "<correct>"
  }
]

Field constraints:
- num: 1-based item number in passage order.
- sentence: the full sentence with the target word replaced by "___".
- choices: exactly 3 words including the answer, in shuffled order.
- answer: must exactly match one of the choices.`

const validateSpec = `Respond with a JSON object matching this exact structure:

{
  "overall": 85,
  "standard_compliance": 90,
  "grade_level_appropriateness": 85,
  "curriculum_alignment": 80,
  "difficulty_appropriateness": 85,
  "grammar_accuracy": 95,
  "issues": ["<issue description>"],
  "suggestions": ["<suggestion>"]
}

Field constraints:
- All score fields: integers from 0 to 100.
- issues: concrete defects found; empty array when none.
- suggestions: actionable improvements; empty array when none.

Behavioral constraints:
- Always respond with valid JSON, no markdown fencing.
- Score only the single measure provided.
- Every issue must describe an observable defect, not a preference.`

var specs = map[Stage]string{
	StageLNF:      lnfSpec,
	StagePSF:      psfSpec,
	StageNWF:      nwfSpec,
	StageWRF:      wrfSpec,
	StageORF:      orfSpec,
	StageMAZE:     mazeSpec,
	StageValidate: validateSpec,
}

// DefaultSpec returns the hardcoded output specification for a stage.
// Specifications define the expected output format and are not overridable.
// Returns ErrInvalidStage if the stage is not recognized.
func DefaultSpec(stage Stage) (string, error) {
	text, ok := specs[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
