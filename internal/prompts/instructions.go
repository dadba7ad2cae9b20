package prompts

const lnfInstructions = `You are generating a Letter Naming Fluency (LNF) measure for early readers.

Produce exactly 100 letters, one per entry, mixing uppercase and lowercase forms in random order. Requirements:
- Exclude the letters W, w, and lowercase l entirely. W is slow to name and lowercase l is visually ambiguous with uppercase I.
- The first 10 entries must use high-frequency, early-taught letters (m, s, a, t, p, o, c, n, b, d and their uppercase forms) so students start with familiar material.
- Avoid placing the same letter more than twice in a row.
- Distribute letters so no single letter dominates the set.`

const psfInstructions = `You are generating a Phoneme Segmentation Fluency (PSF) measure.

Produce exactly 20 real English words suitable for oral phoneme segmentation. Requirements:
- Each word has 2 to 3 phonemes (e.g. "sat" = /s/ /a/ /t/).
- Prefer simple CVC and VC patterns that segment cleanly.
- Use concrete, familiar words an early elementary student knows from speech.
- Avoid blends and digraphs that obscure phoneme boundaries for beginners.
- Include minimal pairs where natural (e.g. "cat"/"cap") to exercise fine discrimination.`

const nwfInstructions = `You are generating a Nonsense Word Fluency (NWF) measure.

Produce exactly 75 pronounceable nonsense words that follow English spelling conventions but are not real words. Order them in three difficulty bands:
- Entries 1-25: VC and CVC patterns (e.g. "ib", "mub", "dat").
- Entries 26-50: CVCe and CVrC patterns (e.g. "bame", "torn"-like forms).
- Entries 51-75: CVCC, CCVC, and CCVCC patterns (e.g. "milt", "stad", "bresk").
Every entry must be decodable with regular letter-sound correspondences. Reject any string that spells a real English word or a common name.`

const wrfInstructions = `You are generating a Word Reading Fluency (WRF) measure.

Produce exactly 85 real English words, predominantly one syllable, ordered in three frequency bands:
- Entries 1-30: highest-frequency sight words and decodable words.
- Entries 31-60: medium-frequency words with common vowel teams and digraphs.
- Entries 61-85: lower-frequency but grade-appropriate words, including a few two-syllable words.
Draw from the provided curriculum vocabulary whenever a word fits the band. Never repeat a word.`

const orfInstructions = `You are generating an Oral Reading Fluency (ORF) passage.

Write one original narrative passage of 150 to 200 words for timed oral reading. Requirements:
- A simple story with a clear beginning, middle, and end.
- Natural dialogue between at least two characters.
- Sentence length and vocabulary matched to the target grade; prefer words from the provided curriculum vocabulary.
- No rare proper nouns, no unusual punctuation, no line-level formatting.`

const mazeInstructions = `You are generating a Maze reading comprehension measure.

Write an original passage of at least 350 words, then convert it into maze items: after the first sentence, approximately every 7th word becomes a blank with three answer choices. Requirements:
- Produce at least 20 numbered items.
- Each item presents the sentence with the target word replaced by a blank.
- Each item offers exactly 3 choices: the correct word plus two distractors of the same part of speech that do not fit the sentence meaning.
- The correct answer must be unambiguous from sentence context alone.
- Passage vocabulary and syntax must match the target grade.`

const validateInstructions = `You are a literacy assessment quality reviewer evaluating one generated measure against early-reading assessment standards.

Score the material on five dimensions from 0 to 100:
- standard_compliance: does the measure follow the structural rules for its type (counts, patterns, exclusions, item format)?
- grade_level_appropriateness: are vocabulary and difficulty right for the target grade?
- curriculum_alignment: does the content reflect the supplied curriculum vocabulary and passages?
- difficulty_appropriateness: is the difficulty progression suitable for a timed fluency measure?
- grammar_accuracy: is all text grammatically correct and naturally phrased?

Also produce an overall score reflecting your holistic judgment, concrete issues describing any defects found, and actionable suggestions for improvement. Be strict: structural violations cap standard_compliance below 50.`

var instructions = map[Stage]string{
	StageLNF:      lnfInstructions,
	StagePSF:      psfInstructions,
	StageNWF:      nwfInstructions,
	StageWRF:      wrfInstructions,
	StageORF:      orfInstructions,
	StageMAZE:     mazeInstructions,
	StageValidate: validateInstructions,
}

// DefaultInstructions returns the hardcoded default instructions for a stage.
// Returns ErrInvalidStage if the stage is not recognized.
func DefaultInstructions(stage Stage) (string, error) {
	text, ok := instructions[stage]
	if !ok {
		return "", ErrInvalidStage
	}
	return text, nil
}
