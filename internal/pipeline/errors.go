package pipeline

import "errors"

var (
	// ErrGeneration indicates the model failed to produce a usable bundle:
	// the completion failed, the reply was unparseable, or a payload
	// violated its structural contract.
	ErrGeneration = errors.New("item generation failed")

	// ErrNoItemTypes indicates a request with no item types.
	ErrNoItemTypes = errors.New("at least one item type required")
)
