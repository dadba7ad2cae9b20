package completion

import "errors"

// ErrCompletion indicates the provider request failed or returned no content.
var ErrCompletion = errors.New("completion failed")
