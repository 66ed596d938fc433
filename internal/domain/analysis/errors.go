package analysis

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrEmptyCompletion indicates the provider answered without any choice.
var ErrEmptyCompletion = errors.New("completion returned no choices")

// ErrEmptyScreenshot indicates there was nothing left to decode after stripping the data URI prefix.
var ErrEmptyScreenshot = errors.New("screenshot payload is empty")
