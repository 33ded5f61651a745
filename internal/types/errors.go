package types

import "errors"

// Sentinel errors for WordGate operations.
var (
	// ErrInvalidAction indicates a value outside the closed Action set.
	ErrInvalidAction = errors.New("invalid moderation action")

	// ErrRuleNotFound indicates a delete targeting a rule identity that
	// does not exist. Reported as a no-op failure; no reload follows.
	ErrRuleNotFound = errors.New("rule not found")

	// ErrInvalidPattern indicates a regular expression that fails to compile.
	ErrInvalidPattern = errors.New("invalid regex pattern")

	// ErrContentTooLarge indicates moderation input exceeding MaxContentLength.
	ErrContentTooLarge = errors.New("content exceeds maximum length")
)

// Request limits enforced at the API boundary before text or rules reach
// the matching core.
const (
	// MaxContentLength caps moderated comment size. 5000 chars covers any
	// reasonable comment; larger bodies belong to a different product.
	MaxContentLength = 5000

	// MinWordLength / MaxWordLength bound literal rule words. Single-char
	// words match almost everything and are rejected as operator error.
	MinWordLength = 2
	MaxWordLength = 64

	// MaxPatternLength bounds regex rule patterns.
	MaxPatternLength = 512

	// MaxDescriptionLength bounds regex rule descriptions.
	MaxDescriptionLength = 256

	// MaxSettingValueLength bounds setting values.
	MaxSettingValueLength = 128
)
