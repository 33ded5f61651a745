// Package types provides domain models shared across WordGate components.
//
// Zero-dependency design: only database/sql and encoding/json are used so the
// matcher core and the HTTP layer can both depend on this package without
// pulling in each other's stacks.
package types

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Action is the three-valued moderation outcome. Closed enumeration;
// serializes to its fixed uppercase name in both JSON and the database.
type Action string

const (
	ActionApproved    Action = "APPROVED"
	ActionRejected    Action = "REJECTED"
	ActionNeedsReview Action = "NEEDS_REVIEW"
)

// ParseAction validates a string against the closed Action set.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionApproved, ActionRejected, ActionNeedsReview:
		return Action(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
}

// Value implements driver.Valuer so actions round-trip through sqlx.
func (a Action) Value() (driver.Value, error) {
	if _, err := ParseAction(string(a)); err != nil {
		return nil, err
	}
	return string(a), nil
}

// Scan implements sql.Scanner. Rejects unknown values so a corrupted row
// surfaces at load time rather than as a silent default.
func (a *Action) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidAction, src)
	}
	parsed, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalJSON enforces the closed set on API input.
func (a *Action) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAction(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// LiteralRule is an exact-substring blocked word row.
// Identity is owned by the store; duplicates of the same normalized word are
// legal and all survive into the compiled matcher.
type LiteralRule struct {
	ID     int64  `db:"id" json:"id"`
	Word   string `db:"word" json:"word"`
	Action Action `db:"moderation_action" json:"action"`
}

// RegexRule is a regular-expression blocked pattern row.
// Description may be NULL in the store; DefaultRegexDescription is
// substituted at build time.
type RegexRule struct {
	ID          int64          `db:"id" json:"id"`
	Pattern     string         `db:"pattern" json:"pattern"`
	Description sql.NullString `db:"description" json:"description"`
	Action      Action         `db:"moderation_action" json:"action"`
}

// DefaultRegexDescription is reported when a regex rule has no description.
const DefaultRegexDescription = "regex rule"

// Setting is an opaque key/value pair. Not consumed by the matching core;
// passed through verbatim for other consumers.
type Setting struct {
	Key   string `db:"key" json:"key"`
	Value string `db:"value" json:"value"`
}

// Decision is the outcome of moderating one piece of text.
// Reason is nil when the text matched nothing (implicit approval).
type Decision struct {
	Status Action  `json:"status"`
	Reason *string `json:"reason"`
}
