// internal/matcher/engine.go

// Package matcher implements the hot-swappable moderation matching core.
//
// The engine holds the currently published bundles behind atomic pointers.
// Decide is a pure function of (published bundles, input text): it performs
// no I/O, takes no locks, and is safe to call from arbitrarily many
// goroutines while a reload publishes new bundles concurrently. A reader
// observes either the complete old bundle or the complete new one, never a
// mix; old bundles are garbage collected once the last reader drops them.
package matcher

import (
	"strings"
	"sync/atomic"

	"github.com/solatis/wordgate/internal/types"
)

// stage is one matching strategy evaluated in fixed priority order.
// Both bundle types implement it; adding a third strategy means adding a
// stage, not rewriting Decide.
type stage interface {
	tryMatch(text string) (types.Action, string, bool)
}

// Engine serves moderation decisions from the currently published bundles.
type Engine struct {
	literals atomic.Pointer[LiteralBundle]
	regexes  atomic.Pointer[RegexBundle]
}

// NewEngine creates an engine with no bundles published. Every decision is
// APPROVED until a reload publishes rules.
func NewEngine() *Engine {
	return &Engine{}
}

// PublishLiterals atomically replaces the literal bundle. A nil bundle
// unpublishes the stage (empty rule set).
func (e *Engine) PublishLiterals(b *LiteralBundle) {
	e.literals.Store(b)
}

// PublishRegexes atomically replaces the regex bundle. A nil bundle
// unpublishes the stage.
func (e *Engine) PublishRegexes(b *RegexBundle) {
	e.regexes.Store(b)
}

// stages snapshots the published bundles in priority order: literal rules
// have absolute priority over regex rules. Each pointer is loaded exactly
// once, so the decision below is consistent within one bundle generation
// per stage even if a publish lands mid-call.
func (e *Engine) stages() []stage {
	stages := make([]stage, 0, 2)
	if b := e.literals.Load(); b != nil {
		stages = append(stages, b)
	}
	if b := e.regexes.Load(); b != nil {
		stages = append(stages, b)
	}
	return stages
}

// Decide classifies text against the published rule sets.
// Text is lowercased once; literal words were lowercased identically at
// build time. With no published bundles or no match the decision is
// APPROVED with no reason.
func (e *Engine) Decide(text string) types.Decision {
	text = strings.ToLower(text)

	for _, s := range e.stages() {
		if action, reason, ok := s.tryMatch(text); ok {
			return types.Decision{Status: action, Reason: &reason}
		}
	}

	return types.Decision{Status: types.ActionApproved}
}
