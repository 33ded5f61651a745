package matcher

import (
	"sync"
	"testing"

	"github.com/solatis/wordgate/internal/types"
)

func newTestEngine(t *testing.T, literals []types.LiteralRule, regexes []types.RegexRule) *Engine {
	t.Helper()
	e := NewEngine()
	e.PublishLiterals(BuildLiteralBundle(literals))
	rb, err := BuildRegexBundle(regexes)
	if err != nil {
		t.Fatalf("BuildRegexBundle error = %v", err)
	}
	e.PublishRegexes(rb)
	return e
}

func TestDecide_NoBundles(t *testing.T) {
	e := NewEngine()

	d := e.Decide("anything at all")
	if d.Status != types.ActionApproved {
		t.Errorf("Status = %v, want %v", d.Status, types.ActionApproved)
	}
	if d.Reason != nil {
		t.Errorf("Reason = %q, want nil", *d.Reason)
	}
}

func TestDecide_EndToEnd(t *testing.T) {
	e := newTestEngine(t,
		[]types.LiteralRule{literalRule(1, "spam", types.ActionRejected)},
		[]types.RegexRule{regexRule(5, `\bfree money\b`, "scam pitch", types.ActionNeedsReview)},
	)

	tests := []struct {
		name       string
		text       string
		wantStatus types.Action
		wantReason string // empty = nil reason expected
	}{
		{"literal wins over regex", "this is spam and free money", types.ActionRejected, "literal match: spam"},
		{"regex only", "free money only", types.ActionNeedsReview, "scam pitch"},
		{"no match", "hello world", types.ActionApproved, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := e.Decide(tt.text)
			if d.Status != tt.wantStatus {
				t.Errorf("Status = %v, want %v", d.Status, tt.wantStatus)
			}
			if tt.wantReason == "" {
				if d.Reason != nil {
					t.Errorf("Reason = %q, want nil", *d.Reason)
				}
				return
			}
			if d.Reason == nil {
				t.Fatalf("Reason = nil, want %q", tt.wantReason)
			}
			if *d.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", *d.Reason, tt.wantReason)
			}
		})
	}
}

func TestDecide_CaseNormalization(t *testing.T) {
	e := newTestEngine(t,
		[]types.LiteralRule{literalRule(1, "bad", types.ActionRejected)},
		nil,
	)

	d := e.Decide("BAD")
	if d.Status != types.ActionRejected {
		t.Errorf("Status = %v, want %v (stored casing is irrelevant)", d.Status, types.ActionRejected)
	}
}

func TestDecide_LiteralTieBreak(t *testing.T) {
	// "abc" and "ab" both start at index 1 of "xabcx"; the earlier-inserted
	// pattern (index 0) must win.
	e := newTestEngine(t,
		[]types.LiteralRule{
			literalRule(1, "abc", types.ActionRejected),
			literalRule(2, "ab", types.ActionNeedsReview),
		},
		nil,
	)

	d := e.Decide("xabcx")
	if d.Status != types.ActionRejected {
		t.Errorf("Status = %v, want %v (first-inserted pattern)", d.Status, types.ActionRejected)
	}
	if d.Reason == nil || *d.Reason != "literal match: abc" {
		t.Errorf("Reason = %v, want literal match: abc", d.Reason)
	}
}

func TestDecide_EarliestLiteralWins(t *testing.T) {
	// "late" is inserted first but "early" starts earlier in the text.
	e := newTestEngine(t,
		[]types.LiteralRule{
			literalRule(1, "late", types.ActionNeedsReview),
			literalRule(2, "early", types.ActionRejected),
		},
		nil,
	)

	d := e.Decide("early bird, late worm")
	if d.Status != types.ActionRejected {
		t.Errorf("Status = %v, want %v (earliest-starting match)", d.Status, types.ActionRejected)
	}
}

func TestDecide_RegexTieBreak(t *testing.T) {
	// Both patterns match; the lower-id (lower-index) rule must be reported.
	e := newTestEngine(t, nil, []types.RegexRule{
		regexRule(3, `money`, "low id", types.ActionRejected),
		regexRule(7, `free`, "high id", types.ActionNeedsReview),
	})

	d := e.Decide("free money")
	if d.Status != types.ActionRejected {
		t.Errorf("Status = %v, want %v (lowest-id rule)", d.Status, types.ActionRejected)
	}
	if d.Reason == nil || *d.Reason != "low id" {
		t.Errorf("Reason = %v, want low id", d.Reason)
	}
}

func TestDecide_AbsenceSemantics(t *testing.T) {
	e := newTestEngine(t,
		[]types.LiteralRule{literalRule(1, "spam", types.ActionRejected)},
		nil,
	)

	// Publishing the empty set unpublishes the stage entirely.
	e.PublishLiterals(BuildLiteralBundle(nil))

	d := e.Decide("this is spam")
	if d.Status != types.ActionApproved {
		t.Errorf("Status = %v, want %v after empty reload", d.Status, types.ActionApproved)
	}
}

func TestDecide_IdempotentRepublish(t *testing.T) {
	rules := []types.LiteralRule{literalRule(1, "spam", types.ActionRejected)}

	e := NewEngine()
	e.PublishLiterals(BuildLiteralBundle(rules))
	first := e.Decide("spam here")
	e.PublishLiterals(BuildLiteralBundle(rules))
	second := e.Decide("spam here")

	if first.Status != second.Status {
		t.Errorf("Status changed across identical republish: %v vs %v", first.Status, second.Status)
	}
	if *first.Reason != *second.Reason {
		t.Errorf("Reason changed across identical republish: %q vs %q", *first.Reason, *second.Reason)
	}
}

func TestDecide_AtomicityUnderConcurrentReload(t *testing.T) {
	// Two bundle generations with disjoint words and actions. A decision
	// must always be a consistent (status, reason) pair from exactly one
	// generation; a mixed pairing means a torn bundle was observed.
	genA := []types.LiteralRule{literalRule(1, "alphaword", types.ActionRejected)}
	genB := []types.LiteralRule{literalRule(1, "betaword", types.ActionNeedsReview)}
	text := "alphaword betaword"

	e := NewEngine()
	e.PublishLiterals(BuildLiteralBundle(genA))

	const readers = 8
	const iterations = 2000

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < iterations; i++ {
			if i%2 == 0 {
				e.PublishLiterals(BuildLiteralBundle(genB))
			} else {
				e.PublishLiterals(BuildLiteralBundle(genA))
			}
		}
	}()

	var wg sync.WaitGroup
	for r := 0; r < readers; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				d := e.Decide(text)
				if d.Reason == nil {
					t.Errorf("Decide returned no reason while bundles published")
					return
				}
				switch {
				case d.Status == types.ActionRejected && *d.Reason == "literal match: alphaword":
				case d.Status == types.ActionNeedsReview && *d.Reason == "literal match: betaword":
				default:
					t.Errorf("torn decision: status=%v reason=%q", d.Status, *d.Reason)
					return
				}
			}
		}()
	}

	wg.Wait()
	<-done
}
