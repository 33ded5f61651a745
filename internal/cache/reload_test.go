package cache

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/solatis/wordgate/internal/matcher"
	"github.com/solatis/wordgate/internal/types"
)

func newTestReloader(t *testing.T) (*Reloader, *RuleCache, *matcher.Engine) {
	t.Helper()
	c := newTestCache(t)
	e := matcher.NewEngine()
	return NewReloader(c, e, zerolog.Nop()), c, e
}

func TestReloadLiterals_PublishesBundle(t *testing.T) {
	r, c, e := newTestReloader(t)

	r.ReloadLiterals([]types.LiteralRule{
		{ID: 1, Word: "spam", Action: types.ActionRejected},
	})

	d := e.Decide("this is spam")
	if d.Status != types.ActionRejected {
		t.Errorf("Status = %v, want %v after reload", d.Status, types.ActionRejected)
	}
	if len(c.ListLiterals()) != 1 {
		t.Errorf("cache not repopulated by reload")
	}
}

func TestReloadRegexes_FailureKeepsPreviousState(t *testing.T) {
	r, c, e := newTestReloader(t)

	good := []types.RegexRule{
		{ID: 1, Pattern: `free money`, Action: types.ActionNeedsReview},
	}
	if err := r.ReloadRegexes(good); err != nil {
		t.Fatalf("ReloadRegexes(good) error = %v", err)
	}

	bad := []types.RegexRule{
		{ID: 1, Pattern: `free money`, Action: types.ActionNeedsReview},
		{ID: 2, Pattern: `broken(`, Action: types.ActionRejected},
	}
	err := r.ReloadRegexes(bad)
	if err == nil {
		t.Fatal("ReloadRegexes(bad) error = nil, want compile failure")
	}
	if !errors.Is(err, types.ErrInvalidPattern) {
		t.Errorf("error = %v, want wrapped %v", err, types.ErrInvalidPattern)
	}

	// The previous bundle still decides, and the cache still lists the
	// previous row set.
	d := e.Decide("free money here")
	if d.Status != types.ActionNeedsReview {
		t.Errorf("Status = %v, want %v (old bundle stays live)", d.Status, types.ActionNeedsReview)
	}
	listed := c.ListRegexes()
	if len(listed) != 1 || listed[0].Pattern != `free money` {
		t.Errorf("cache mutated by rejected reload: %+v", listed)
	}
}

func TestReloadRegexes_EmptySetUnpublishes(t *testing.T) {
	r, _, e := newTestReloader(t)

	if err := r.ReloadRegexes([]types.RegexRule{
		{ID: 1, Pattern: `spam`, Action: types.ActionRejected},
	}); err != nil {
		t.Fatalf("ReloadRegexes error = %v", err)
	}
	if err := r.ReloadRegexes(nil); err != nil {
		t.Fatalf("ReloadRegexes(nil) error = %v", err)
	}

	d := e.Decide("spam text")
	if d.Status != types.ActionApproved {
		t.Errorf("Status = %v, want %v after empty reload", d.Status, types.ActionApproved)
	}
}

func TestReloadRegexes_Idempotent(t *testing.T) {
	r, _, e := newTestReloader(t)

	rules := []types.RegexRule{
		{
			ID:          1,
			Pattern:     `spam`,
			Description: sql.NullString{String: "junk", Valid: true},
			Action:      types.ActionRejected,
		},
	}
	if err := r.ReloadRegexes(rules); err != nil {
		t.Fatalf("ReloadRegexes error = %v", err)
	}
	first := e.Decide("spam")
	if err := r.ReloadRegexes(rules); err != nil {
		t.Fatalf("ReloadRegexes error = %v", err)
	}
	second := e.Decide("spam")

	if first.Status != second.Status || *first.Reason != *second.Reason {
		t.Errorf("decision changed across identical reload: %+v vs %+v", first, second)
	}
}

func TestReloadSettings_UpdatesCacheOnly(t *testing.T) {
	r, c, e := newTestReloader(t)

	r.ReloadSettings([]types.Setting{{Key: "max_links", Value: "3"}})

	listed := c.ListSettings()
	if len(listed) != 1 || listed[0].Value != "3" {
		t.Errorf("ListSettings() = %+v, want the reloaded setting", listed)
	}
	if d := e.Decide("max_links"); d.Status != types.ActionApproved {
		t.Errorf("settings reload must not affect moderation decisions")
	}
}
