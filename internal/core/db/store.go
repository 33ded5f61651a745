package db

import (
	"database/sql"
	"fmt"

	"github.com/solatis/wordgate/internal/types"
)

// Store provides typed CRUD access to the moderation rule tables.
// Fetch methods return rows in ascending id order (ascending key for
// settings); the reload coordinator depends on that ordering for match
// priority, so it lives in the named queries, not in callers.
type Store struct {
	q *Queries
}

// NewStore wraps loaded queries in a typed store.
func NewStore(q *Queries) *Store {
	return &Store{q: q}
}

// FetchAllLiteralRules returns every literal rule ordered by ascending id.
func (s *Store) FetchAllLiteralRules() ([]types.LiteralRule, error) {
	var rules []types.LiteralRule
	if err := s.q.Select("list-literal-rules", &rules); err != nil {
		return nil, fmt.Errorf("failed to fetch literal rules: %w", err)
	}
	return rules, nil
}

// FetchAllRegexRules returns every regex rule ordered by ascending id.
// This ordering is load-bearing: it determines regex match priority.
func (s *Store) FetchAllRegexRules() ([]types.RegexRule, error) {
	var rules []types.RegexRule
	if err := s.q.Select("list-regex-rules", &rules); err != nil {
		return nil, fmt.Errorf("failed to fetch regex rules: %w", err)
	}
	return rules, nil
}

// FetchAllSettings returns every setting ordered by key.
func (s *Store) FetchAllSettings() ([]types.Setting, error) {
	var items []types.Setting
	if err := s.q.Select("list-settings", &items); err != nil {
		return nil, fmt.Errorf("failed to fetch settings: %w", err)
	}
	return items, nil
}

// InsertLiteralRule inserts a literal word rule. Inserting a word that
// already exists is a success no-op (ON CONFLICT DO NOTHING); the caller
// still reloads afterwards.
func (s *Store) InsertLiteralRule(word string, action types.Action) error {
	if _, err := s.q.Exec("insert-literal-rule", word, action); err != nil {
		return fmt.Errorf("failed to insert literal rule: %w", err)
	}
	return nil
}

// DeleteLiteralRuleByWord deletes a literal rule by its stored word.
// Returns types.ErrRuleNotFound when no row matched; callers skip the
// reload in that case since nothing changed.
func (s *Store) DeleteLiteralRuleByWord(word string) error {
	res, err := s.q.Exec("delete-literal-rule-by-word", word)
	if err != nil {
		return fmt.Errorf("failed to delete literal rule: %w", err)
	}
	return requireRowsAffected(res)
}

// InsertRegexRule inserts a regex rule. The pattern must have been
// validated (compiled) by the caller before it reaches the store.
func (s *Store) InsertRegexRule(pattern string, description sql.NullString, action types.Action) error {
	if _, err := s.q.Exec("insert-regex-rule", pattern, description, action); err != nil {
		return fmt.Errorf("failed to insert regex rule: %w", err)
	}
	return nil
}

// DeleteRegexRuleByID deletes a regex rule by id.
// Returns types.ErrRuleNotFound when no row matched.
func (s *Store) DeleteRegexRuleByID(id int64) error {
	res, err := s.q.Exec("delete-regex-rule-by-id", id)
	if err != nil {
		return fmt.Errorf("failed to delete regex rule: %w", err)
	}
	return requireRowsAffected(res)
}

// UpsertSetting inserts or replaces a setting by key.
func (s *Store) UpsertSetting(key, value string) error {
	if _, err := s.q.Exec("upsert-setting", key, value); err != nil {
		return fmt.Errorf("failed to upsert setting: %w", err)
	}
	return nil
}

func requireRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 0 {
		return types.ErrRuleNotFound
	}
	return nil
}
