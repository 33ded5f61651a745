// Package api provides the HTTP handlers for the WordGate moderation API.
package api

import (
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/solatis/wordgate/internal/cache"
	"github.com/solatis/wordgate/internal/matcher"
	"github.com/solatis/wordgate/internal/types"
)

// Store defines the rule store operations the handlers need.
// Implemented by *db.Store; tests substitute an in-memory fake.
type Store interface {
	FetchAllLiteralRules() ([]types.LiteralRule, error)
	FetchAllRegexRules() ([]types.RegexRule, error)
	FetchAllSettings() ([]types.Setting, error)
	InsertLiteralRule(word string, action types.Action) error
	DeleteLiteralRuleByWord(word string) error
	InsertRegexRule(pattern string, description sql.NullString, action types.Action) error
	DeleteRegexRuleByID(id int64) error
	UpsertSetting(key, value string) error
}

// Service is a thin orchestration layer: handlers validate input, call the
// store, then hand freshly fetched full row sets to the reload coordinator.
type Service struct {
	store    Store
	cache    *cache.RuleCache
	engine   *matcher.Engine
	reloader *cache.Reloader
	log      zerolog.Logger
}

// NewService creates the service with its dependencies.
func NewService(store Store, ruleCache *cache.RuleCache, engine *matcher.Engine, reloader *cache.Reloader, log zerolog.Logger) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("store cannot be nil")
	}
	if ruleCache == nil {
		return nil, fmt.Errorf("cache cannot be nil")
	}
	if engine == nil {
		return nil, fmt.Errorf("engine cannot be nil")
	}
	if reloader == nil {
		return nil, fmt.Errorf("reloader cannot be nil")
	}
	return &Service{
		store:    store,
		cache:    ruleCache,
		engine:   engine,
		reloader: reloader,
		log:      log,
	}, nil
}

// Register attaches all moderation API routes to the given router group.
func (s *Service) Register(r gin.IRouter) {
	r.POST("/moderate", s.Moderate)

	r.GET("/rules/badwords", s.ListLiterals)
	r.POST("/rules/badwords", s.AddLiteral)
	r.DELETE("/rules/badwords/:word", s.DeleteLiteral)

	r.GET("/rules/regex", s.ListRegexes)
	r.POST("/rules/regex", s.AddRegex)
	r.DELETE("/rules/regex/:id", s.DeleteRegex)

	r.GET("/rules/settings", s.ListSettings)
	r.POST("/rules/settings", s.UpsertSetting)
}

// refetchLiterals pulls the full current literal set and reloads it.
func (s *Service) refetchLiterals() error {
	rules, err := s.store.FetchAllLiteralRules()
	if err != nil {
		return err
	}
	s.reloader.ReloadLiterals(rules)
	return nil
}

// refetchRegexes pulls the full current regex set and reloads it.
func (s *Service) refetchRegexes() error {
	rules, err := s.store.FetchAllRegexRules()
	if err != nil {
		return err
	}
	return s.reloader.ReloadRegexes(rules)
}

// refetchSettings pulls the full current settings and reloads them.
func (s *Service) refetchSettings() error {
	items, err := s.store.FetchAllSettings()
	if err != nil {
		return err
	}
	s.reloader.ReloadSettings(items)
	return nil
}
