package cache

import (
	"github.com/rs/zerolog"

	"github.com/solatis/wordgate/internal/matcher"
	"github.com/solatis/wordgate/internal/metrics"
	"github.com/solatis/wordgate/internal/types"
)

/*
 * Reload coordination.
 *
 * A reload replaces everything derived from one rule kind: the raw cache
 * contents and the published matcher bundle. The caller hands over
 * already-fetched rows; no database I/O happens here.
 *
 * Build-before-publish: the expensive compile step runs before any shared
 * state changes. A failed regex build returns an error with the previous
 * cache and bundle fully intact, and readers never stall beyond the O(1)
 * pointer swap itself.
 */

// Reloader replaces cache contents and published bundles for one rule kind
// at a time.
type Reloader struct {
	cache  *RuleCache
	engine *matcher.Engine
	log    zerolog.Logger
}

// NewReloader wires the reload coordinator to its cache and engine.
func NewReloader(cache *RuleCache, engine *matcher.Engine, log zerolog.Logger) *Reloader {
	return &Reloader{cache: cache, engine: engine, log: log}
}

// ReloadLiterals rebuilds the literal bundle from the full row set and
// publishes it, replacing the raw cache contents wholesale.
func (r *Reloader) ReloadLiterals(rules []types.LiteralRule) {
	bundle := matcher.BuildLiteralBundle(rules)
	r.cache.ReplaceLiterals(rules)
	r.engine.PublishLiterals(bundle)
	metrics.RuleReloadsTotal.WithLabelValues(metrics.KindLiteral).Inc()
	r.log.Debug().Int("rules", len(rules)).Msg("literal rules reloaded")
}

// ReloadRegexes rebuilds the regex bundle from the full row set and
// publishes it. A compile failure rejects the whole reload: the error
// propagates and the previously published bundle and cache stay live.
func (r *Reloader) ReloadRegexes(rules []types.RegexRule) error {
	bundle, err := matcher.BuildRegexBundle(rules)
	if err != nil {
		metrics.RuleReloadFailuresTotal.WithLabelValues(metrics.KindRegex).Inc()
		r.log.Error().Err(err).Msg("regex reload rejected, previous bundle stays live")
		return err
	}
	r.cache.ReplaceRegexes(rules)
	r.engine.PublishRegexes(bundle)
	metrics.RuleReloadsTotal.WithLabelValues(metrics.KindRegex).Inc()
	r.log.Debug().Int("rules", len(rules)).Msg("regex rules reloaded")
	return nil
}

// ReloadSettings replaces the settings cache wholesale. Settings feed no
// matcher; this only keeps the listing endpoint current.
func (r *Reloader) ReloadSettings(items []types.Setting) {
	r.cache.ReplaceSettings(items)
	metrics.RuleReloadsTotal.WithLabelValues(metrics.KindSetting).Inc()
	r.log.Debug().Int("settings", len(items)).Msg("settings reloaded")
}
