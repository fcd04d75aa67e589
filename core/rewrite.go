package core

import (
	"fmt"
	"sync"
	"time"
)

// RewriteRule maps a public URL pattern to the internal route serving it.
type RewriteRule struct {
	Pattern string `json:"pattern"`
	Target  string `json:"target"`
}

// RewriteRules is the route table for public gallery URLs. It is derived from
// the gallery_base option plus the published gallery slugs, and rebuilt on
// demand by the rewrite debug tool or after a defaults save.
type RewriteRules struct {
	rules     []RewriteRule
	base      string
	flushedAt time.Time
	mu        sync.RWMutex
}

// NewRewriteRules builds an empty rule table.
func NewRewriteRules() *RewriteRules {
	return &RewriteRules{}
}

// Rebuild replaces the rule table from the gallery base slug and the current
// set of published gallery slugs.
func (r *RewriteRules) Rebuild(base string, slugs []string) {
	rules := make([]RewriteRule, 0, len(slugs)+2)
	rules = append(rules,
		RewriteRule{Pattern: "/" + base, Target: "gallery:index"},
		RewriteRule{Pattern: "/" + base + "/page/:n", Target: "gallery:index"},
	)
	for _, slug := range slugs {
		rules = append(rules, RewriteRule{
			Pattern: fmt.Sprintf("/%s/%s", base, slug),
			Target:  "gallery:view:" + slug,
		})
	}

	r.mu.Lock()
	r.rules = rules
	r.base = base
	r.flushedAt = time.Now()
	r.mu.Unlock()
}

// List returns a copy of the current rules.
func (r *RewriteRules) List() []RewriteRule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]RewriteRule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Base returns the gallery base slug the table was last built from.
func (r *RewriteRules) Base() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.base
}

// FlushedAt returns when the table was last rebuilt (zero when never).
func (r *RewriteRules) FlushedAt() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.flushedAt
}

// Len returns the number of rules.
func (r *RewriteRules) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rules)
}
