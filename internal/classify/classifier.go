package classify

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Policy controls where an old file of a recognized type lands.
type Policy string

const (
	// PolicyFlatten places old files directly under "Old Files".
	PolicyFlatten Policy = "flatten"
	// PolicyNested places old files under "Old Files/<type category>".
	PolicyNested Policy = "nested"
)

// ParsePolicy resolves a configured policy string.
func ParsePolicy(value string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case PolicyFlatten, "":
		return PolicyFlatten, nil
	case PolicyNested:
		return PolicyNested, nil
	default:
		return "", fmt.Errorf("unknown old files policy %q", value)
	}
}

// Ruleset is the immutable classification configuration: the
// extension→category table, the age threshold, and the old-files placement
// policy. It is built once at startup and passed into the classifier
// explicitly.
type Ruleset struct {
	extensions map[string]Category
	oldAfter   time.Duration
	policy     Policy
}

// NewRuleset builds a ruleset from the default extension table plus the
// given overrides (extension → category name). Override extensions may carry
// a leading dot; category names are case-folded.
func NewRuleset(overrides map[string]string, oldAfter time.Duration, policy Policy) (Ruleset, error) {
	if oldAfter <= 0 {
		return Ruleset{}, fmt.Errorf("old file threshold must be positive, got %s", oldAfter)
	}
	switch policy {
	case PolicyFlatten, PolicyNested:
	default:
		return Ruleset{}, fmt.Errorf("unknown old files policy %q", policy)
	}

	table := make(map[string]Category, len(defaultExtensions)+len(overrides))
	for ext, category := range defaultExtensions {
		table[ext] = category
	}
	for ext, name := range overrides {
		normalized := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(ext), ".")))
		if normalized == "" {
			return Ruleset{}, fmt.Errorf("extension override with empty extension")
		}
		category, err := ParseCategory(name)
		if err != nil {
			return Ruleset{}, fmt.Errorf("extension %q: %w", ext, err)
		}
		table[normalized] = category
	}

	return Ruleset{extensions: table, oldAfter: oldAfter, policy: policy}, nil
}

// DefaultRuleset returns the built-in table with a 30-day threshold and
// flattened old file placement.
func DefaultRuleset() Ruleset {
	rules, err := NewRuleset(nil, 30*24*time.Hour, PolicyFlatten)
	if err != nil {
		panic(err)
	}
	return rules
}

// OldAfter reports the age threshold.
func (r Ruleset) OldAfter() time.Duration { return r.oldAfter }

// Policy reports the old-files placement policy.
func (r Ruleset) Policy() Policy { return r.policy }

// Lookup maps a bare lower-case extension to its category.
func (r Ruleset) Lookup(ext string) Category {
	if category, ok := r.extensions[ext]; ok {
		return category
	}
	return Other
}

// Decision is the classification outcome for one file: the extension-derived
// category plus whether the file also qualifies as old.
type Decision struct {
	Category Category
	Old      bool
}

// Classifier maps file names and modification times to placement decisions.
type Classifier struct {
	rules Ruleset
}

// New constructs a classifier over the given ruleset.
func New(rules Ruleset) *Classifier {
	return &Classifier{rules: rules}
}

// Rules returns the ruleset backing this classifier.
func (c *Classifier) Rules() Ruleset { return c.rules }

// Classify is a pure function of the file name and modification time. It
// never fails: unknown extensions fall into Other.
func (c *Classifier) Classify(name string, modTime, now time.Time) Decision {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	return Decision{
		Category: c.rules.Lookup(ext),
		Old:      now.Sub(modTime) > c.rules.oldAfter,
	}
}

// Destination resolves a decision to the category folder path relative to
// the target directory. Age takes precedence over type: an old file goes
// under Old Files exclusively, flattened or nested per the policy.
func (c *Classifier) Destination(d Decision) string {
	if !d.Old {
		return string(d.Category)
	}
	if c.rules.policy == PolicyNested {
		return filepath.Join(string(OldFiles), string(d.Category))
	}
	return string(OldFiles)
}
