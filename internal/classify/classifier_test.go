package classify_test

import (
	"testing"
	"time"

	"downsort/internal/classify"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func TestClassifyByExtension(t *testing.T) {
	c := classify.New(classify.DefaultRuleset())

	cases := []struct {
		name string
		want classify.Category
	}{
		{"report.pdf", classify.Documents},
		{"Photo.JPG", classify.Images},
		{"song.flac", classify.Audio},
		{"clip.webm", classify.Video},
		{"bundle.tar.gz", classify.Archives},
		{"main.py", classify.Code},
		{"setup.exe", classify.Executables},
		{"mystery.xyz", classify.Other},
		{"README", classify.Other},
		{"trailing.", classify.Other},
	}
	for _, tc := range cases {
		got := c.Classify(tc.name, now.Add(-24*time.Hour), now)
		if got.Category != tc.want {
			t.Errorf("Classify(%q) category = %q, want %q", tc.name, got.Category, tc.want)
		}
		if got.Old {
			t.Errorf("Classify(%q) unexpectedly old", tc.name)
		}
	}
}

func TestClassifyAge(t *testing.T) {
	c := classify.New(classify.DefaultRuleset())

	fresh := c.Classify("a.pdf", now.Add(-5*24*time.Hour), now)
	if fresh.Old {
		t.Fatal("5-day-old file marked old")
	}

	stale := c.Classify("b.jpg", now.Add(-45*24*time.Hour), now)
	if !stale.Old {
		t.Fatal("45-day-old file not marked old")
	}
	if stale.Category != classify.Images {
		t.Fatalf("old file lost its type category: %q", stale.Category)
	}

	boundary := c.Classify("c.txt", now.Add(-30*24*time.Hour), now)
	if boundary.Old {
		t.Fatal("exactly-30-day-old file marked old; threshold is strict")
	}
}

func TestDestinationPrecedence(t *testing.T) {
	c := classify.New(classify.DefaultRuleset())

	if got := c.Destination(classify.Decision{Category: classify.Images}); got != "Images" {
		t.Fatalf("fresh image destination = %q", got)
	}
	if got := c.Destination(classify.Decision{Category: classify.Images, Old: true}); got != "Old Files" {
		t.Fatalf("old image destination = %q, want flattened Old Files", got)
	}
}

func TestDestinationNestedPolicy(t *testing.T) {
	rules, err := classify.NewRuleset(nil, 30*24*time.Hour, classify.PolicyNested)
	if err != nil {
		t.Fatalf("NewRuleset: %v", err)
	}
	c := classify.New(rules)

	got := c.Destination(classify.Decision{Category: classify.Documents, Old: true})
	if got != "Old Files/Documents" {
		t.Fatalf("nested destination = %q", got)
	}
}

func TestRulesetOverrides(t *testing.T) {
	rules, err := classify.NewRuleset(map[string]string{
		".epub": "documents",
		"log":   "Documents",
	}, 30*24*time.Hour, classify.PolicyFlatten)
	if err != nil {
		t.Fatalf("NewRuleset: %v", err)
	}
	c := classify.New(rules)

	if got := c.Classify("book.epub", now, now).Category; got != classify.Documents {
		t.Fatalf("override .epub = %q", got)
	}
	if got := c.Classify("server.log", now, now).Category; got != classify.Documents {
		t.Fatalf("override log = %q", got)
	}
}

func TestRulesetRejectsBadInput(t *testing.T) {
	if _, err := classify.NewRuleset(map[string]string{"bak": "Vault"}, 30*24*time.Hour, classify.PolicyFlatten); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if _, err := classify.NewRuleset(map[string]string{"bak": "Old Files"}, 30*24*time.Hour, classify.PolicyFlatten); err == nil {
		t.Fatal("expected error for age-derived category target")
	}
	if _, err := classify.NewRuleset(nil, 0, classify.PolicyFlatten); err == nil {
		t.Fatal("expected error for non-positive threshold")
	}
	if _, err := classify.NewRuleset(nil, time.Hour, classify.Policy("scatter")); err == nil {
		t.Fatal("expected error for unknown policy")
	}
}

func TestParsePolicy(t *testing.T) {
	if p, err := classify.ParsePolicy(""); err != nil || p != classify.PolicyFlatten {
		t.Fatalf("empty policy = %q, %v", p, err)
	}
	if p, err := classify.ParsePolicy("Nested"); err != nil || p != classify.PolicyNested {
		t.Fatalf("nested policy = %q, %v", p, err)
	}
	if _, err := classify.ParsePolicy("deep"); err == nil {
		t.Fatal("expected error for unknown policy string")
	}
}
