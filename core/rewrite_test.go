package core

import "testing"

func TestRewriteRules_Rebuild(t *testing.T) {
	r := NewRewriteRules()
	if r.Len() != 0 {
		t.Fatalf("expected empty table before rebuild")
	}

	r.Rebuild("gallery", []string{"kitchen", "garden"})

	rules := r.List()
	if len(rules) != 4 {
		t.Fatalf("expected 4 rules, got %d", len(rules))
	}
	if rules[0].Pattern != "/gallery" || rules[0].Target != "gallery:index" {
		t.Fatalf("unexpected index rule: %+v", rules[0])
	}
	if rules[2].Pattern != "/gallery/kitchen" || rules[2].Target != "gallery:view:kitchen" {
		t.Fatalf("unexpected slug rule: %+v", rules[2])
	}
	if r.Base() != "gallery" {
		t.Fatalf("unexpected base: %q", r.Base())
	}
	if r.FlushedAt().IsZero() {
		t.Fatalf("expected flush timestamp to be set")
	}
}

func TestRewriteRules_RebuildReplaces(t *testing.T) {
	r := NewRewriteRules()
	r.Rebuild("gallery", []string{"kitchen"})
	r.Rebuild("showcase", nil)

	rules := r.List()
	if len(rules) != 2 {
		t.Fatalf("expected only base rules after rebuild, got %d", len(rules))
	}
	if rules[0].Pattern != "/showcase" {
		t.Fatalf("expected new base in patterns, got %q", rules[0].Pattern)
	}
}

func TestRewriteRules_ListIsCopy(t *testing.T) {
	r := NewRewriteRules()
	r.Rebuild("gallery", []string{"a"})

	rules := r.List()
	rules[0].Pattern = "mutated"

	if r.List()[0].Pattern == "mutated" {
		t.Fatalf("List must return a copy")
	}
}
