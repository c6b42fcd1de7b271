package content

import (
	"testing"

	"github.com/kvanta/cardgen/app/rules"
)

func TestMatcher_Run_ExactMatch(t *testing.T) {
	matcher := NewMatcher(rules.Defaults())

	matched, slug := matcher.Run("Цвет корпуса")
	if !matched {
		t.Fatal("Expected exact vocabulary key to match")
	}
	if slug != "pa_color" {
		t.Errorf("Expected slug 'pa_color', got '%s'", slug)
	}
}

func TestMatcher_Run_KeyContainsVocabularyKey(t *testing.T) {
	matcher := NewMatcher(rules.Defaults())

	matched, slug := matcher.Run("Цвет корпуса изделия")
	if !matched {
		t.Fatal("Expected longer key containing vocabulary key to match")
	}
	if slug != "pa_color" {
		t.Errorf("Expected slug 'pa_color', got '%s'", slug)
	}
}

func TestMatcher_Run_VocabularyKeyContainsKey(t *testing.T) {
	matcher := NewMatcher(rules.Defaults())

	matched, slug := matcher.Run("Габариты (ШхВхГ)")
	if !matched {
		t.Fatal("Expected punctuated key to match after normalization")
	}
	if slug != "pa_dimensions" {
		t.Errorf("Expected slug 'pa_dimensions', got '%s'", slug)
	}
}

func TestMatcher_Run_NoMatch(t *testing.T) {
	matcher := NewMatcher(rules.Defaults())

	matched, slug := matcher.Run("Напряжение")
	if matched {
		t.Errorf("Expected no match, got slug '%s'", slug)
	}
	if slug != "" {
		t.Errorf("Expected empty slug on miss, got '%s'", slug)
	}
}

func TestMatcher_Run_EmptyKey(t *testing.T) {
	matcher := NewMatcher(rules.Defaults())

	if matched, _ := matcher.Run(""); matched {
		t.Error("Expected empty key not to match anything")
	}
	if matched, _ := matcher.Run("!!!"); matched {
		t.Error("Expected punctuation-only key not to match anything")
	}
}

func TestMatcher_Run_VocabularyOrderTieBreak(t *testing.T) {
	r := &rules.Rules{
		Attributes: []rules.Attribute{
			{Key: "Материал", Slug: "pa_material"},
			{Key: "Материал корпуса", Slug: "pa_body-material"},
		},
	}
	matcher := NewMatcher(r)

	// "Материал корпуса" matches the second entry exactly, but containment
	// also satisfies the first; the exact pass runs first.
	matched, slug := matcher.Run("Материал корпуса")
	if !matched || slug != "pa_body-material" {
		t.Errorf("Expected exact match to win, got matched=%v slug='%s'", matched, slug)
	}

	// A key satisfying containment for both entries takes the earlier one.
	matched, slug = matcher.Run("Материал ручки")
	if !matched || slug != "pa_material" {
		t.Errorf("Expected first containment match to win, got matched=%v slug='%s'", matched, slug)
	}
}
