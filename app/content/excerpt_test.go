package content

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExcerpt_StripsMarkup(t *testing.T) {
	html := "<h3>Технические характеристики</h3>\n<ul>\n<li><strong>Цвет:</strong> Белый</li>\n</ul>"

	excerpt := Excerpt(html, 200)

	if strings.Contains(excerpt, "<") || strings.Contains(excerpt, ">") {
		t.Errorf("Expected markup stripped, got %q", excerpt)
	}
	if !strings.Contains(excerpt, "Цвет: Белый") {
		t.Errorf("Expected text content preserved, got %q", excerpt)
	}
}

func TestExcerpt_ShortTextUnchanged(t *testing.T) {
	if got := Excerpt("<p>Короткое описание</p>", 200); got != "Короткое описание" {
		t.Errorf("Expected short text unchanged, got %q", got)
	}
}

func TestExcerpt_TruncatesAtWordBoundary(t *testing.T) {
	got := Excerpt("<p>один два три четыре пять шесть семь восемь</p>", 25)

	if got != "один два три четыре пять..." {
		t.Errorf("Expected truncation at word boundary with ellipsis, got %q", got)
	}
}

func TestExcerpt_HardTruncationWithoutLateSpace(t *testing.T) {
	// The only space falls before 70% of the limit, so the cut is hard.
	got := Excerpt("<p>ab негабаритногигантскоеслово</p>", 10)

	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis on truncation, got %q", got)
	}
	if utf8.RuneCountInString(got) != 13 {
		t.Errorf("Expected 10 runes plus ellipsis, got %d in %q", utf8.RuneCountInString(got), got)
	}
}

func TestExcerpt_LongContent(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		b.WriteString("<p>Конвектор с электронным термостатом для жилых помещений.</p>\n")
	}

	excerpt := Excerpt(b.String(), 200)

	if !strings.HasSuffix(excerpt, "...") {
		t.Errorf("Expected long excerpt to end with ellipsis, got %q", excerpt)
	}
	if utf8.RuneCountInString(excerpt) > 203 {
		t.Errorf("Expected at most 203 runes, got %d", utf8.RuneCountInString(excerpt))
	}
}

func TestExcerpt_Empty(t *testing.T) {
	if got := Excerpt("", 200); got != "" {
		t.Errorf("Expected empty excerpt for empty input, got %q", got)
	}
}
