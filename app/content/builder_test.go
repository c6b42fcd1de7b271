package content

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/kvanta/cardgen/app/rules"
)

func TestBuilder_Run_EmptyProduct(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	result := builder.Run(Product{})

	if result.Content != "" {
		t.Errorf("Expected empty content for empty product, got %q", result.Content)
	}
	if result.Excerpt != "" {
		t.Errorf("Expected empty excerpt for empty product, got %q", result.Excerpt)
	}
	if len(result.Attributes) != 0 {
		t.Errorf("Expected no attributes, got %v", result.Attributes)
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("Expected no diagnostics, got %v", result.Diagnostics)
	}
}

func TestBuilder_Run_CharacteristicsSection(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	result := builder.Run(Product{
		SKU:                "NFK4S-20",
		Name:               "Конвектор Nobo",
		CharacteristicsRaw: "Цвет корпуса: Белый; Мощность: 2 кВт; Страна производства: РОССИЯ",
	})

	if !strings.Contains(result.Content, "<h3>Технические характеристики</h3>") {
		t.Error("Expected characteristics heading in content")
	}
	if !strings.Contains(result.Content, "<h4>Внешний вид</h4>") {
		t.Error("Expected group heading for color characteristic")
	}
	if !strings.Contains(result.Content, "<li><strong>Цвет корпуса:</strong> Белый</li>") {
		t.Errorf("Expected characteristic list item, content:\n%s", result.Content)
	}
	if !strings.Contains(result.Content, "<li><strong>Мощность:</strong> 2 кВт</li>") {
		t.Error("Expected power list item")
	}
}

func TestBuilder_Run_GroupOrderFollowsRules(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	result := builder.Run(Product{
		SKU:                "TEST-1",
		CharacteristicsRaw: "Цвет корпуса: Белый; Вес: 5 кг; Уровень шума: низкий",
	})

	weightIdx := strings.Index(result.Content, "<h4>Габариты и вес</h4>")
	colorIdx := strings.Index(result.Content, "<h4>Внешний вид</h4>")
	otherIdx := strings.Index(result.Content, "<h4>Другие характеристики</h4>")

	if weightIdx < 0 || colorIdx < 0 || otherIdx < 0 {
		t.Fatalf("Expected all three group headings, content:\n%s", result.Content)
	}
	if !(weightIdx < colorIdx && colorIdx < otherIdx) {
		t.Errorf("Expected rule order with default group last, got positions %d %d %d", weightIdx, colorIdx, otherIdx)
	}
}

func TestBuilder_Run_BooleanValuesInHTML(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	result := builder.Run(Product{
		SKU:                "TEST-2",
		CharacteristicsRaw: "Защита от перегрева: yes; Дистанционное управление: no",
	})

	if !strings.Contains(result.Content, "<li><strong>Защита от перегрева:</strong> Да</li>") {
		t.Errorf("Expected 'yes' rendered as Да, content:\n%s", result.Content)
	}
	if !strings.Contains(result.Content, "<li><strong>Дистанционное управление:</strong> Нет</li>") {
		t.Errorf("Expected 'no' rendered as Нет, content:\n%s", result.Content)
	}
	if strings.Contains(result.Content, "yes") || strings.Contains(result.Content, ">no<") {
		t.Errorf("Expected no machine boolean tokens left in HTML, content:\n%s", result.Content)
	}
}

func TestBuilder_Run_AttributePayload(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	result := builder.Run(Product{
		SKU:                "TEST-3",
		CharacteristicsRaw: "Цвет корпуса: Белый; Мощность: 2 кВт; Страна производства: РОССИЯ; Уровень шума: низкий",
	})

	expected := map[string]string{
		"pa_color":   "Белый",
		"pa_power":   "2 кВт",
		"pa_country": "РОССИЯ",
	}
	for slug, value := range expected {
		if got := result.Attributes[slug]; got != value {
			t.Errorf("Attribute %s: expected %q, got %q", slug, value, got)
		}
	}
	if _, ok := result.Attributes["pa_dimensions"]; ok {
		t.Error("Expected no dimensions attribute without dimension characteristics")
	}

	if result.Stats.Parsed != 4 {
		t.Errorf("Expected 4 parsed characteristics, got %d", result.Stats.Parsed)
	}
	if result.Stats.AttributesMatched != 3 {
		t.Errorf("Expected 3 matched attributes, got %d", result.Stats.AttributesMatched)
	}
}

func TestBuilder_Run_AttributeBooleansNeverCyrillic(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	result := builder.Run(Product{
		SKU:                "TEST-4",
		CharacteristicsRaw: "Область применения: Да",
	})

	if got := result.Attributes["pa_application"]; got != "yes" {
		t.Errorf("Expected attribute payload 'yes', got %q", got)
	}
	// The HTML keeps the human representation.
	if !strings.Contains(result.Content, "<li><strong>Область применения:</strong> Да</li>") {
		t.Errorf("Expected Да in HTML, content:\n%s", result.Content)
	}
}

func TestBuilder_Run_DimensionsMergedIntoAttribute(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	result := builder.Run(Product{
		SKU:                "TEST-5",
		CharacteristicsRaw: "Ширина товара: 94 см; Высота товара: 22 см; Глубина товара: 12 см",
	})

	if got := result.Attributes["pa_dimensions"]; got != "94 см x 22 см x 12 см" {
		t.Errorf("Expected merged dimensions attribute, got %q", got)
	}

	if result.ExtractedFields["width"] != "94 см" {
		t.Errorf("Expected extracted width '94 см', got %q", result.ExtractedFields["width"])
	}
	if result.ExtractedFields["height"] != "22 см" {
		t.Errorf("Expected extracted height '22 см', got %q", result.ExtractedFields["height"])
	}
	if result.ExtractedFields["length"] != "12 см" {
		t.Errorf("Expected extracted length '12 см', got %q", result.ExtractedFields["length"])
	}
}

func TestBuilder_Run_ArticleCleaning(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	result := builder.Run(Product{
		SKU:            "TEST-6",
		DescriptionRaw: "Просто текст без разметки",
	})

	if result.Content != "<p>Просто текст без разметки</p>" {
		t.Errorf("Expected plain text wrapped in paragraph, got %q", result.Content)
	}

	result = builder.Run(Product{
		SKU:            "TEST-7",
		DescriptionRaw: "<p>Первый абзац</p>\n\n\n\n   <p>Второй<br>абзац</p>",
	})

	if strings.Contains(result.Content, "\n\n\n") {
		t.Errorf("Expected blank line runs collapsed, got %q", result.Content)
	}
	if !strings.Contains(result.Content, "<br />") || strings.Contains(result.Content, "<br>") {
		t.Errorf("Expected XHTML line breaks, got %q", result.Content)
	}
	if strings.Contains(result.Content, "   <p>Второй") {
		t.Errorf("Expected leading indentation stripped, got %q", result.Content)
	}
}

func TestBuilder_Run_DocumentsSection(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	result := builder.Run(Product{
		SKU:  "TEST-8",
		Name: "Конвектор Nobo / 1500",
		Documents: map[string]string{
			"Чертежи": "https://example.com/files/drawing.pdf",
		},
	})

	if !strings.Contains(result.Content, "<h3>Документация</h3>") {
		t.Error("Expected documents heading in content")
	}
	if !strings.Contains(result.Content, "<h4>Чертежи и схемы</h4>") {
		t.Error("Expected document type title")
	}
	if !strings.Contains(result.Content, ">Чертеж Конвектор Nobo - 1500 (PDF)</a>") {
		t.Errorf("Expected readable link text with sanitized name, content:\n%s", result.Content)
	}
	if !strings.Contains(result.Content, `src="/wp-content/uploads/icons/pdf-icon.png"`) {
		t.Error("Expected icon path in image source")
	}
	if !strings.Contains(result.Content, `target="_blank" rel="noopener noreferrer"`) {
		t.Error("Expected external link attributes")
	}
}

func TestBuilder_Run_AdditionalInfoSection(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	result := builder.Run(Product{
		SKU: "TEST-9",
		AdditionalInfo: map[string]string{
			"НС-код":    "123456",
			"Штрих код": "4601234567890/4609876543210",
			"Эксклюзив": "Да",
		},
	})

	if !strings.Contains(result.Content, "<p><strong>Код товара:</strong> 123456</p>") {
		t.Errorf("Expected product code line, content:\n%s", result.Content)
	}
	if !strings.Contains(result.Content, "<p><strong>Штрих-коды:</strong> 4601234567890, 4609876543210</p>") {
		t.Errorf("Expected barcodes re-joined with commas, content:\n%s", result.Content)
	}
	if !strings.Contains(result.Content, "<p><strong>Эксклюзивный товар</strong></p>") {
		t.Error("Expected exclusivity marker")
	}
}

func TestBuilder_Run_ExclusivityRequiresAffirmative(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	result := builder.Run(Product{
		SKU: "TEST-10",
		AdditionalInfo: map[string]string{
			"Эксклюзив": "Нет",
		},
	})

	if strings.Contains(result.Content, "Эксклюзивный товар") {
		t.Errorf("Expected no exclusivity marker for negative value, content:\n%s", result.Content)
	}
}

func TestBuilder_Run_ExcerptTruncation(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	var b strings.Builder
	for i := 0; i < 40; i++ {
		b.WriteString("Обогреватель подходит для жилых и коммерческих помещений. ")
	}

	result := builder.Run(Product{
		SKU:            "TEST-11",
		DescriptionRaw: "<p>" + b.String() + "</p>",
	})

	if !strings.HasSuffix(result.Excerpt, "...") {
		t.Errorf("Expected truncated excerpt to end with ellipsis, got %q", result.Excerpt)
	}
	if utf8.RuneCountInString(result.Excerpt) > 203 {
		t.Errorf("Expected excerpt capped at 200 runes plus ellipsis, got %d", utf8.RuneCountInString(result.Excerpt))
	}
	if strings.Contains(result.Excerpt, "<p>") {
		t.Errorf("Expected markup-free excerpt, got %q", result.Excerpt)
	}
}

func TestBuilder_Group(t *testing.T) {
	builder := NewBuilder(rules.Defaults())

	grouping := builder.Group("Цвет корпуса: Белый; Материал корпуса: сталь; Вес: 5 кг")

	appearance := grouping["Внешний вид"]
	if len(appearance) != 2 {
		t.Fatalf("Expected 2 characteristics in appearance group, got %d", len(appearance))
	}
	if appearance[0].Key != "Цвет корпуса" || appearance[1].Key != "Материал корпуса" {
		t.Errorf("Expected source order preserved within group, got %+v", appearance)
	}

	if len(grouping["Габариты и вес"]) != 1 {
		t.Errorf("Expected weight characteristic in its group, got %+v", grouping["Габариты и вес"])
	}
}

func TestSanitizeProductName(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"Конвектор Nobo / 1500", "Конвектор Nobo - 1500"},
		{"Обогреватель «Лидер» (2 кВт)", "Обогреватель Лидер 2 кВт"},
		{"", ""},
		{"   ", ""},
	}

	for _, c := range cases {
		if got := sanitizeProductName(c.input); got != c.expected {
			t.Errorf("sanitizeProductName(%q): expected %q, got %q", c.input, c.expected, got)
		}
	}
}

func TestSanitizeProductName_CapsLength(t *testing.T) {
	long := strings.Repeat("Конвектор ", 10)

	got := sanitizeProductName(long)

	if utf8.RuneCountInString(got) > 60 {
		t.Errorf("Expected name capped at 60 runes, got %d", utf8.RuneCountInString(got))
	}
	if strings.HasSuffix(got, " ") {
		t.Errorf("Expected no trailing space after word-boundary cut, got %q", got)
	}
}
