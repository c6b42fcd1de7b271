package content

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/kvanta/cardgen/app/rules"
)

var (
	blankLinesRe   = regexp.MustCompile(`\n\s*\n+`)
	leadingWSRe    = regexp.MustCompile(`(?m)^[ \t]+`)
	barcodeSplitRe = regexp.MustCompile(`\s*/\s*`)
)

// Builder assembles the full product card: cleaned article HTML, grouped
// characteristics, document links and additional info, plus the excerpt and
// the attribute vocabulary payload.
type Builder struct {
	rules      *rules.Rules
	tokenizer  *Tokenizer
	normalizer *Normalizer
	classifier *Classifier
	matcher    *Matcher
	merger     *DimensionMerger
	docParser  *DocLinkParser
}

func NewBuilder(r *rules.Rules) *Builder {
	return &Builder{
		rules:      r,
		tokenizer:  NewTokenizer(),
		normalizer: NewNormalizer(r),
		classifier: NewClassifier(r),
		matcher:    NewMatcher(r),
		merger:     NewDimensionMerger(),
		docParser:  NewDocLinkParser(r),
	}
}

// Run builds one card. It never returns an error: a failing optional section
// is logged, recorded in the result diagnostics and omitted, and the result
// always carries at least the cleaned article HTML and its excerpt.
func (b *Builder) Run(product Product) Result {
	result := Result{
		Attributes:      make(map[string]string),
		ExtractedFields: make(map[string]string),
	}

	article := b.cleanArticle(product.DescriptionRaw)

	characteristics := b.section("characteristics", product.SKU, &result, func() string {
		return b.characteristicsSection(product.CharacteristicsRaw)
	})

	documents := b.section("documents", product.SKU, &result, func() string {
		return b.documentsSection(product.Documents, product.Name)
	})

	info := b.section("additional_info", product.SKU, &result, func() string {
		return b.additionalInfoSection(product.AdditionalInfo)
	})

	var parts []string
	for _, part := range []string{article, characteristics, documents, info} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	result.Content = strings.Join(parts, "\n\n")
	result.Excerpt = Excerpt(result.Content, b.rules.ExcerptMaxLength)

	b.section("attributes", product.SKU, &result, func() string {
		b.extractAttributes(product.CharacteristicsRaw, &result)
		return ""
	})

	return result
}

// section runs one optional block behind a recover barrier. A panic inside a
// block omits the block and records a diagnostic instead of propagating.
func (b *Builder) section(name, sku string, result *Result, fn func() string) (html string) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Card section failed, omitting", "section", name, "sku", sku, "error", r)
			result.Diagnostics = append(result.Diagnostics, fmt.Sprintf("section %s failed: %v", name, r))
			html = ""
		}
	}()

	return fn()
}

// analyze tokenizes the raw characteristics string and classifies every pair.
func (b *Builder) analyze(raw string) []Characteristic {
	pairs := b.tokenizer.Run(raw)

	characteristics := make([]Characteristic, 0, len(pairs))
	for _, pair := range pairs {
		isAttr, slug := b.matcher.Run(pair.Key)

		characteristics = append(characteristics, Characteristic{
			Key:           pair.Key,
			Value:         b.normalizer.Run(pair.Value),
			Group:         b.classifier.Run(pair.Key),
			IsAttribute:   isAttr,
			AttributeSlug: slug,
		})
	}

	return characteristics
}

// Group buckets the characteristics of a raw string by display group,
// preserving original text order within each group.
func (b *Builder) Group(raw string) Grouping {
	grouping := make(Grouping)
	for _, ch := range b.analyze(raw) {
		grouping[ch.Group] = append(grouping[ch.Group], ch)
	}
	return grouping
}

func (b *Builder) cleanArticle(html string) string {
	cleaned := strings.TrimSpace(html)
	if cleaned == "" {
		return ""
	}

	cleaned = blankLinesRe.ReplaceAllString(cleaned, "\n\n")
	cleaned = leadingWSRe.ReplaceAllString(cleaned, "")

	// Plain text gets wrapped in a single paragraph.
	if !strings.Contains(cleaned, "<") || !strings.Contains(cleaned, ">") {
		cleaned = "<p>" + cleaned + "</p>"
	}

	// XHTML-style line breaks.
	cleaned = strings.ReplaceAll(cleaned, "<br>", "<br />")

	return cleaned
}

func (b *Builder) characteristicsSection(raw string) string {
	grouping := b.Group(raw)
	if len(grouping) == 0 {
		return ""
	}

	var parts []string
	for _, group := range b.rules.GroupOrder() {
		characteristics := grouping[group]
		if len(characteristics) == 0 {
			continue
		}

		parts = append(parts, fmt.Sprintf("<h4>%s</h4>", group), "<ul>")
		for _, ch := range characteristics {
			parts = append(parts, fmt.Sprintf("<li><strong>%s:</strong> %s</li>", ch.Key, b.normalizer.Display(ch.Value)))
		}
		parts = append(parts, "</ul>")
	}

	if len(parts) == 0 {
		return ""
	}

	return "<h3>Технические характеристики</h3>\n" + strings.Join(parts, "\n")
}

func (b *Builder) documentsSection(documents map[string]string, productName string) string {
	if len(documents) == 0 {
		return ""
	}

	cleanName := sanitizeProductName(productName)

	var parts []string
	for _, docType := range b.docTypeOrder(documents) {
		urlList := documents[docType]
		if strings.TrimSpace(urlList) == "" {
			continue
		}

		entries := b.docParser.Run(urlList)
		if len(entries) == 0 {
			continue
		}

		parts = append(parts, fmt.Sprintf("<h4>%s</h4>", b.rules.DocTitle(docType)), "<ul>")

		for _, doc := range entries {
			linkText := b.rules.LinkWord(docType)
			if cleanName != "" {
				linkText += " " + cleanName
			}
			linkText += doc.FileTypeLabel

			alt := strings.ToUpper(strings.TrimPrefix(doc.Extension, "."))

			parts = append(parts, fmt.Sprintf(
				`<li><img src="%s%s" width="32" height="32" alt="%s" style="vertical-align: middle; margin-right: 8px;"><a href="%s" target="_blank" rel="noopener noreferrer">%s</a></li>`,
				b.rules.IconsPath, doc.Icon, alt, doc.URL, linkText))
		}

		parts = append(parts, "</ul>")
	}

	if len(parts) == 0 {
		return ""
	}

	return "<h3>Документация</h3>\n" + strings.Join(parts, "\n")
}

// docTypeOrder yields configured document types in rule order, then any
// unconfigured input types sorted by name for determinism.
func (b *Builder) docTypeOrder(documents map[string]string) []string {
	configured := make(map[string]bool, len(b.rules.DocTypes))

	var order []string
	for _, dt := range b.rules.DocTypes {
		configured[dt.Name] = true
		if _, ok := documents[dt.Name]; ok {
			order = append(order, dt.Name)
		}
	}

	var extra []string
	for docType := range documents {
		if !configured[docType] {
			extra = append(extra, docType)
		}
	}
	sort.Strings(extra)

	return append(order, extra...)
}

func (b *Builder) additionalInfoSection(info map[string]string) string {
	if len(info) == 0 {
		return ""
	}

	var parts []string

	if code := strings.TrimSpace(info[b.rules.Info.CodeField]); code != "" {
		parts = append(parts, fmt.Sprintf("<p><strong>Код товара:</strong> %s</p>", code))
	}

	if barcodes := strings.TrimSpace(info[b.rules.Info.BarcodeField]); barcodes != "" {
		var list []string
		for _, code := range barcodeSplitRe.Split(barcodes, -1) {
			if code = strings.TrimSpace(code); code != "" {
				list = append(list, code)
			}
		}
		if len(list) > 0 {
			parts = append(parts, fmt.Sprintf("<p><strong>Штрих-коды:</strong> %s</p>", strings.Join(list, ", ")))
		}
	}

	if exclusive := strings.TrimSpace(info[b.rules.Info.ExclusiveField]); exclusive != "" {
		if strings.EqualFold(exclusive, b.rules.AffirmativeToken) {
			parts = append(parts, "<p><strong>Эксклюзивный товар</strong></p>")
		}
	}

	return strings.Join(parts, "\n")
}

// extractAttributes produces the attribute vocabulary payload and the
// extracted named fields from the raw characteristics string.
func (b *Builder) extractAttributes(raw string, result *Result) {
	characteristics := b.analyze(raw)

	matched := 0
	for _, ch := range characteristics {
		if ch.IsAttribute && ch.AttributeSlug != "" {
			result.Attributes[ch.AttributeSlug] = b.normalizer.Attribute(ch.Value)
			matched++
		}
	}

	if b.rules.HasDimensionsAttribute() {
		if merged, ok := b.merger.Run(characteristics); ok {
			result.Attributes[b.rules.DimensionsSlug] = merged
		}
	}

	for field, keywords := range b.rules.ExtractFields {
		for _, ch := range characteristics {
			if matchesAnyKeyword(NormalizeKey(ch.Key), keywords) {
				result.ExtractedFields[field] = ch.Value
				break
			}
		}
	}

	result.Stats = Stats{
		Parsed:            len(characteristics),
		Grouped:           len(characteristics),
		AttributesMatched: matched,
	}
}

func matchesAnyKeyword(normalizedKey string, keywords []string) bool {
	for _, keyword := range keywords {
		if normalized := NormalizeKey(keyword); normalized != "" && strings.Contains(normalizedKey, normalized) {
			return true
		}
	}
	return false
}

var nameCleanRe = regexp.MustCompile(`[^\p{L}\p{N}_\s-]+`)

// sanitizeProductName prepares a product name for use inside document link
// names: slashes become hyphens, remaining special characters are dropped,
// the result is capped at 60 characters at a word boundary.
func sanitizeProductName(name string) string {
	clean := strings.TrimSpace(name)
	if clean == "" {
		return ""
	}

	clean = strings.ReplaceAll(clean, "/", "-")
	clean = nameCleanRe.ReplaceAllString(clean, " ")
	clean = strings.Join(strings.Fields(clean), " ")

	runes := []rune(clean)
	if len(runes) <= 60 {
		return clean
	}

	truncated := runes[:60]

	lastSpace := -1
	for i := len(truncated) - 1; i >= 0; i-- {
		if truncated[i] == ' ' {
			lastSpace = i
			break
		}
	}

	if lastSpace > 40 {
		return string(truncated[:lastSpace])
	}

	return string(truncated)
}
