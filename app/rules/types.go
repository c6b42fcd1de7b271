package rules

// Rules is the read-only parsing configuration shared by all card builds.
// It is loaded once at startup and never mutated afterwards.
type Rules struct {
	Groups       []Group     `yaml:"groups"`
	DefaultGroup string      `yaml:"default_group"`
	Attributes   []Attribute `yaml:"attributes"`

	// Slug reserved for the merged width/height/length attribute. The merge
	// only fires when this slug is present in the attribute vocabulary.
	DimensionsSlug string `yaml:"dimensions_slug"`

	// Characteristics extracted into standalone named fields,
	// field name -> matching key substrings.
	ExtractFields map[string][]string `yaml:"extract_fields"`

	// Boolean token tables. Display maps machine tokens to human text
	// (yes -> Да), attribute maps human text to machine tokens (да -> yes).
	DisplayBooleans   map[string]string `yaml:"display_booleans"`
	AttributeBooleans map[string]string `yaml:"attribute_booleans"`

	// Token that marks the exclusivity flag as set.
	AffirmativeToken string `yaml:"affirmative_token"`

	Info InfoFields `yaml:"info"`

	DocTypes        []DocType `yaml:"doc_types"`
	DefaultLinkWord string    `yaml:"default_link_word"`

	IconsPath   string            `yaml:"icons_path"`
	DefaultIcon string            `yaml:"default_icon"`
	FileIcons   map[string]string `yaml:"file_icons"`
	FileLabels  map[string]string `yaml:"file_labels"`

	ExcerptMaxLength int `yaml:"excerpt_max_length"`
}

// Group is one ordered classification rule: the first group whose any keyword
// is a substring of the normalized characteristic key wins.
type Group struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Attribute maps a characteristic key onto an external vocabulary slug.
// Order matters: fuzzy matching takes the first entry that fits.
type Attribute struct {
	Key  string `yaml:"key"`
	Slug string `yaml:"slug"`
}

// InfoFields names the recognized keys of the additional-info record.
type InfoFields struct {
	CodeField      string `yaml:"code_field"`
	BarcodeField   string `yaml:"barcode_field"`
	ExclusiveField string `yaml:"exclusive_field"`
}

// DocType describes one document column: its display title in the documents
// section and the word used to build readable link names.
type DocType struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	LinkWord string `yaml:"link_word"`
}

// GroupOrder returns the display order of groups: configured order first,
// default group always last.
func (r *Rules) GroupOrder() []string {
	order := make([]string, 0, len(r.Groups)+1)
	for _, g := range r.Groups {
		order = append(order, g.Name)
	}
	return append(order, r.DefaultGroup)
}

// HasDimensionsAttribute reports whether the vocabulary declares the merged
// dimensions slug.
func (r *Rules) HasDimensionsAttribute() bool {
	if r.DimensionsSlug == "" {
		return false
	}
	for _, a := range r.Attributes {
		if a.Slug == r.DimensionsSlug {
			return true
		}
	}
	return false
}

// Icon returns the icon filename for a lower-cased file extension.
func (r *Rules) Icon(ext string) string {
	if icon, ok := r.FileIcons[ext]; ok {
		return icon
	}
	return r.DefaultIcon
}

// Label returns the human file-type label for a lower-cased file extension,
// empty when unknown.
func (r *Rules) Label(ext string) string {
	return r.FileLabels[ext]
}

// LinkWord returns the default document word for a document type name.
func (r *Rules) LinkWord(docType string) string {
	for _, dt := range r.DocTypes {
		if dt.Name == docType {
			return dt.LinkWord
		}
	}
	return r.DefaultLinkWord
}

// DocTitle returns the display title of a document type, falling back to the
// type name itself.
func (r *Rules) DocTitle(docType string) string {
	for _, dt := range r.DocTypes {
		if dt.Name == docType {
			return dt.Title
		}
	}
	return docType
}
