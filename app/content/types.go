package content

// Card building types

// Pair is one raw tokenized key/value pair in original text order.
type Pair struct {
	Key   string
	Value string
}

// Characteristic is one classified characteristic of a product.
type Characteristic struct {
	Key           string
	Value         string
	Group         string
	IsAttribute   bool
	AttributeSlug string
}

// Grouping maps a display group name to its characteristics. Within a group
// the original text order is preserved; every tokenized characteristic lands
// in exactly one group.
type Grouping map[string][]Characteristic

// Product is one input record supplied by the ingestion side: all fields are
// already-loaded strings and maps, nothing here touches disk or network.
type Product struct {
	Name               string            `json:"name"`
	SKU                string            `json:"sku"`
	DescriptionRaw     string            `json:"description_raw"`
	CharacteristicsRaw string            `json:"characteristics_raw"`
	Documents          map[string]string `json:"documents"`       // document type -> comma-separated URL list
	AdditionalInfo     map[string]string `json:"additional_info"` // recognized keys configured in rules
}

// DocumentEntry is the metadata derived from one document URL.
type DocumentEntry struct {
	URL           string
	Filename      string
	Extension     string // lower-cased, with leading dot, empty when absent
	Icon          string
	FileTypeLabel string
}

// Result is the built card returned to the export side. Content and Excerpt
// are always populated (possibly empty), the maps are never nil.
type Result struct {
	Content         string            `json:"content"`
	Excerpt         string            `json:"excerpt"`
	Attributes      map[string]string `json:"attributes"`
	ExtractedFields map[string]string `json:"extracted_fields"`
	Diagnostics     []string          `json:"diagnostics,omitempty"`
	Stats           Stats             `json:"stats"`
}

// Stats carries the per-build counters; batch drivers sum them across
// products instead of sharing mutable state.
type Stats struct {
	Parsed            int `json:"parsed"`
	Grouped           int `json:"grouped"`
	AttributesMatched int `json:"attributes_matched"`
}
