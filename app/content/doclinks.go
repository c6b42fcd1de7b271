package content

import (
	"net/url"
	"path"
	"strings"

	"github.com/kvanta/cardgen/app/rules"
)

// DocLinkParser parses a comma-separated document URL list into entries with
// filename, extension, icon and file-type label. Readable link names are left
// to the caller since they depend on product context.
type DocLinkParser struct {
	rules *rules.Rules
}

func NewDocLinkParser(r *rules.Rules) *DocLinkParser {
	return &DocLinkParser{rules: r}
}

func (p *DocLinkParser) Run(urlList string) []DocumentEntry {
	var entries []DocumentEntry

	for _, rawURL := range strings.Split(urlList, ",") {
		rawURL = strings.TrimSpace(rawURL)
		if rawURL == "" {
			continue
		}

		filename := filenameFromURL(rawURL)
		ext := strings.ToLower(path.Ext(filename))

		entries = append(entries, DocumentEntry{
			URL:           rawURL,
			Filename:      filename,
			Extension:     ext,
			Icon:          p.rules.Icon(ext),
			FileTypeLabel: p.rules.Label(ext),
		})
	}

	return entries
}

func filenameFromURL(rawURL string) string {
	pathPart := rawURL
	if parsed, err := url.Parse(rawURL); err == nil {
		pathPart = parsed.Path
	}

	if pathPart == "" {
		return ""
	}

	base := path.Base(pathPart)
	if base == "." || base == "/" {
		return ""
	}

	return base
}
