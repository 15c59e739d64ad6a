package domain

import "strings"

// Item is a normalised, searchable note.
// It is the canonical representation after normalisation and is never
// mutated once built.
type Item struct {
	// ID is the unique identifier. Never empty.
	ID string `json:"id"`

	// Title is the human-readable title.
	Title string `json:"title"`

	// Path is the link target, ending in "/" or ".html". Never empty.
	Path string `json:"path"`

	// Updated is the last-modified label, possibly empty.
	Updated string `json:"updated"`

	// Tags are free-form labels.
	Tags []string `json:"tags"`

	// TBD lists open questions recorded in the note.
	TBD []string `json:"tbd"`

	// Confidence is carried through from the index; nil when absent.
	// Nothing displays it yet.
	Confidence *float64 `json:"confidence"`

	// SearchText is the lowercase haystack used for matching.
	SearchText string `json:"-"`
}

// Normalize coerces a raw record into an Item.
// It reports false when the record has no id or no path; it never panics
// on malformed input.
func Normalize(raw RawRecord) (Item, bool) {
	if raw == nil {
		return Item{}, false
	}

	id := raw.String(FieldID)
	path := raw.String(FieldPath)
	if id == "" || path == "" {
		return Item{}, false
	}

	// A blank-but-present title stays blank; the renderer falls back to id.
	title := scalarString(raw[FieldTitle])
	if title == "" {
		title = id
	}
	title = strings.TrimSpace(title)

	item := Item{
		ID:      id,
		Title:   title,
		Path:    NormalizePath(path),
		Updated: raw.String(FieldUpdated),
		Tags:    raw.Strings(FieldTags),
		TBD:     raw.Strings(FieldTBD),
	}
	if c, ok := raw.Number(FieldConfidence); ok {
		item.Confidence = &c
	}
	item.SearchText = BuildSearchText(item.ID, item.Title, item.Updated, item.Tags, item.TBD)

	return item, true
}

// NormalizeAll normalises every record, dropping the ones Normalize rejects.
// It returns the kept items in input order.
func NormalizeAll(raws []RawRecord) []Item {
	items := make([]Item, 0, len(raws))
	for _, raw := range raws {
		if item, ok := Normalize(raw); ok {
			items = append(items, item)
		}
	}
	return items
}

// NormalizePath leaves paths ending in ".html" alone and otherwise
// ensures exactly one trailing slash.
func NormalizePath(path string) string {
	if path == "" || strings.HasSuffix(path, ".html") {
		return path
	}
	return strings.TrimRight(path, "/") + "/"
}

// BuildSearchText joins id, title, updated, tags and tbd with single
// spaces and lowercases the result.
func BuildSearchText(id, title, updated string, tags, tbd []string) string {
	parts := make([]string, 0, 3+len(tags)+len(tbd))
	parts = append(parts, id, title, updated)
	parts = append(parts, tags...)
	parts = append(parts, tbd...)
	return strings.ToLower(strings.Join(parts, " "))
}
