package domain

import "strings"

// Display limits for a rendered entry.
const (
	// MaxTags is the number of tag badges shown per entry.
	MaxTags = 10

	// MaxTBD is the number of open questions shown per entry.
	MaxTBD = 2

	// TBDLabel prefixes the open-questions line.
	TBDLabel = "TBD: "

	// TBDSeparator joins the open questions shown.
	TBDSeparator = " / "

	// EmptyText is shown when no item matches.
	EmptyText = "No matching notes"
)

// Entry is the display projection of an Item.
type Entry struct {
	// ID is the item identifier.
	ID string

	// Heading is the title, or the id when the title is blank.
	Heading string

	// Subheading is the updated label, or the id when that is blank.
	Subheading string

	// Href is the item path.
	Href string

	// Tags holds at most MaxTags tags.
	Tags []string

	// TBD is the labelled open-questions line, empty when there are none.
	TBD string
}

// Project builds the Entry shown for item.
func Project(item Item) Entry {
	e := Entry{
		ID:         item.ID,
		Heading:    item.Title,
		Subheading: item.Updated,
		Href:       item.Path,
	}
	if e.Heading == "" {
		e.Heading = item.ID
	}
	if e.Subheading == "" {
		e.Subheading = item.ID
	}

	tags := item.Tags
	if len(tags) > MaxTags {
		tags = tags[:MaxTags]
	}
	e.Tags = append([]string(nil), tags...)

	tbd := item.TBD
	if len(tbd) > MaxTBD {
		tbd = tbd[:MaxTBD]
	}
	if len(tbd) > 0 {
		e.TBD = TBDLabel + strings.Join(tbd, TBDSeparator)
	}

	return e
}

// ProjectAll projects items in order.
func ProjectAll(items []Item) []Entry {
	entries := make([]Entry, len(items))
	for i := range items {
		entries[i] = Project(items[i])
	}
	return entries
}
