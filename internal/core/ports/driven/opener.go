package driven

// LinkOpener opens a note address in an external viewer.
type LinkOpener interface {
	// Open hands link to the viewer and returns without waiting for it.
	Open(link string) error
}
