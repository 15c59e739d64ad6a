// Package html provides a Sink that renders the note list as an HTML
// fragment for static export.
package html

import (
	"io"
	"strconv"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.Sink = (*Sink)(nil)

// Element ids in the rendered fragment.
const (
	IDList   = "list"
	IDCount  = "count"
	IDStatus = "status"
	IDEmpty  = "empty"
)

// Sink keeps the last rendered state and serialises it as markup:
//
//	<div id="status">ready</div>
//	<div id="count">2</div>
//	<ul id="list"><li class="item"><a href="n/a/" rel="noopener">...</a></li></ul>
//	<div id="empty" hidden>No matching notes</div>
type Sink struct {
	mu      sync.Mutex
	entries []domain.Entry
	count   int
	empty   bool
	status  domain.State
}

// NewSink creates an empty HTML sink.
func NewSink() *Sink {
	return &Sink{status: domain.StateLoading}
}

// DisplayItems replaces the list.
func (s *Sink) DisplayItems(entries []domain.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}

// SetCount sets the #count text.
func (s *Sink) SetCount(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count = n
}

// SetEmpty toggles the hidden attribute of #empty.
func (s *Sink) SetEmpty(empty bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.empty = empty
}

// SetStatus sets the #status text.
func (s *Sink) SetStatus(state domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = state
}

// FocusInput is a no-op for static markup.
func (s *Sink) FocusInput() {}

// WriteTo serialises the current state.
func (s *Sink) WriteTo(w io.Writer) (int64, error) {
	s.mu.Lock()
	nodes := []*html.Node{
		textElement(atom.Div, s.status.StatusText(), attr("id", IDStatus)),
		textElement(atom.Div, strconv.Itoa(s.count), attr("id", IDCount)),
		listNode(s.entries),
		emptyNode(s.empty),
	}
	s.mu.Unlock()

	cw := &countingWriter{w: w}
	for _, n := range nodes {
		if err := html.Render(cw, n); err != nil {
			return cw.n, err
		}
		if _, err := io.WriteString(cw, "\n"); err != nil {
			return cw.n, err
		}
	}
	return cw.n, nil
}

func listNode(entries []domain.Entry) *html.Node {
	ul := element(atom.Ul, attr("id", IDList))
	for _, e := range entries {
		ul.AppendChild(itemNode(e))
	}
	return ul
}

func itemNode(e domain.Entry) *html.Node {
	li := element(atom.Li, attr("class", "item"))
	a := element(atom.A, attr("href", e.Href), attr("rel", "noopener"))
	li.AppendChild(a)

	row := element(atom.Div, attr("class", "row"))
	row.AppendChild(textElement(atom.Div, e.Heading, attr("class", "h")))
	row.AppendChild(textElement(atom.Div, e.Subheading, attr("class", "small")))
	a.AppendChild(row)

	if len(e.Tags) > 0 {
		wrap := element(atom.Div, attr("class", "tags"))
		for _, tag := range e.Tags {
			wrap.AppendChild(textElement(atom.Span, tag, attr("class", "tag")))
		}
		a.AppendChild(wrap)
	}

	if e.TBD != "" {
		a.AppendChild(textElement(atom.Div, e.TBD, attr("class", "small")))
	}

	return li
}

func emptyNode(empty bool) *html.Node {
	attrs := []html.Attribute{attr("id", IDEmpty)}
	if !empty {
		attrs = append(attrs, attr("hidden", ""))
	}
	return textElement(atom.Div, domain.EmptyText, attrs...)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textElement(a atom.Atom, text string, attrs ...html.Attribute) *html.Node {
	n := element(a, attrs...)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
