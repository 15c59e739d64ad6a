package html_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	htmlsink "github.com/custodia-labs/notedex/internal/adapters/driven/render/html"
	"github.com/custodia-labs/notedex/internal/core/domain"
	"github.com/custodia-labs/notedex/internal/core/services"
)

func render(t *testing.T, sink *htmlsink.Sink) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	n, err := sink.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return doc
}

func TestSink_Items(t *testing.T) {
	sink := htmlsink.NewSink()
	sink.SetStatus(domain.StateReady)
	services.Render(sink, []domain.Item{
		{ID: "a", Title: "Alpha", Path: "n/a/", Updated: "2024-01-01", Tags: []string{"x", "y"}, TBD: []string{"q1", "q2", "q3"}},
		{ID: "b", Path: "n/b/index.html"},
	})

	doc := render(t, sink)

	items := doc.Find("ul#list > li.item")
	require.Equal(t, 2, items.Length())

	first := items.First()
	link := first.Find("a")
	href, _ := link.Attr("href")
	rel, _ := link.Attr("rel")
	assert.Equal(t, "n/a/", href)
	assert.Equal(t, "noopener", rel)
	assert.Equal(t, "Alpha", link.Find("div.row > div.h").Text())
	assert.Equal(t, "2024-01-01", link.Find("div.row > div.small").Text())
	assert.Equal(t, 2, link.Find("div.tags > span.tag").Length())
	assert.Equal(t, "TBD: q1 / q2", link.Children().Last().Text())

	second := items.Eq(1)
	assert.Equal(t, "b", second.Find("div.h").Text())
	assert.Equal(t, "b", second.Find("div.row > div.small").Text())
	assert.Equal(t, 0, second.Find("div.tags").Length())

	assert.Equal(t, "2", doc.Find("#count").Text())
	assert.Equal(t, "ready", doc.Find("#status").Text())
	_, hidden := doc.Find("#empty").Attr("hidden")
	assert.True(t, hidden)
}

func TestSink_TagLimit(t *testing.T) {
	tags := make([]string, 11)
	for i := range tags {
		tags[i] = fmt.Sprintf("t%d", i)
	}
	sink := htmlsink.NewSink()
	services.Render(sink, []domain.Item{{ID: "a", Path: "p/", Tags: tags}})

	doc := render(t, sink)

	spans := doc.Find("span.tag")
	assert.Equal(t, 10, spans.Length())
	assert.Equal(t, "t9", spans.Last().Text())
}

func TestSink_Empty(t *testing.T) {
	sink := htmlsink.NewSink()
	services.Render(sink, nil)

	doc := render(t, sink)

	assert.Equal(t, 0, doc.Find("li.item").Length())
	assert.Equal(t, "0", doc.Find("#count").Text())
	empty := doc.Find("#empty")
	_, hidden := empty.Attr("hidden")
	assert.False(t, hidden)
	assert.Equal(t, "No matching notes", empty.Text())
}

func TestSink_EscapesText(t *testing.T) {
	sink := htmlsink.NewSink()
	services.Render(sink, []domain.Item{{ID: "a", Title: "<script>x</script>", Path: `p/"q/`}})

	var buf bytes.Buffer
	_, err := sink.WriteTo(&buf)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "<script>")
	assert.Contains(t, buf.String(), "&lt;script&gt;")
}

func TestSink_RenderReplacesList(t *testing.T) {
	sink := htmlsink.NewSink()
	services.Render(sink, []domain.Item{{ID: "a", Path: "p/"}, {ID: "b", Path: "q/"}})
	services.Render(sink, []domain.Item{{ID: "b", Path: "q/"}})

	doc := render(t, sink)

	assert.Equal(t, 1, doc.Find("li.item").Length())
	assert.Equal(t, "1", doc.Find("#count").Text())
}

func TestSink_Status(t *testing.T) {
	sink := htmlsink.NewSink()

	assert.Equal(t, "loading…", render(t, sink).Find("#status").Text())

	sink.SetStatus(domain.StateFailed)
	assert.Equal(t, "failed", render(t, sink).Find("#status").Text())
}
