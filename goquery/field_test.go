package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/mjpitz/mcp-rfc/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSelection(t *testing.T, html string) *gq.Selection {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc.Selection
}

func TestField_First(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed text of first match", func(t *testing.T) {
		t.Parallel()

		sel := newSelection(t, `<ul class="authors"><li>  First
			Author </li><li>Second</li></ul>`)

		assert.Equal(t, "First Author", goquery.Field{".authors > li"}.First(sel))
	})

	t.Run("skips empty matches", func(t *testing.T) {
		t.Parallel()

		sel := newSelection(t, `<p class="x"> </p><p class="x">value</p>`)

		assert.Equal(t, "value", goquery.Field{".x"}.First(sel))
	})

	t.Run("tries selectors in order", func(t *testing.T) {
		t.Parallel()

		sel := newSelection(t, `<p class="b">second</p><p class="a">first</p>`)

		assert.Equal(t, "first", goquery.Field{".a", ".b"}.First(sel))
		assert.Equal(t, "second", goquery.Field{".missing", ".b"}.First(sel))
	})

	t.Run("returns empty string when absent", func(t *testing.T) {
		t.Parallel()

		sel := newSelection(t, `<p>nothing</p>`)

		assert.Empty(t, goquery.Field{".missing"}.First(sel))
		assert.Empty(t, goquery.Field{}.First(sel))
	})
}

func TestField_All(t *testing.T) {
	t.Parallel()

	t.Run("returns all non-empty matches in order", func(t *testing.T) {
		t.Parallel()

		sel := newSelection(t, `<i class="n">A</i><i class="n"></i><i class="n">B</i>`)

		assert.Equal(t, []string{"A", "B"}, goquery.Field{".n"}.All(sel))
	})

	t.Run("uses first selector with matches", func(t *testing.T) {
		t.Parallel()

		sel := newSelection(t, `<i class="a">A</i><i class="b">B</i>`)

		assert.Equal(t, []string{"B"}, goquery.Field{".missing", ".b", ".a"}.All(sel))
	})

	t.Run("returns nil when absent", func(t *testing.T) {
		t.Parallel()

		sel := newSelection(t, `<p>nothing</p>`)

		assert.Nil(t, goquery.Field{".missing"}.All(sel))
	})
}

func TestRanks_Heading(t *testing.T) {
	t.Parallel()

	t.Run("searches ranks in order of precedence", func(t *testing.T) {
		t.Parallel()

		sel := newSelection(t, `<section><h4>four</h4><h3>three</h3></section>`)

		assert.Equal(t, "three", goquery.MustRanks("h2", "h3", "h4").Heading(sel))
		assert.Equal(t, "four", goquery.MustRanks("h4", "h3").Heading(sel))
	})

	t.Run("skips empty headings", func(t *testing.T) {
		t.Parallel()

		sel := newSelection(t, `<section><h2></h2><h2>real</h2></section>`)

		assert.Equal(t, "real", goquery.SectionRanks.Heading(sel))
	})

	t.Run("returns empty string without headings", func(t *testing.T) {
		t.Parallel()

		sel := newSelection(t, `<section><p>text</p></section>`)

		assert.Empty(t, goquery.SubsectionRanks.Heading(sel))
	})

	t.Run("rejects invalid selectors", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewRanks("h2", "[[")
		require.Error(t, err)
		assert.Panics(t, func() { goquery.MustRanks("[[") })
	})
}
