package htmltomarkdown_test

import (
	"errors"
	"strings"
	"testing"

	rfc "github.com/mjpitz/mcp-rfc"
	rfcgoquery "github.com/mjpitz/mcp-rfc/goquery"
	"github.com/mjpitz/mcp-rfc/htmltomarkdown"
	"github.com/mjpitz/mcp-rfc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	t.Run("writes front matter", func(t *testing.T) {
		t.Parallel()

		doc := &rfc.Document{
			Metadata: rfc.Metadata{
				Number:    "2616",
				Title:     `Hypertext "Transfer" Protocol`,
				Authors:   []string{"R. Fielding", "J. Gettys"},
				Date:      "June 1999",
				Status:    "Draft Standard",
				SourceURL: "https://www.rfc-editor.org/rfc/rfc2616.txt",
			},
			Format: rfc.FormatText,
		}

		out, err := htmltomarkdown.NewRenderer(htmltomarkdown.NewConverter()).Render(doc)
		require.NoError(t, err)

		md := string(out)
		assert.True(t, strings.HasPrefix(md, "---\nrfc: \"2616\"\n"))
		assert.Contains(t, md, `title: "Hypertext \"Transfer\" Protocol"`)
		assert.Contains(t, md, "authors:\n  - \"R. Fielding\"\n  - \"J. Gettys\"\n")
		assert.Contains(t, md, "date: \"June 1999\"\n")
		assert.Contains(t, md, "status: \"Draft Standard\"\n")
		assert.Contains(t, md, "source: \"https://www.rfc-editor.org/rfc/rfc2616.txt\"\n")
		assert.Contains(t, md, "format: \"text\"\n---\n\n# Hypertext \"Transfer\" Protocol\n")
	})

	t.Run("omits empty optional metadata", func(t *testing.T) {
		t.Parallel()

		doc := &rfc.Document{
			Metadata: rfc.Metadata{Number: "1", Title: "RFC 1", SourceURL: "u"},
			Format:   rfc.FormatText,
		}

		out, err := htmltomarkdown.NewRenderer(&mock.Converter{}).Render(doc)
		require.NoError(t, err)

		md := string(out)
		assert.NotContains(t, md, "authors:")
		assert.NotContains(t, md, "date:")
		assert.NotContains(t, md, "status:")
		assert.NotContains(t, md, "## Abstract")
	})

	t.Run("fences text sections", func(t *testing.T) {
		t.Parallel()

		doc := &rfc.Document{
			Metadata: rfc.Metadata{Number: "1", Title: "RFC 1", SourceURL: "u", Abstract: "Short."},
			Sections: []rfc.Section{
				{Title: "Introduction", Content: "\n   The protocol.\n"},
				{Title: "Empty", Content: "\n\n"},
			},
			Format: rfc.FormatText,
		}

		out, err := htmltomarkdown.NewRenderer(&mock.Converter{}).Render(doc)
		require.NoError(t, err)

		md := string(out)
		assert.Contains(t, md, "## Abstract\n\nShort.\n")
		assert.Contains(t, md, "## Introduction\n\n```text\n   The protocol.\n```\n")
		assert.True(t, strings.HasSuffix(md, "## Empty\n"))
	})

	t.Run("converts outermost HTML sections only", func(t *testing.T) {
		t.Parallel()

		var converted []string
		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				converted = append(converted, html)
				return "md(" + html + ")\n", nil
			},
		}
		doc := &rfc.Document{
			Metadata: rfc.Metadata{Number: "1", Title: "RFC 1", SourceURL: "u"},
			Sections: []rfc.Section{
				{Title: "1. Introduction", Content: "<h2>1</h2><section>A</section>", Subsections: []rfc.Subsection{{Title: "1.1. Purpose", Content: "A"}}},
				{Title: "1.1. Purpose", Content: "A"},
				{Title: "2. Notation", Content: "<h2>2</h2>"},
			},
			Format: rfc.FormatHTML,
		}

		out, err := htmltomarkdown.NewRenderer(conv).Render(doc)
		require.NoError(t, err)

		assert.Equal(t, []string{"<h2>1</h2><section>A</section>", "<h2>2</h2>"}, converted)
		assert.Contains(t, string(out), "md(<h2>2</h2>)")
	})

	t.Run("renders parsed xml2rfc sections without navigation links", func(t *testing.T) {
		t.Parallel()

		page := `<html><body><h1 id="title">Example Protocol</h1>
<section id="section-1">
<h2 id="name-introduction"><a href="#section-1" class="section-number selfRef">1. </a><a href="#name-introduction" class="section-name selfRef">Introduction</a></h2>
<p id="section-1-1">HTTP is a protocol.<a href="#section-1-1" class="pilcrow">¶</a></p>
</section>
</body></html>`

		doc, err := rfcgoquery.NewParser().Parse("9999", "https://www.rfc-editor.org/rfc/rfc9999.html", page)
		require.NoError(t, err)

		out, err := htmltomarkdown.NewRenderer(htmltomarkdown.NewConverter()).Render(doc)
		require.NoError(t, err)

		md := string(out)
		assert.Regexp(t, `(?m)^## 1\\?\. Introduction$`, md)
		assert.Contains(t, md, "HTTP is a protocol.")
		assert.NotContains(t, md, "¶")
		assert.NotContains(t, md, "](#")
	})

	t.Run("returns conversion errors", func(t *testing.T) {
		t.Parallel()

		conv := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("boom")
			},
		}
		doc := &rfc.Document{
			Metadata: rfc.Metadata{Number: "1", Title: "RFC 1", SourceURL: "u"},
			Sections: []rfc.Section{{Title: "Intro", Content: "<p>x</p>"}},
			Format:   rfc.FormatHTML,
		}

		_, err := htmltomarkdown.NewRenderer(conv).Render(doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"Intro"`)
	})

	t.Run("uses md extension", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "md", htmltomarkdown.NewRenderer(&mock.Converter{}).Extension())
	})
}
