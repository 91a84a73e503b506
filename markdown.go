package mindtext

import (
	"html"
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkRE = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLRE      = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagRE      = regexp.MustCompile(`<[^>]*>`)
)

// PlainText renders markdown input (journal exports, forum posts) to plain
// text. Link labels are kept while tags and bare URLs are removed, and runs
// of whitespace collapse to a single space.
func PlainText(input string) string {
	input = markdownLinkRE.ReplaceAllString(input, "$1")

	// No smartypants flags, so the apostrophe in "don't" is left alone.
	// Renderers keep per-document state and are not shared.
	renderer := blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
		Flags: blackfriday.UseXHTML,
	})
	output := blackfriday.Run([]byte(input),
		blackfriday.WithNoExtensions(),
		blackfriday.WithRenderer(renderer),
	)
	text := htmlTagRE.ReplaceAllString(string(output), "")
	text = html.UnescapeString(text)
	text = bareURLRE.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}
