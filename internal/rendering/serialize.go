package rendering

import (
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed styles/*.css
var styles embed.FS

// toHTML converts a presentation node into an x/net/html node tree.
func toHTML(n *Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}
	hn := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	if n.Class != "" {
		hn.Attr = append(hn.Attr, html.Attribute{Key: "class", Val: n.Class})
	}
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		hn.Attr = append(hn.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
	}
	for _, c := range n.Children {
		hn.AppendChild(toHTML(c))
	}
	return hn
}

// HTML serializes n as an HTML fragment. Text and attribute values are escaped.
func HTML(n *Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, toHTML(n)); err != nil {
		return "", &RenderError{Stage: "html", Cause: err}
	}
	return buf.String(), nil
}

// sanitizer allows exactly the markup the templates emit.
var sanitizer = newSanitizer()

func newSanitizer() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("div", "section", "header", "main", "aside", "h1", "h2", "h3", "h4", "p", "span", "ul", "li", "a")
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowAttrs("rel").Matching(regexp.MustCompile(`^noreferrer$`)).OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto", "tel")
	p.RequireParseableURLs(true)
	return p
}

// PageOptions controls Page output.
type PageOptions struct {
	Title string
	// Print drops the on-screen paper frame so the page prints edge to edge on A4.
	Print bool
}

// Page wraps n in a standalone HTML document with the template's stylesheet.
// The body is passed through an allow-list sanitizer.
func Page(n *Node, id types.TemplateID, opts PageOptions) ([]byte, error) {
	t, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	body, err := HTML(n)
	if err != nil {
		return nil, err
	}
	css, err := stylesheet(id)
	if err != nil {
		return nil, err
	}

	mode := "screen"
	if opts.Print {
		mode = "print"
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&buf, "<title>%s</title>\n", html.EscapeString(opts.Title))
	fmt.Fprintf(&buf, "<style>\n%s</style>\n</head>\n", css)
	fmt.Fprintf(&buf, "<body class=\"%s %s\">\n<div class=\"paper\">\n", t.pageClass(), mode)
	buf.WriteString(sanitizer.Sanitize(body))
	buf.WriteString("\n</div>\n</body>\n</html>\n")
	return buf.Bytes(), nil
}

func stylesheet(id types.TemplateID) (string, error) {
	baseCSS, err := styles.ReadFile("styles/base.css")
	if err != nil {
		return "", &RenderError{Stage: "stylesheet", Cause: err}
	}
	own, err := styles.ReadFile("styles/" + string(id) + ".css")
	if err != nil {
		return "", &TemplateError{Template: id, Cause: err}
	}
	return string(baseCSS) + "\n" + string(own), nil
}

var markdownConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	),
)

// Markdown converts n to Markdown, used for plain ATS exports and terminal previews.
func Markdown(n *Node) (string, error) {
	fragment, err := HTML(n)
	if err != nil {
		return "", err
	}
	md, err := markdownConverter.ConvertString(fragment)
	if err != nil {
		return "", &RenderError{Stage: "markdown", Cause: err}
	}
	return md, nil
}

var blockTags = map[string]bool{
	"div": true, "section": true, "header": true, "main": true, "aside": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "p": true, "ul": true, "li": true,
}

// PlainText flattens n to plain text, one block element per line.
func PlainText(n *Node) string {
	var sb strings.Builder
	writeText(&sb, n)
	lines := strings.Split(sb.String(), "\n")
	out := lines[:0]
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func writeText(sb *strings.Builder, n *Node) {
	if n == nil {
		return
	}
	if n.IsText() {
		sb.WriteString(n.Text)
		return
	}
	block := blockTags[n.Tag]
	if block {
		sb.WriteByte('\n')
	}
	for i, c := range n.Children {
		if i > 0 && !block && !c.IsText() {
			sb.WriteByte(' ')
		}
		if i > 0 && block && !c.IsText() && !blockTags[c.Tag] {
			sb.WriteByte(' ')
		}
		writeText(sb, c)
	}
	if block {
		sb.WriteByte('\n')
	}
}
