package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// LocalRef is a reference from an HTML page to a file next to it.
type LocalRef struct {
	Element string // e.g. "link", "script", "source", "image"
	Attr    string // "href" or "src"
	Path    string // slash path relative to the page, query and fragment removed
}

// refAttrs lists which attribute of which element points at a file.
var refAttrs = map[string]string{
	"link":   "href",
	"script": "src",
	"source": "src",
	"video":  "src",
	"audio":  "src",
	"img":    "src",
	"image":  "href", // SVG; matches both href and xlink:href
}

// CollectLocalRefs returns the local files an HTML page references, in
// document order, without duplicates. URLs, anchors, data URIs and absolute
// paths are skipped.
func CollectLocalRefs(htmlContent string) ([]LocalRef, error) {
	doc, _, err := parseHTML(htmlContent)
	if err != nil {
		return nil, err
	}

	var refs []LocalRef
	seen := make(map[string]bool)
	collectNode(doc, &refs, seen)
	return refs, nil
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.TrimSpace(content)

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(strings.ToLower(trimmed), "<!doctype") ||
		strings.HasPrefix(strings.ToLower(trimmed), "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// collectNode traverses the DOM and records local references.
func collectNode(n *html.Node, refs *[]LocalRef, seen map[string]bool) {
	if n.Type == html.ElementNode {
		if attrName, ok := refAttrs[n.Data]; ok {
			for _, attr := range n.Attr {
				if attr.Key != attrName {
					continue
				}
				ref := stripQueryAndFragment(strings.TrimSpace(attr.Val))
				if !isRelativePath(ref) || seen[ref] {
					continue
				}
				seen[ref] = true
				*refs = append(*refs, LocalRef{Element: n.Data, Attr: attrName, Path: ref})
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectNode(c, refs, seen)
	}
}
