package htmlutil

import (
	"bytes"
	"net/url"

	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// resolves href against base, returning href untouched when it
// cannot be parsed as a url.
func ResolveUrl(base *url.URL, href string) string {
	resolved, err := base.Parse(href)
	if err != nil {
		return href
	}
	return resolved.String()
}
