package site

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

type node = html.Node

func parse(t *testing.T, body string) *node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func attr(n *node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findAll(root *node, match func(*node) bool) []*node {
	var out []*node
	var walk func(*node)
	walk = func(n *node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

func byID(t *testing.T, root *node, id string) *node {
	t.Helper()
	found := findAll(root, func(n *node) bool { return attr(n, "id") == id })
	require.Len(t, found, 1, "element #%s", id)
	return found[0]
}

func TestAnchorsResolveToOneSection(t *testing.T) {
	_, c := newTestServer(t, Options{})
	doc := parse(t, c.get("/").Body.String())

	ids := make(map[string]int)
	for _, n := range findAll(doc, func(n *node) bool { return attr(n, "id") != "" }) {
		ids[attr(n, "id")]++
	}
	for id, count := range ids {
		assert.Equal(t, 1, count, "id %q is not unique", id)
	}

	links := findAll(doc, func(n *node) bool { return n.Data == "a" })
	require.NotEmpty(t, links)
	var inPage int
	for _, a := range links {
		href := attr(a, "href")
		target, ok := strings.CutPrefix(href, "#")
		if !ok || target == "" {
			continue
		}
		inPage++
		assert.Equal(t, 1, ids[target], "href %q", href)
	}
	assert.NotZero(t, inPage)

	nav := findAll(doc, func(n *node) bool { return n.Data == "nav" })
	require.Len(t, nav, 1)
	var menu []string
	for _, a := range findAll(nav[0], func(n *node) bool { return n.Data == "a" }) {
		if href := attr(a, "href"); strings.HasPrefix(href, "#") && href != "#" {
			menu = append(menu, href)
		}
	}
	assert.Equal(t, []string{"#about", "#skills", "#experience", "#projects", "#contact"}, menu)
}

func TestExternalLinksOpenInNewContext(t *testing.T) {
	_, c := newTestServer(t, Options{})
	doc := parse(t, c.get("/").Body.String())

	for _, a := range findAll(doc, func(n *node) bool { return n.Data == "a" }) {
		href := attr(a, "href")
		switch {
		case strings.HasPrefix(href, "http"):
			assert.Equal(t, "_blank", attr(a, "target"), href)
			assert.Equal(t, "noopener noreferrer", attr(a, "rel"), href)
		case strings.HasPrefix(href, "mailto:"), strings.HasPrefix(href, "tel:"), strings.HasPrefix(href, "#"):
			assert.NotEqual(t, "_blank", attr(a, "target"), href)
			assert.Empty(t, attr(a, "rel"), href)
		default:
			t.Errorf("unexpected link %q", href)
		}
	}
}

func TestContactMethodsKeepTheirScheme(t *testing.T) {
	_, c := newTestServer(t, Options{})
	body := c.get("/").Body.String()
	require.NotContains(t, body, "ZgotmplZ", "every href survives template escaping")

	doc := parse(t, body)
	var hrefs []string
	for _, a := range findAll(byID(t, doc, "contact-methods"), func(n *node) bool { return n.Data == "a" }) {
		hrefs = append(hrefs, attr(a, "href"))
	}
	assert.Contains(t, hrefs, "tel:+918595974773")
	assert.Contains(t, hrefs, "mailto:2021gaurav18@gmail.com")
}
