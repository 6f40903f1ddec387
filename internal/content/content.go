// Package content holds the static tables every section renders. Records
// have no identity beyond their position and are never mutated; accessors
// hand out copies.
package content

import (
	"html/template"
	"slices"
	"strings"
)

// Stat is a headline number with a caption.
type Stat struct {
	Value string
	Label string
}

// Link is an anchor on the page or an outbound URL.
type Link struct {
	Name string
	Href string
}

// External reports whether the link leaves the site and should open in a
// new browsing context.
func (l Link) External() bool {
	return strings.HasPrefix(l.Href, "http://") || strings.HasPrefix(l.Href, "https://")
}

// Target is the anchor target attribute for the link.
func (l Link) Target() string {
	if l.External() {
		return "_blank"
	}
	return "_self"
}

// Rel is the anchor rel attribute for the link.
func (l Link) Rel() string {
	if l.External() {
		return "noopener noreferrer"
	}
	return ""
}

// linkSchemes are the href forms a Link may render as-is.
var linkSchemes = []string{"http://", "https://", "mailto:", "tel:", "#"}

// URL is Href marked safe for an href attribute. html/template only trusts
// http, https and mailto on its own, so tel: links would otherwise be
// rewritten. Anything outside linkSchemes renders as "#".
func (l Link) URL() template.URL {
	for _, prefix := range linkSchemes {
		if strings.HasPrefix(l.Href, prefix) {
			return template.URL(l.Href)
		}
	}
	return "#"
}

// Anchor returns the in-page id the link points at, if any.
func (l Link) Anchor() (string, bool) {
	id, ok := strings.CutPrefix(l.Href, "#")
	return id, ok && id != ""
}

type SkillCategory struct {
	Title  string
	Icon   string
	Color  string
	Skills []string
}

type Experience struct {
	Role       string
	Company    string
	Period     string
	Highlights []string
}

type Project struct {
	Title       string
	Description string
	Tech        []string
	Role        string
	Year        string
}

// VisibleTechLimit is how many tech tags a project card shows before
// collapsing the rest into a "+N" badge.
const VisibleTechLimit = 3

// VisibleTech returns the tags shown on the card.
func (p Project) VisibleTech() []string {
	if len(p.Tech) <= VisibleTechLimit {
		return slices.Clone(p.Tech)
	}
	return slices.Clone(p.Tech[:VisibleTechLimit])
}

// HiddenTech is the number of tags folded into the overflow badge.
func (p Project) HiddenTech() int {
	return max(0, len(p.Tech)-VisibleTechLimit)
}

// ContactMethod is a labelled way to reach out. The embedded Link's Name
// is the label.
type ContactMethod struct {
	Icon  string
	Value string
	Link
}
