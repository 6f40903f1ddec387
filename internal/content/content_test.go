package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkTargets(t *testing.T) {
	tests := []struct {
		href     string
		external bool
		target   string
		rel      string
	}{
		{href: "https://github.com/18gaurav2021", external: true, target: "_blank", rel: "noopener noreferrer"},
		{href: "http://example.com", external: true, target: "_blank", rel: "noopener noreferrer"},
		{href: "mailto:" + Email, target: "_self"},
		{href: "tel:+918595974773", target: "_self"},
		{href: "#", target: "_self"},
		{href: "#about", target: "_self"},
	}
	for _, tt := range tests {
		t.Run(tt.href, func(t *testing.T) {
			l := Link{Href: tt.href}
			assert.Equal(t, tt.external, l.External())
			assert.Equal(t, tt.target, l.Target())
			assert.Equal(t, tt.rel, l.Rel())
		})
	}
}

func TestLinkURL(t *testing.T) {
	tests := []struct {
		href string
		want string
	}{
		{href: "https://github.com/18gaurav2021", want: "https://github.com/18gaurav2021"},
		{href: "mailto:" + Email, want: "mailto:" + Email},
		{href: "tel:+918595974773", want: "tel:+918595974773"},
		{href: "#projects", want: "#projects"},
		{href: "#", want: "#"},
		{href: "javascript:alert(1)", want: "#"},
		{href: "", want: "#"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, string(Link{Href: tt.href}.URL()), tt.href)
	}
}

func TestLinkAnchor(t *testing.T) {
	id, ok := Link{Href: "#skills"}.Anchor()
	assert.True(t, ok)
	assert.Equal(t, "skills", id)

	_, ok = Link{Href: "#"}.Anchor()
	assert.False(t, ok)
	_, ok = Link{Href: GitHubURL}.Anchor()
	assert.False(t, ok)
}

func TestNavItemsAreAnchors(t *testing.T) {
	var ids []string
	for _, item := range NavItems() {
		id, ok := item.Anchor()
		require.True(t, ok, item.Href)
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"about", "skills", "experience", "projects", "contact"}, ids)

	footer := FooterLinks()
	assert.Len(t, footer, 4)
	for _, l := range footer {
		assert.NotEqual(t, "#contact", l.Href)
	}
	assert.Len(t, NavItems(), 5, "footer links must not shrink the menu")
}

func TestAccessorsReturnCopies(t *testing.T) {
	exp := Experiences()
	exp[0].Highlights[0] = "changed"
	exp[1].Role = "changed"
	assert.NotEqual(t, "changed", Experiences()[0].Highlights[0])
	assert.NotEqual(t, "changed", Experiences()[1].Role)

	cats := SkillCategories()
	cats[0].Skills[0] = "changed"
	assert.Equal(t, "React.js", SkillCategories()[0].Skills[0])

	p := Projects()
	p[0].Tech[0] = "changed"
	assert.Equal(t, "Next.js", Projects()[0].Tech[0])
}

func TestProjectTechOverflow(t *testing.T) {
	p := Project{Tech: []string{"a", "b", "c", "d", "e"}}
	assert.Equal(t, []string{"a", "b", "c"}, p.VisibleTech())
	assert.Equal(t, 2, p.HiddenTech())

	short := Project{Tech: []string{"a"}}
	assert.Equal(t, []string{"a"}, short.VisibleTech())
	assert.Zero(t, short.HiddenTech())
}

func TestTableSizes(t *testing.T) {
	assert.Len(t, Experiences(), 5)
	assert.Len(t, Projects(), 3)
	assert.Len(t, SkillCategories(), 3)
	assert.Len(t, ContactMethods(), 4)
	assert.Len(t, HeroStats(), 3)
	assert.Len(t, SkillStats(), 4)
	assert.Len(t, Paragraphs(), 4)
}
