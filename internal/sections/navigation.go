package sections

import "github.com/18gaurav2021/portfolio/internal/content"

// Navigation is the fixed top bar. It is not reveal-animated; its only
// state is whether the mobile menu is open.
type Navigation struct {
	Brand  string
	Items  []content.Link
	Social []content.Link
	Open   bool
}

func NewNavigation(open bool) Navigation {
	return Navigation{
		Brand:  content.Initials,
		Items:  content.NavItems(),
		Social: content.SocialLinks(),
		Open:   open,
	}
}

// Toggled is the menu state after the toggle button is pressed.
func (n Navigation) Toggled() bool {
	return !n.Open
}
