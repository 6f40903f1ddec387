package sections

import (
	"time"

	"github.com/18gaurav2021/portfolio/internal/content"
	"github.com/18gaurav2021/portfolio/internal/reveal"
)

type ProjectsData struct {
	Heading    string
	Subheading string
	Projects   []content.Project
	Footer     string
	More       content.Link
}

func projectsSection() *Section {
	t := Timing{
		Threshold:    0.3,
		Stagger:      150 * time.Millisecond,
		ItemY:        20,
		ItemDuration: 600 * time.Millisecond,
		TrailerDelay: 400 * time.Millisecond,
	}
	projects := content.Projects()

	grid := t.container("grid")
	for i := range projects {
		grid.Append(t.item("proj-" + itoa(i)))
	}

	return &Section{
		ID:       "projects",
		Template: "projects",
		Options:  t.options(),
		seq:      reveal.NewSequencer(root(heading(), grid, t.trailer("cta", 20))),
		data: func(Env) any {
			return ProjectsData{
				Heading:    content.ProjectsHeading,
				Subheading: content.ProjectsSubheading,
				Projects:   projects,
				Footer:     content.ProjectsFooter,
				More:       content.Link{Name: "Explore More on GitHub", Href: content.GitHubURL},
			}
		},
	}
}
