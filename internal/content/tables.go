package content

import "slices"

var navItems = []Link{
	{Name: "About", Href: "#about"},
	{Name: "Skills", Href: "#skills"},
	{Name: "Experience", Href: "#experience"},
	{Name: "Projects", Href: "#projects"},
	{Name: "Contact", Href: "#contact"},
}

var socialLinks = []Link{
	{Name: "github", Href: GitHubURL},
	{Name: "linkedin", Href: LinkedInURL},
	{Name: "mail", Href: "mailto:" + Email},
}

var heroStats = []Stat{
	{Value: "13+", Label: "Years Experience"},
	{Value: "100+", Label: "Projects Delivered"},
	{Value: "10+", Label: "Enterprise Apps"},
}

var skillStats = []Stat{
	{Value: "40%", Label: "Perf Improvement"},
	{Value: "70%", Label: "Deployment Time Saved"},
	{Value: "100+", Label: "Components Modernized"},
	{Value: "95+", Label: "Accessibility Score"},
}

var skillCategories = []SkillCategory{
	{
		Title: "Frontend Engineering",
		Icon:  "⚡",
		Color: "from-blue-500 to-cyan-500",
		Skills: []string{
			"React.js", "Next.js", "TypeScript", "Tailwind CSS", "Storybook",
			"Performance Optimization", "Accessibility (WCAG/ADA)", "Component Architecture",
		},
	},
	{
		Title: "Cloud & DevOps",
		Icon:  "☁️",
		Color: "from-cyan-500 to-teal-500",
		Skills: []string{
			"AWS (EC2, S3, RDS, Lambda)", "Docker", "CI/CD Pipelines", "GitHub Actions",
			"Terraform", "Monitoring & Logging", "Infrastructure-as-Code", "Containerization",
		},
	},
	{
		Title: "Backend & Tools",
		Icon:  "🛠️",
		Color: "from-teal-500 to-green-500",
		Skills: []string{
			"NX Monorepo", "Redux/Zustand", "MSSQL", "MySQL", "RabbitMQ",
			"GraphQL", "REST APIs", "Git/GitLab",
		},
	},
}

var experiences = []Experience{
	{
		Role:    "Technical Lead – Frontend",
		Company: "Altudo Consultancy Services Pvt Ltd",
		Period:  "May 2025 – Present",
		Highlights: []string{
			"Leading UI engineering and cloud-ready development",
			"Architected scalable UI systems on AWS (EC2, S3, CloudFront)",
			"Implemented CI/CD pipelines via Jenkins & Azure DevOps",
			"Ensured WCAG/ADA compliance with 95+ accessibility score",
		},
	},
	{
		Role:    "Lead Next.js Engineer",
		Company: "Cerebra IT Services Pvt Ltd",
		Period:  "July 2024 – March 2025",
		Highlights: []string{
			"Delivered enterprise features using Next.js and Storybook",
			"Improved API rendering performance by 30%",
			"Developed cloud-ready modules for AWS environments",
			"Created reusable component library",
		},
	},
	{
		Role:    "Team Lead",
		Company: "Vipusti Solutions (CLA Global IVC)",
		Period:  "Aug 2021 – April 2024",
		Highlights: []string{
			"Led Next.js + NX Monorepo development for enterprise apps",
			"Integrated Docker, reducing setup time by 94%",
			"Designed performance-focused components",
			"Managed CI/CD via Azure DevOps",
		},
	},
	{
		Role:    "Senior Software Developer",
		Company: "Nativebyte LLP",
		Period:  "March 2016 – June 2021",
		Highlights: []string{
			"Built scalable React applications with RBAC",
			"Implemented RabbitMQ-based event-driven architecture",
			"Integrated Auth0 for secure authentication",
			"Worked with MSSQL and microservices",
		},
	},
	{
		Role:    "Software Engineer",
		Company: "SSD Trust",
		Period:  "March 2013 – March 2016",
		Highlights: []string{
			"Built applications with Html, css and JS",
			"Design with bootstrap and vanilla Css",
			"Integrated API for fetching data",
		},
	},
}

var projects = []Project{
	{
		Title:       "IPC Web Refresh & Audit",
		Description: "Led frontend team to rebuild legacy Sitecore components into modern micro frontends with accessibility compliance.",
		Tech:        []string{"Next.js", "Vue.js", "React.js", "Sitecore SXA", "Docker"},
		Role:        "Technical Lead",
		Year:        "2025",
	},
	{
		Title:       "Order Orchestration Platform",
		Description: "Delivered comprehensive order management system with logs, comments, and cancellation workflows.",
		Tech:        []string{"React", "Tailwind", "GraphQL", "AWS", "Next.js"},
		Role:        "Technical Lead",
		Year:        "2024-2025",
	},
	{
		Title:       "Enterprise UI Solutions",
		Description: "Built multiple scalable UI solutions for major enterprises with performance optimization and cloud integration.",
		Tech:        []string{"React", "Next.js", "NX", "Storybook", "Azure DevOps"},
		Role:        "Senior Developer",
		Year:        "2019-2024",
	},
}

var contactMethods = []ContactMethod{
	{Icon: "mail", Value: Email, Link: Link{Name: "Email", Href: "mailto:" + Email}},
	{Icon: "phone", Value: "+91 8595974773", Link: Link{Name: "Phone", Href: "tel:+918595974773"}},
	{Icon: "map-pin", Value: "India", Link: Link{Name: "Location", Href: "#"}},
	{Icon: "github", Value: "github.com/18gaurav2021", Link: Link{Name: "GitHub", Href: GitHubURL}},
}

// NavItems is the menu, in display order.
func NavItems() []Link { return slices.Clone(navItems) }

// FooterLinks is the footer's quick-link list: the menu without Contact.
func FooterLinks() []Link {
	return slices.DeleteFunc(NavItems(), func(l Link) bool { return l.Href == "#contact" })
}

func SocialLinks() []Link { return slices.Clone(socialLinks) }

func HeroStats() []Stat { return slices.Clone(heroStats) }

func SkillStats() []Stat { return slices.Clone(skillStats) }

func SkillCategories() []SkillCategory {
	out := slices.Clone(skillCategories)
	for i := range out {
		out[i].Skills = slices.Clone(out[i].Skills)
	}
	return out
}

func Experiences() []Experience {
	out := slices.Clone(experiences)
	for i := range out {
		out[i].Highlights = slices.Clone(out[i].Highlights)
	}
	return out
}

func Projects() []Project {
	out := slices.Clone(projects)
	for i := range out {
		out[i].Tech = slices.Clone(out[i].Tech)
	}
	return out
}

func ContactMethods() []ContactMethod { return slices.Clone(contactMethods) }

// Paragraphs returns the about-me copy.
func Paragraphs() []string { return slices.Clone(AboutParagraphs) }

func Tech() []string { return slices.Clone(AboutTech) }
