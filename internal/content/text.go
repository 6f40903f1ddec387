package content

var (
	Name     = "Gaurav Dhar Dwivedi"
	Initials = "GD"
	Title    = "Frontend Technical Lead & Cloud Engineer"
	Welcome  = "Welcome to my portfolio"

	HeroSummary = `13+ years building scalable, high-performance applications with React, Next.js, and AWS.
	Specialist in modern UI architecture, cloud deployments, and DevOps excellence.`

	AboutParagraphs = []string{
		`I'm a Senior Frontend & Cloud Engineer with 13+ years of hands-on experience building
		scalable, high-performance applications. My passion lies in crafting exceptional user
		experiences while architecting robust cloud-ready solutions.`,
		`Throughout my career, I've led teams in modernizing legacy systems, designing enterprise
		applications, and implementing DevOps best practices that improve deployment efficiency
		by up to 70%.`,
		`My expertise spans modern web technologies, cloud infrastructure, and performance
		optimization. I'm particularly focused on accessibility standards and sustainable
		engineering practices.`,
		`When I'm not coding, I'm exploring new technologies, contributing to open-source
		projects, and mentoring junior developers.`,
	}

	AboutTech = []string{"React", "Next.js", "TypeScript", "AWS", "Docker", "DevOps"}

	AboutBadge       = "Always Learning"
	AboutBadgeDetail = "Staying ahead of the curve"

	SkillsHeading    = "Skills & Expertise"
	SkillsSubheading = "Mastering modern technologies"

	ExperienceHeading    = "Professional Experience"
	ExperienceSubheading = "Journey through my career"

	ProjectsHeading    = "Major Projects"
	ProjectsSubheading = "Showcase of enterprise solutions"
	ProjectsFooter     = "Plus 100+ additional components modernized and deployed enterprise solutions"

	ContactHeading    = "Let's Connect"
	ContactSubheading = "Ready to build something amazing together?"
	ContactThanks     = "Thanks for reaching out! I'll get back to you soon."

	Email       = "2021gaurav18@gmail.com"
	GitHubURL   = "https://github.com/18gaurav2021"
	LinkedInURL = "https://linkedin.com"
)
