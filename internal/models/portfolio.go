package models

// Portfolio is the raw profile data the knowledge base is compiled from.
type Portfolio struct {
	Personal   Personal         `yaml:"personal"`
	Bio        string           `yaml:"bio"`
	Status     string           `yaml:"status"`
	Skills     []SkillCategory  `yaml:"skills"`
	Facts      []KnowledgeEntry `yaml:"facts"`
	Projects   []Project        `yaml:"projects"`
	Experience []Experience     `yaml:"experience"`
	Links      []ExternalLink   `yaml:"links"`
}

type Personal struct {
	Name            string `yaml:"name"`
	Title           string `yaml:"title"`
	Tagline         string `yaml:"tagline"`
	Location        string `yaml:"location"`
	Email           string `yaml:"email"`
	LinkedIn        string `yaml:"linkedin"`
	ProudestProject string `yaml:"proudest_project"`
}

// ExternalLink is a name the assistant must always render as a link.
type ExternalLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type SkillCategory struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items"`
}

type Project struct {
	ID              string   `yaml:"id"`
	Slug            string   `yaml:"slug"`
	Title           string   `yaml:"title"`
	Description     string   `yaml:"description"`
	LongDescription string   `yaml:"long_description"`
	Role            string   `yaml:"role"`
	Year            string   `yaml:"year"`
	Tags            []string `yaml:"tags"`
}

type Experience struct {
	Title       string   `yaml:"title"`
	Role        string   `yaml:"role"`
	Period      string   `yaml:"period"`
	Description string   `yaml:"description"`
	Skills      []string `yaml:"skills"`
}

// ProjectBySlug looks a project up by its URL slug.
func (p *Portfolio) ProjectBySlug(slug string) (Project, bool) {
	for _, pr := range p.Projects {
		if pr.Slug == slug {
			return pr, true
		}
	}
	return Project{}, false
}
