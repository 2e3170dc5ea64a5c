package service

import (
	"fmt"
	"regexp"
	"strings"

	"portfolio-chat/internal/models"
)

// CompileKnowledge flattens the portfolio into grounding entries.
// Order is fixed: identity, contact, skills, hand-authored facts, projects, experience.
// Every project and every experience record yields exactly one entry.
func CompileKnowledge(p *models.Portfolio) *models.KnowledgeBase {
	entries := make([]models.KnowledgeEntry, 0, 3+len(p.Facts)+len(p.Projects)+len(p.Experience))

	entries = append(entries, identityEntry(p), contactEntry(p))
	if len(p.Skills) > 0 {
		entries = append(entries, skillsEntry(p.Skills))
	}
	entries = append(entries, p.Facts...)

	for _, pr := range p.Projects {
		entries = append(entries, projectEntry(pr))
	}
	for i, exp := range p.Experience {
		entries = append(entries, experienceEntry(i, exp))
	}

	return models.NewKnowledgeBase(entries)
}

func identityEntry(p *models.Portfolio) models.KnowledgeEntry {
	return models.KnowledgeEntry{
		ID:       "identity",
		Keywords: []string{"who are you", "about", "intro", "name", strings.ToLower(p.Personal.Name)},
		Content: fmt.Sprintf("Identity: You are %s.\nTagline: %s\nBio: %s\nLocation: %s\nCurrent Status: %s",
			p.Personal.Name, p.Personal.Tagline, p.Bio, p.Personal.Location, p.Status),
	}
}

func contactEntry(p *models.Portfolio) models.KnowledgeEntry {
	return models.KnowledgeEntry{
		ID:       "contact",
		Keywords: []string{"email", "contact", "mail", "reach", "linkedin", "socials", "address"},
		Content: fmt.Sprintf("Email: %s\nLinkedIn: %s\nLocation: %s",
			p.Personal.Email, p.Personal.LinkedIn, p.Personal.Location),
	}
}

func skillsEntry(categories []models.SkillCategory) models.KnowledgeEntry {
	var b strings.Builder
	b.WriteString("Skills Overview:")
	keywords := []string{"skills", "stack", "technologies"}
	for _, c := range categories {
		fmt.Fprintf(&b, "\n- %s: %s", c.Name, strings.Join(c.Items, ", "))
		keywords = append(keywords, strings.ToLower(c.Name))
	}
	return models.KnowledgeEntry{ID: "skills", Keywords: keywords, Content: b.String()}
}

func projectEntry(pr models.Project) models.KnowledgeEntry {
	keywords := []string{strings.ToLower(pr.Title), pr.Slug, "project", "work", "portfolio item"}
	for _, t := range pr.Tags {
		keywords = append(keywords, strings.ToLower(t))
	}

	content := fmt.Sprintf("PROJECT: %s\nTYPE: %s (%s)\nDESCRIPTION: %s\nDETAILS: %s\nTECH STACK: %s\nLINK: %s",
		pr.Title, pr.Role, pr.Year, pr.Description, pr.LongDescription,
		strings.Join(pr.Tags, ", "), ProjectLink(pr.Slug))

	return models.KnowledgeEntry{
		ID:       "project-" + pr.Slug,
		Keywords: keywords,
		Content:  strings.TrimSpace(content),
	}
}

func experienceEntry(index int, exp models.Experience) models.KnowledgeEntry {
	content := fmt.Sprintf("EXPERIENCE: %s\nROLE: %s\nPERIOD: %s\nDESCRIPTION: %s\nSKILLS: %s",
		exp.Title, exp.Role, exp.Period, exp.Description, strings.Join(exp.Skills, ", "))

	return models.KnowledgeEntry{
		ID: fmt.Sprintf("experience-%d", index),
		Keywords: []string{
			strings.ToLower(exp.Title), strings.ToLower(exp.Role),
			"experience", "job", "internship", "school", "education",
		},
		Content: strings.TrimSpace(content),
	}
}

// Conflict is a portfolio record that would lose its entry when compiled,
// because another record produces the same entry id.
type Conflict struct {
	ID     string
	Reason string
}

func (c Conflict) String() string {
	return c.ID + ": " + c.Reason
}

// CheckConflicts finds records that CompileKnowledge would merge: duplicate or
// empty project slugs, and facts whose id repeats another fact or a generated entry.
func CheckConflicts(p *models.Portfolio) []Conflict {
	var conflicts []Conflict

	generated := map[string]string{
		"identity": "generated identity entry",
		"contact":  "generated contact entry",
		"skills":   "generated skills entry",
	}
	for _, pr := range p.Projects {
		id := "project-" + pr.Slug
		switch {
		case pr.Slug == "":
			conflicts = append(conflicts, Conflict{ID: id, Reason: fmt.Sprintf("project %q has no slug", pr.Title)})
		case generated[id] != "":
			conflicts = append(conflicts, Conflict{ID: id, Reason: fmt.Sprintf("slug %q is used by more than one project", pr.Slug)})
		}
		generated[id] = fmt.Sprintf("entry for project %q", pr.Slug)
	}
	for i := range p.Experience {
		generated[fmt.Sprintf("experience-%d", i)] = "generated experience entry"
	}

	facts := make(map[string]struct{}, len(p.Facts))
	for _, f := range p.Facts {
		switch _, dup := facts[f.ID]; {
		case f.ID == "":
			conflicts = append(conflicts, Conflict{ID: f.ID, Reason: "fact has no id"})
		case dup:
			conflicts = append(conflicts, Conflict{ID: f.ID, Reason: "fact id is used more than once"})
		case generated[f.ID] != "":
			conflicts = append(conflicts, Conflict{ID: f.ID, Reason: "fact id collides with the " + generated[f.ID]})
		}
		facts[f.ID] = struct{}{}
	}

	return conflicts
}

// ProjectLink is the site-relative URL of a project page.
func ProjectLink(slug string) string {
	return "/project/" + slug
}

var projectLinkPattern = regexp.MustCompile(`\(/project/([A-Za-z0-9_-]+)\)`)

// DanglingReference is a project link whose slug matches no project.
type DanglingReference struct {
	Source string
	Slug   string
}

// CheckReferences reports project links in the persona and the corpus that
// would not resolve. Slugs are matched exactly.
func CheckReferences(kb *models.KnowledgeBase, persona string, projects []models.Project) []DanglingReference {
	known := make(map[string]struct{}, len(projects))
	for _, pr := range projects {
		known[pr.Slug] = struct{}{}
	}

	var dangling []DanglingReference
	scan := func(source, text string) {
		for _, m := range projectLinkPattern.FindAllStringSubmatch(text, -1) {
			if _, ok := known[m[1]]; !ok {
				dangling = append(dangling, DanglingReference{Source: source, Slug: m[1]})
			}
		}
	}

	scan("persona", persona)
	for _, e := range kb.Entries() {
		scan(e.ID, e.Content)
	}
	return dangling
}
