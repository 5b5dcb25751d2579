// ABOUTME: Static reference data for skills and contact types
// ABOUTME: Immutable lookup tables; matching is case-insensitive for skills, exact for contacts
package catalog

import (
	"strings"

	"github.com/Jeonsowon/Portfolio-Project/models"
)

// MaxSuggestions caps the autocomplete suggestion list.
const MaxSuggestions = 5

const devicon = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"
const simpleicons = "https://cdn.jsdelivr.net/gh/simple-icons/simple-icons/icons/"

// Skills is the devicon-backed skill catalog. Order is display order for
// autocomplete suggestions.
var Skills = []models.Skill{
	// Languages
	{Name: "C", Icon: devicon + "c/c-original.svg"},
	{Name: "C++", Icon: devicon + "cplusplus/cplusplus-original.svg"},
	{Name: "C#", Icon: devicon + "csharp/csharp-original.svg"},
	{Name: "Java", Icon: devicon + "java/java-original.svg"},
	{Name: "Python", Icon: devicon + "python/python-original.svg"},
	{Name: "Go", Icon: devicon + "go/go-original.svg"},
	{Name: "Rust", Icon: devicon + "rust/rust-plain.svg"},
	{Name: "Kotlin", Icon: devicon + "kotlin/kotlin-original.svg"},
	{Name: "PHP", Icon: devicon + "php/php-original.svg"},
	{Name: "Ruby", Icon: devicon + "ruby/ruby-original.svg"},
	// Frontend
	{Name: "HTML5", Icon: devicon + "html5/html5-original.svg"},
	{Name: "CSS3", Icon: devicon + "css3/css3-original.svg"},
	{Name: "JavaScript", Icon: devicon + "javascript/javascript-original.svg"},
	{Name: "TypeScript", Icon: devicon + "typescript/typescript-original.svg"},
	{Name: "React", Icon: devicon + "react/react-original.svg"},
	{Name: "Next.js", Icon: devicon + "nextjs/nextjs-original.svg"},
	{Name: "Vue.js", Icon: devicon + "vuejs/vuejs-original.svg"},
	{Name: "Angular", Icon: devicon + "angularjs/angularjs-original.svg"},
	{Name: "TailwindCSS", Icon: devicon + "tailwindcss/tailwindcss-original.svg"},
	{Name: "Bootstrap", Icon: devicon + "bootstrap/bootstrap-original.svg"},
	// Backend
	{Name: "Node.js", Icon: devicon + "nodejs/nodejs-original.svg"},
	{Name: "Express", Icon: devicon + "express/express-original.svg"},
	{Name: "Spring", Icon: devicon + "spring/spring-original.svg"},
	{Name: "Django", Icon: devicon + "django/django-plain.svg"},
	{Name: "Flask", Icon: devicon + "flask/flask-original.svg"},
	{Name: "FastAPI", Icon: devicon + "fastapi/fastapi-original.svg"},
	{Name: "Ruby on Rails", Icon: devicon + "rails/rails-original-wordmark.svg"},
	// Mobile
	{Name: "React Native", Icon: devicon + "react/react-original.svg"},
	{Name: "Flutter", Icon: devicon + "flutter/flutter-original.svg"},
	{Name: "Android", Icon: devicon + "android/android-original.svg"},
	{Name: "Swift", Icon: devicon + "swift/swift-original.svg"},
	// Database
	{Name: "MySQL", Icon: devicon + "mysql/mysql-original.svg"},
	{Name: "PostgreSQL", Icon: devicon + "postgresql/postgresql-original.svg"},
	{Name: "MongoDB", Icon: devicon + "mongodb/mongodb-original.svg"},
	{Name: "SQLite", Icon: devicon + "sqlite/sqlite-original.svg"},
	{Name: "Redis", Icon: devicon + "redis/redis-original.svg"},
	// DevOps / Cloud
	{Name: "Docker", Icon: devicon + "docker/docker-original.svg"},
	{Name: "Kubernetes", Icon: devicon + "kubernetes/kubernetes-plain.svg"},
	{Name: "AWS", Icon: devicon + "amazonwebservices/amazonwebservices-original-wordmark.svg"},
	{Name: "Azure", Icon: devicon + "azure/azure-original.svg"},
	{Name: "Google Cloud", Icon: devicon + "googlecloud/googlecloud-original.svg"},
	{Name: "Firebase", Icon: devicon + "firebase/firebase-plain.svg"},
	{Name: "Nginx", Icon: devicon + "nginx/nginx-original.svg"},
	// Tools
	{Name: "Git", Icon: devicon + "git/git-original.svg"},
	{Name: "GitHub", Icon: devicon + "github/github-original.svg"},
	{Name: "Jira", Icon: devicon + "jira/jira-original.svg"},
	{Name: "Figma", Icon: devicon + "figma/figma-original.svg"},
	{Name: "Linux", Icon: devicon + "linux/linux-original.svg"},
	{Name: "VS Code", Icon: devicon + "vscode/vscode-original.svg"},
}

// ContactOption describes one entry of the contact-type catalog.
type ContactOption struct {
	Type  string
	Label string
	Icon  string
}

var ContactOptions = []ContactOption{
	{Type: models.ContactEmail, Label: "Email", Icon: simpleicons + "maildotru.svg"},
	{Type: models.ContactGitHub, Label: "GitHub", Icon: devicon + "github/github-original.svg"},
	{Type: models.ContactBlog, Label: "Blog", Icon: simpleicons + "bloglovin.svg"},
	{Type: models.ContactNotion, Label: "Notion", Icon: simpleicons + "notion.svg"},
	{Type: models.ContactLinkedIn, Label: "LinkedIn", Icon: devicon + "linkedin/linkedin-plain.svg"},
	{Type: models.ContactVelog, Label: "Velog", Icon: simpleicons + "velog.svg"},
	{Type: models.ContactInstagram, Label: "Instagram", Icon: simpleicons + "instagram.svg"},
	{Type: models.ContactEtc, Label: "Etc", Icon: "https://cdn.jsdelivr.net/npm/remixicon/icons/System/add-line.svg"},
}

// LookupSkill finds a catalog skill by case-insensitive exact name match.
func LookupSkill(name string) (models.Skill, bool) {
	for _, s := range Skills {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return models.Skill{}, false
}

// ResolveSkill turns free-text input into a skill entry: the canonical
// catalog entry on a match, otherwise the trimmed input with no icon.
func ResolveSkill(input string) models.Skill {
	input = strings.TrimSpace(input)
	if s, ok := LookupSkill(input); ok {
		return s
	}
	return models.Skill{Name: input}
}

// FilterSkills returns catalog entries whose name contains the query,
// case-insensitively, capped at MaxSuggestions. An empty query yields nil.
func FilterSkills(query string) []models.Skill {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	lower := strings.ToLower(query)
	var out []models.Skill
	for _, s := range Skills {
		if strings.Contains(strings.ToLower(s.Name), lower) {
			out = append(out, s)
			if len(out) == MaxSuggestions {
				break
			}
		}
	}
	return out
}

// ContactIcon returns the icon URL for a contact type, or "" when the
// type has no catalog entry.
func ContactIcon(contactType string) string {
	for _, o := range ContactOptions {
		if o.Type == contactType {
			return o.Icon
		}
	}
	return ""
}

// ContactLabel returns the display label for a contact type, falling back
// to the raw type string.
func ContactLabel(contactType string) string {
	for _, o := range ContactOptions {
		if o.Type == contactType {
			return o.Label
		}
	}
	return contactType
}
