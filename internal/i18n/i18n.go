// Package i18n holds the static text of the site in its two locales.
package i18n

import "strings"

type Lang string

const (
	English    Lang = "en"
	Indonesian Lang = "id"

	Default = Indonesian
)

// Destinations of the quick-access cards and the commission contact step.
// They are the same in every locale.
const (
	RepositoryURL = "https://khaliq-repos.pages.dev"
	ResumeURL     = "https://bias-resume.pages.dev"
	WhatsAppURL   = "https://wa.me/6282258901971"
	ContactEmail  = "biasfajar3@gmail.com"
	EmailURL      = "mailto:" + ContactEmail
)

func Parse(raw string) (Lang, bool) {
	switch Lang(strings.ToLower(strings.TrimSpace(raw))) {
	case English:
		return English, true
	case Indonesian:
		return Indonesian, true
	default:
		return "", false
	}
}

// For returns the bundle of lang, falling back to the default locale.
func For(lang Lang) Bundle {
	if b, ok := bundles[lang]; ok {
		return b
	}
	return bundles[Default]
}

func Supported() []Lang {
	return []Lang{English, Indonesian}
}

type Bundle struct {
	Nav      Nav      `json:"nav"`
	Hero     Hero     `json:"hero"`
	Featured Featured `json:"featured"`
	Catalog  Catalog  `json:"catalog"`
	Services Services `json:"services"`
	Workflow Workflow `json:"workflow"`
	Toolkit  Toolkit  `json:"toolkit"`
	Admin    Admin    `json:"admin"`
}

type Nav struct {
	Home      string `json:"home"`
	Catalog   string `json:"catalog"`
	Services  string `json:"services"`
	Admin     string `json:"admin"`
	MenuTitle string `json:"menu_title"`
}

type Hero struct {
	Badge       string `json:"badge"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
	CTACatalog  string `json:"cta_catalog"`
	CTAServices string `json:"cta_services"`
}

type Featured struct {
	Label       string `json:"label"`
	IntroTitle  string `json:"intro_title"`
	IntroDesc   string `json:"intro_desc"`
	RepoBadge   string `json:"repo_badge"`
	RepoTitle   string `json:"repo_title"`
	RepoDesc    string `json:"repo_desc"`
	RepoCTA     string `json:"repo_cta"`
	RepoURL     string `json:"repo_url"`
	ResumeBadge string `json:"resume_badge"`
	ResumeTitle string `json:"resume_title"`
	ResumeDesc  string `json:"resume_desc"`
	ResumeCTA   string `json:"resume_cta"`
	ResumeURL   string `json:"resume_url"`
}

type Catalog struct {
	Title       string `json:"title"`
	Empty       string `json:"empty"`
	EmptyAdmin  string `json:"empty_admin"`
	ViewProject string `json:"view_project"`
	ViewResume  string `json:"view_resume"`
}

type Feature struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
}

type Services struct {
	Title               string             `json:"title"`
	Subtitle            string             `json:"subtitle"`
	Desc                string             `json:"desc"`
	CTA                 string             `json:"cta"`
	ConsultHint         string             `json:"consult_hint"`
	ContactOptionsTitle string             `json:"contact_options_title"`
	ContactWA           string             `json:"contact_wa"`
	ContactEmail        string             `json:"contact_email"`
	WhatsAppURL         string             `json:"whatsapp_url"`
	EmailURL            string             `json:"email_url"`
	Close               string             `json:"close"`
	Features            map[string]Feature `json:"features"`
}

type Workflow struct {
	Badge string             `json:"badge"`
	Title string             `json:"title"`
	Desc  string             `json:"desc"`
	Steps map[string]Feature `json:"steps"`
}

type Toolkit struct {
	Title string `json:"title"`
}

type Admin struct {
	LoginTitle string `json:"login_title"`
	LoginDesc  string `json:"login_desc"`
	Logout     string `json:"logout"`
	Welcome    string `json:"welcome"`
	Error      string `json:"error"`
	AddProject string `json:"add_project"`
}

// WorkflowOrder is the display order of Workflow.Steps.
var WorkflowOrder = []string{"consult", "design", "dev", "launch"}

// ServiceOrder is the display order of Services.Features.
var ServiceOrder = []string{"web", "sketch"}

// TechStack is the marquee list; names are not translated.
var TechStack = []string{
	"React 19", "TypeScript", "Tailwind", "Motion", "Supabase", "Cloudflare",
	"Figma", "Git", "Vite", "Responsive", "SEO", "Modern Web",
}
