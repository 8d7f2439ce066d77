package models

import "time"

// Hero is the singleton hero section shown at the top of the portfolio.
type Hero struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Text        string    `json:"text"`
	ImageURL    string    `json:"imageUrl"`
	Position    string    `json:"position"`
	AreaNumber  int       `json:"areaNumber"`
	LastUpdated time.Time `json:"lastUpdated"`
}

type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Proficiency int       `json:"proficiency" validate:"min=0,max=100"`
	Category    *string   `json:"category,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (s *Skill) GetID() string       { return s.ID }
func (s *Skill) SetID(id string)     { s.ID = id }
func (s *Skill) Touch(now time.Time) { s.LastUpdated = now }

// Career dates are free text ("Ocak 2022", "Devam Ediyor"), never parsed.
type Career struct {
	ID          string    `json:"id"`
	Company     string    `json:"company" validate:"required"`
	Position    string    `json:"position" validate:"required"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Description string    `json:"description"`
	LogoURL     string    `json:"logoUrl"`
	Location    string    `json:"location"`
	WorkType    string    `json:"workType"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (c *Career) GetID() string       { return c.ID }
func (c *Career) SetID(id string)     { c.ID = id }
func (c *Career) Touch(now time.Time) { c.LastUpdated = now }

type Project struct {
	ID           string    `json:"id"`
	Title        string    `json:"title" validate:"required"`
	Description  string    `json:"description"`
	ImageURL     string    `json:"imageUrl"`
	ProjectURL   string    `json:"projectUrl"`
	GithubURL    string    `json:"githubUrl"`
	Technologies []string  `json:"technologies"`
	CreatedDate  time.Time `json:"createdDate"`
	IsActive     bool      `json:"isActive"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

func (p *Project) GetID() string       { return p.ID }
func (p *Project) SetID(id string)     { p.ID = id }
func (p *Project) Touch(now time.Time) { p.LastUpdated = now }

// SocialAccount.Icon is always derived server-side from Platform; any
// client-supplied value is overwritten.
type SocialAccount struct {
	ID          string    `json:"id"`
	Platform    string    `json:"platform" validate:"required"`
	URL         string    `json:"url" validate:"required"`
	Icon        string    `json:"icon"`
	IsActive    bool      `json:"isActive"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (a *SocialAccount) GetID() string       { return a.ID }
func (a *SocialAccount) SetID(id string)     { a.ID = id }
func (a *SocialAccount) Touch(now time.Time) { a.LastUpdated = now }

// User is the demo collection kept alongside the portfolio content.
type User struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Age         int       `json:"age"`
	City        string    `json:"city"`
	CreatedDate time.Time `json:"createdDate"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (u *User) GetID() string       { return u.ID }
func (u *User) SetID(id string)     { u.ID = id }
func (u *User) Touch(now time.Time) { u.LastUpdated = now }

// MediaAsset records an uploaded file stored under the media directory.
type MediaAsset struct {
	ID          string    `json:"id"`
	Bucket      string    `json:"bucket"`
	StorageKey  string    `json:"storageKey"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	Sha256      string    `json:"sha256"`
	CreatedDate time.Time `json:"createdDate"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func (m *MediaAsset) GetID() string       { return m.ID }
func (m *MediaAsset) SetID(id string)     { m.ID = id }
func (m *MediaAsset) Touch(now time.Time) { m.LastUpdated = now }

type ContactChannel struct {
	Enabled bool   `json:"enabled"`
	Value   string `json:"value"`
}

type ContactDetails struct {
	Phone    ContactChannel `json:"phone"`
	Email    ContactChannel `json:"email"`
	Whatsapp bool           `json:"whatsapp"`
	Telegram bool           `json:"telegram"`
	Position string         `json:"position"`
}

type ContactForm struct {
	Enabled        bool     `json:"enabled"`
	RecipientEmail string   `json:"recipientEmail"`
	NameRequired   bool     `json:"nameRequired"`
	PhoneRequired  bool     `json:"phoneRequired"`
	ReasonOptions  []string `json:"reasonOptions"`
}

// ContactSection is the singleton contact block: reachable channels, the
// contact-form configuration and the social links. SocialMedia is filled in
// from the social collection on read and never stored in the contact file.
type ContactSection struct {
	Contact     ContactDetails  `json:"contact"`
	SocialMedia []SocialAccount `json:"socialMedia,omitempty"`
	ContactForm ContactForm     `json:"contactForm"`
	Location    string          `json:"location"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

type Theme struct {
	PrimaryColor    string    `json:"primaryColor"`
	SecondaryColor  string    `json:"secondaryColor"`
	BackgroundColor string    `json:"backgroundColor"`
	TextColor       string    `json:"textColor"`
	FontFamily      string    `json:"fontFamily"`
	DarkMode        bool      `json:"darkMode"`
	LastUpdated     time.Time `json:"lastUpdated"`
}

type LayoutOptions struct {
	ImagePosition     string `json:"imagePosition"`
	TextPosition      string `json:"textPosition"`
	GridMode          bool   `json:"gridMode"`
	FixedAreaEnabled  bool   `json:"fixedAreaEnabled"`
	FixedAreaPosition int    `json:"fixedAreaPosition"`
}

// SelectedTags flags which inline-editable regions each admin setting is
// understood to affect. Values are free-form labels, display-only.
type SelectedTags struct {
	SiteType   []string `json:"siteType"`
	Navigation []string `json:"navigation"`
	Layout     []string `json:"layout"`
	PageOrder  []string `json:"pageOrder"`
}

// Toggle flips a label in the named tag group: present labels are removed,
// absent ones appended. Unknown section ids are ignored.
func (s *SelectedTags) Toggle(section, label string) {
	groups := map[string]*[]string{
		"siteType":   &s.SiteType,
		"navigation": &s.Navigation,
		"layout":     &s.Layout,
		"pageOrder":  &s.PageOrder,
	}
	group, ok := groups[section]
	if !ok {
		return
	}
	for i, existing := range *group {
		if existing == label {
			*group = append((*group)[:i], (*group)[i+1:]...)
			return
		}
	}
	*group = append(*group, label)
}

// AdminSettings is the singleton site-structure document. LastUpdated is a
// human-readable "2006-01-02 15:04:05" string, unlike the record timestamps.
type AdminSettings struct {
	IsOnePageSite   bool          `json:"isOnePageSite"`
	PageOrder       []string      `json:"pageOrder"`
	NavigationStyle string        `json:"navigationStyle"`
	LayoutOptions   LayoutOptions `json:"layoutOptions"`
	SelectedTags    SelectedTags  `json:"selectedTags"`
	LastUpdated     string        `json:"lastUpdated"`
}

// AllContent is the aggregate served by GET /api/content.
type AllContent struct {
	Hero          Hero            `json:"hero"`
	Skills        []Skill         `json:"skills"`
	Projects      []Project       `json:"projects"`
	Career        []Career        `json:"career"`
	SocialMedia   []SocialAccount `json:"socialMedia"`
	Contact       ContactSection  `json:"contact"`
	Theme         Theme           `json:"theme"`
	AdminSettings AdminSettings   `json:"adminSettings"`
}
