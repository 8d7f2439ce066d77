package services

import (
	"sort"
	"strings"
	"time"

	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/store"
)

// ContentService owns every portfolio collection and singleton document.
// Each accessor re-reads its backing file, so the files stay the sole
// source of truth between requests.
type ContentService struct {
	Store    *store.Store
	Skills   *Collection[models.Skill, *models.Skill]
	Career   *Collection[models.Career, *models.Career]
	Projects *Collection[models.Project, *models.Project]
	Social   *Collection[models.SocialAccount, *models.SocialAccount]
	Users    *Collection[models.User, *models.User]
	Settings *SettingsService
}

func NewContentService(st *store.Store) *ContentService {
	return &ContentService{
		Store: st,
		Skills: &Collection[models.Skill, *models.Skill]{
			Store:    st,
			Name:     "skills",
			IDPrefix: "skill",
			Seed:     seedSkills,
		},
		Career: &Collection[models.Career, *models.Career]{
			Store:    st,
			Name:     "career",
			IDPrefix: "career",
			Seed:     seedCareer,
		},
		Projects: &Collection[models.Project, *models.Project]{
			Store:    st,
			Name:     "projects",
			IDPrefix: "project",
			Seed:     seedProjects,
			Preserve: func(next *models.Project, prev models.Project) {
				next.CreatedDate = prev.CreatedDate
			},
			Derive: func(project *models.Project) {
				if project.CreatedDate.IsZero() {
					project.CreatedDate = time.Now()
				}
			},
		},
		Social: &Collection[models.SocialAccount, *models.SocialAccount]{
			Store:    st,
			Name:     "social-media",
			IDPrefix: "social",
			Derive:   DeriveSocialIcon,
		},
		Users: &Collection[models.User, *models.User]{
			Store:    st,
			Name:     "users",
			IDPrefix: "user",
			Preserve: func(next *models.User, prev models.User) {
				next.CreatedDate = prev.CreatedDate
			},
			Derive: func(user *models.User) {
				if user.CreatedDate.IsZero() {
					user.CreatedDate = time.Now()
				}
			},
		},
		Settings: &SettingsService{Store: st},
	}
}

// GetHero loads the hero singleton, seeding defaults on first access.
func (c *ContentService) GetHero() (models.Hero, error) {
	return store.Load(c.Store, "hero", seedHero)
}

// SaveHero replaces the hero document in full and stamps it.
func (c *ContentService) SaveHero(hero models.Hero) (models.Hero, error) {
	if err := ValidateRecord(&hero); err != nil {
		return models.Hero{}, err
	}
	if strings.TrimSpace(hero.ID) == "" {
		hero.ID = "hero-1"
	}
	hero.LastUpdated = time.Now()
	if err := store.Save(c.Store, "hero", hero); err != nil {
		return models.Hero{}, WrapError(err, "save hero")
	}
	return hero, nil
}

// GetContact composes the contact view: the stored contact document plus the
// current social accounts.
func (c *ContentService) GetContact() (models.ContactSection, error) {
	contact, err := store.Load(c.Store, "contact", seedContact)
	if err != nil {
		return models.ContactSection{}, err
	}
	contact.SocialMedia, err = c.Social.List()
	if err != nil {
		return models.ContactSection{}, err
	}
	return contact, nil
}

// SaveContact persists the contact document. Social accounts are managed
// through their own collection, so any submitted accounts are dropped here.
func (c *ContentService) SaveContact(contact models.ContactSection) (models.ContactSection, error) {
	contact.SocialMedia = nil
	contact.LastUpdated = time.Now()
	if err := store.Save(c.Store, "contact", contact); err != nil {
		return models.ContactSection{}, WrapError(err, "save contact")
	}
	contact.SocialMedia, _ = c.Social.List()
	return contact, nil
}

func (c *ContentService) GetTheme() (models.Theme, error) {
	return store.Load(c.Store, "theme", seedTheme)
}

func (c *ContentService) SaveTheme(theme models.Theme) (models.Theme, error) {
	theme.LastUpdated = time.Now()
	if err := store.Save(c.Store, "theme", theme); err != nil {
		return models.Theme{}, WrapError(err, "save theme")
	}
	return theme, nil
}

// GetAll assembles the full content document. Each sub-fetch reads its own
// file independently; any failure fails the whole call.
func (c *ContentService) GetAll() (models.AllContent, error) {
	var all models.AllContent
	var err error
	if all.Hero, err = c.GetHero(); err != nil {
		return models.AllContent{}, err
	}
	if all.Skills, err = c.Skills.List(); err != nil {
		return models.AllContent{}, err
	}
	if all.Projects, err = c.Projects.List(); err != nil {
		return models.AllContent{}, err
	}
	if all.Career, err = c.Career.List(); err != nil {
		return models.AllContent{}, err
	}
	if all.SocialMedia, err = c.Social.List(); err != nil {
		return models.AllContent{}, err
	}
	// The aggregate already carries socialMedia at the top level, so the
	// contact block stays as stored, without the composed accounts.
	if all.Contact, err = store.Load(c.Store, "contact", seedContact); err != nil {
		return models.AllContent{}, err
	}
	if all.Theme, err = c.GetTheme(); err != nil {
		return models.AllContent{}, err
	}
	if all.AdminSettings, err = c.Settings.Get(); err != nil {
		return models.AllContent{}, err
	}
	return all, nil
}

// Cities returns the distinct, sorted city names across the user collection.
func (c *ContentService) Cities() ([]string, error) {
	users, err := c.Users.List()
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	cities := []string{}
	for _, user := range users {
		city := strings.TrimSpace(user.City)
		if city == "" || seen[city] {
			continue
		}
		seen[city] = true
		cities = append(cities, city)
	}
	sort.Strings(cities)
	return cities, nil
}

func seedHero() models.Hero {
	return models.Hero{
		ID:          "hero-1",
		Title:       "Merhaba, Ben John Doe",
		Text:        "Full Stack Developer ve UI/UX tasarımcısıyım. Modern web teknolojileri ile kullanıcı dostu çözümler geliştiriyorum.",
		ImageURL:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop&crop=face",
		Position:    "left",
		AreaNumber:  1,
		LastUpdated: time.Now(),
	}
}

func seedSkills() []models.Skill {
	now := time.Now()
	frontend, backend, language, database := "Frontend", "Backend", "Language", "Database"
	return []models.Skill{
		{ID: "skill-1", Name: "React", Proficiency: 90, Category: &frontend, LastUpdated: now},
		{ID: "skill-2", Name: "Node.js", Proficiency: 85, Category: &backend, LastUpdated: now},
		{ID: "skill-3", Name: "TypeScript", Proficiency: 88, Category: &language, LastUpdated: now},
		{ID: "skill-4", Name: "MongoDB", Proficiency: 80, Category: &database, LastUpdated: now},
	}
}

func seedCareer() []models.Career {
	return []models.Career{
		{
			ID:          "career-1",
			Company:     "TechCorp A.Ş.",
			Position:    "Senior Frontend Developer",
			StartDate:   "Ocak 2022",
			EndDate:     "Devam Ediyor",
			Description: "React, TypeScript ve Next.js kullanarak modern web uygulamaları geliştiriyorum.",
			LogoURL:     "https://via.placeholder.com/60x60/4F46E5/FFFFFF?text=TC",
			Location:    "İstanbul",
			WorkType:    "Tam Zamanlı",
			LastUpdated: time.Now(),
		},
	}
}

func seedProjects() []models.Project {
	now := time.Now()
	return []models.Project{
		{
			ID:           "project-1",
			Title:        "E-Ticaret Platformu",
			Description:  "Modern bir e-ticaret uygulaması",
			ImageURL:     "/images/project1.jpg",
			Technologies: []string{"React", "Node.js", "MongoDB"},
			CreatedDate:  now.AddDate(0, -3, 0),
			IsActive:     true,
			LastUpdated:  now,
		},
	}
}

func seedContact() models.ContactSection {
	return models.ContactSection{
		Contact: models.ContactDetails{
			Phone:    models.ContactChannel{Enabled: true, Value: "+90 555 123 45 67"},
			Email:    models.ContactChannel{Enabled: true, Value: "john@example.com"},
			Position: "left",
		},
		ContactForm: models.ContactForm{
			Enabled:       true,
			NameRequired:  true,
			ReasonOptions: []string{},
		},
		Location:    "İstanbul, Türkiye",
		LastUpdated: time.Now(),
	}
}

func seedTheme() models.Theme {
	return models.Theme{
		PrimaryColor:    "#007bff",
		SecondaryColor:  "#6c757d",
		BackgroundColor: "#ffffff",
		TextColor:       "#333333",
		FontFamily:      "Inter, sans-serif",
		DarkMode:        false,
		LastUpdated:     time.Now(),
	}
}
