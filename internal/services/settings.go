package services

import (
	"time"

	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/store"
)

// timeStampLayout is the human-readable stamp the settings document carries,
// unlike the RFC 3339 timestamps on collection records.
const timeStampLayout = "2006-01-02 15:04:05"

// SettingsService persists the admin site-structure singleton. Replace is
// whole-document: callers submit the complete, already-merged settings and
// the service stores exactly what it is given (page order included — it is
// not re-validated against the known section set).
type SettingsService struct {
	Store *store.Store
}

func (s *SettingsService) Get() (models.AdminSettings, error) {
	return store.Load(s.Store, "admin-settings", DefaultAdminSettings)
}

func (s *SettingsService) Replace(settings models.AdminSettings) (models.AdminSettings, error) {
	settings.LastUpdated = time.Now().Format(timeStampLayout)
	if err := store.Save(s.Store, "admin-settings", settings); err != nil {
		return models.AdminSettings{}, WrapError(err, "save admin settings")
	}
	return settings, nil
}

// DefaultAdminSettings is the seed document: one-page site, the five
// sections in their default order, scroll navigation, centered text over a
// background image, fixed area disabled on the middle grid cell.
func DefaultAdminSettings() models.AdminSettings {
	return models.AdminSettings{
		IsOnePageSite:   true,
		PageOrder:       []string{"Hero", "Skills", "Projects", "Career", "Contact"},
		NavigationStyle: "scroll",
		LayoutOptions: models.LayoutOptions{
			ImagePosition:     "background",
			TextPosition:      "center",
			GridMode:          false,
			FixedAreaEnabled:  false,
			FixedAreaPosition: 5,
		},
		SelectedTags: models.SelectedTags{
			SiteType:   []string{},
			Navigation: []string{},
			Layout:     []string{},
			PageOrder:  []string{},
		},
		LastUpdated: time.Now().Format(timeStampLayout),
	}
}
