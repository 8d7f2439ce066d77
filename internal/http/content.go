package httpapi

import (
	"encoding/json"
	"net/http"

	"portfolio-backend-go/internal/models"
)

func (s *Server) GetAllContent(w http.ResponseWriter, r *http.Request) {
	all, err := s.Content.GetAll()
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, all)
}

func (s *Server) GetHero(w http.ResponseWriter, r *http.Request) {
	hero, err := s.Content.GetHero()
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, hero)
}

func (s *Server) UpdateHero(w http.ResponseWriter, r *http.Request) {
	var hero models.Hero
	if err := json.NewDecoder(r.Body).Decode(&hero); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	saved, err := s.Content.SaveHero(hero)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteMessage(w, http.StatusOK, "Hero updated", saved)
}

func (s *Server) GetContact(w http.ResponseWriter, r *http.Request) {
	contact, err := s.Content.GetContact()
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, contact)
}

func (s *Server) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var contact models.ContactSection
	if err := json.NewDecoder(r.Body).Decode(&contact); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	saved, err := s.Content.SaveContact(contact)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteMessage(w, http.StatusOK, "Contact updated", saved)
}

func (s *Server) GetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.Content.GetTheme()
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, theme)
}

func (s *Server) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var theme models.Theme
	if err := json.NewDecoder(r.Body).Decode(&theme); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	saved, err := s.Content.SaveTheme(theme)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteMessage(w, http.StatusOK, "Theme updated", saved)
}

func (s *Server) GetAdminSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.Content.Settings.Get()
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, settings)
}

// UpdateAdminSettings replaces the whole settings document. There is no
// partial merge: the client submits the complete document it wants stored.
func (s *Server) UpdateAdminSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.AdminSettings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	saved, err := s.Content.Settings.Replace(settings)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteMessage(w, http.StatusOK, "Settings updated", saved)
}

func (s *Server) GetCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.Content.Cities()
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, cities)
}
