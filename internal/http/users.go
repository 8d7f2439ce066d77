package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"portfolio-backend-go/internal/models"
)

// The users collection keeps the original demo API shape: the id travels in
// the body on update and in the query string on delete.

func (s *Server) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.Content.Users.List()
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteData(w, http.StatusOK, users)
}

func (s *Server) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	added, err := s.Content.Users.Add(user)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteMessage(w, http.StatusOK, "User added", added)
}

func (s *Server) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if strings.TrimSpace(user.ID) == "" {
		WriteError(w, http.StatusBadRequest, "User id is required")
		return
	}
	updated, err := s.Content.Users.Update(user.ID, user)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteMessage(w, http.StatusOK, "User updated", updated)
}

func (s *Server) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if id == "" {
		WriteError(w, http.StatusBadRequest, "User id is required")
		return
	}
	deleted, err := s.Content.Users.Delete(id)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if !deleted {
		WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	WriteMessage(w, http.StatusOK, "User deleted", nil)
}
