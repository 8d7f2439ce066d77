package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-backend-go/internal/services"
)

// registerCRUD wires the uniform list/add/update/delete routes for one
// collection. Reads are public; mutations run behind the guard middlewares.
func registerCRUD[T any, PT services.Record[T]](r chi.Router, col *services.Collection[T, PT], label string, guards ...func(http.Handler) http.Handler) {
	r.Get("/", handleList(col))
	r.Group(func(g chi.Router) {
		for _, guard := range guards {
			g.Use(guard)
		}
		g.Post("/", handleAdd(col, label))
		g.Put("/{id}", handleUpdate(col, label))
		g.Delete("/{id}", handleDelete(col, label))
	})
}

func handleList[T any, PT services.Record[T]](col *services.Collection[T, PT]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := col.List()
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteData(w, http.StatusOK, items)
	}
}

func handleAdd[T any, PT services.Record[T]](col *services.Collection[T, PT], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var candidate T
		if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid payload")
			return
		}
		record, err := col.Add(candidate)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteMessage(w, http.StatusOK, label+" added", record)
	}
}

func handleUpdate[T any, PT services.Record[T]](col *services.Collection[T, PT], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var candidate T
		if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid payload")
			return
		}
		record, err := col.Update(chi.URLParam(r, "id"), candidate)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteMessage(w, http.StatusOK, label+" updated", record)
	}
}

func handleDelete[T any, PT services.Record[T]](col *services.Collection[T, PT], label string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := col.Delete(chi.URLParam(r, "id"))
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		if !deleted {
			WriteError(w, http.StatusNotFound, label+" not found")
			return
		}
		WriteMessage(w, http.StatusOK, label+" deleted", nil)
	}
}
