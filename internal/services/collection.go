package services

import (
	"errors"
	"fmt"
	"time"

	"portfolio-backend-go/internal/store"
)

// Record is implemented by every collection item via pointer receivers.
type Record[T any] interface {
	*T
	GetID() string
	SetID(id string)
	Touch(now time.Time)
}

// Collection is the one CRUD service shared by all file-backed collections
// (skills, career, projects, social media, users, media assets).
type Collection[T any, PT Record[T]] struct {
	Store    *store.Store
	Name     string
	IDPrefix string
	Seed     func() []T
	// Preserve copies creation-date-like fields from the stored record into
	// the candidate during Update, so clients cannot rewrite them.
	Preserve func(next *T, prev T)
	// Derive normalizes server-owned fields on every Add/Update.
	Derive func(record *T)
}

func (c *Collection[T, PT]) seed() []T {
	if c.Seed != nil {
		return c.Seed()
	}
	return []T{}
}

// List returns the current snapshot, seeding the file on first access.
func (c *Collection[T, PT]) List() ([]T, error) {
	return store.Load(c.Store, c.Name, c.seed)
}

// Add assigns a fresh id, stamps the record and appends it. The candidate
// is validated before anything is read or written.
func (c *Collection[T, PT]) Add(candidate T) (T, error) {
	var zero T
	if err := ValidateRecord(&candidate); err != nil {
		return zero, err
	}
	now := time.Now()
	_, err := store.Update(c.Store, c.Name, c.seed, func(items *[]T) error {
		PT(&candidate).SetID(c.newID(*items, now))
		PT(&candidate).Touch(now)
		if c.Derive != nil {
			c.Derive(&candidate)
		}
		*items = append(*items, candidate)
		return nil
	})
	if err != nil {
		return zero, WrapError(err, "add "+c.Name)
	}
	return candidate, nil
}

// Update overwrites all mutable fields of the record with the given id.
// A missing id is a not-found outcome and leaves the file untouched.
func (c *Collection[T, PT]) Update(id string, candidate T) (T, error) {
	var zero T
	if err := ValidateRecord(&candidate); err != nil {
		return zero, err
	}
	now := time.Now()
	_, err := store.Update(c.Store, c.Name, c.seed, func(items *[]T) error {
		index := c.indexOf(*items, id)
		if index < 0 {
			return ErrNotFound(c.Name + " record not found")
		}
		PT(&candidate).SetID(id)
		if c.Preserve != nil {
			c.Preserve(&candidate, (*items)[index])
		}
		PT(&candidate).Touch(now)
		if c.Derive != nil {
			c.Derive(&candidate)
		}
		(*items)[index] = candidate
		return nil
	})
	if err != nil {
		return zero, err
	}
	return candidate, nil
}

// Delete removes the record with the given id. A missing id returns false
// without rewriting the file, every time.
func (c *Collection[T, PT]) Delete(id string) (bool, error) {
	_, err := store.Update(c.Store, c.Name, c.seed, func(items *[]T) error {
		index := c.indexOf(*items, id)
		if index < 0 {
			return ErrNotFound(c.Name + " record not found")
		}
		*items = append((*items)[:index], (*items)[index+1:]...)
		return nil
	})
	if err != nil {
		var serr ServiceError
		if errors.As(err, &serr) && serr.Status == 404 {
			return false, nil
		}
		return false, WrapError(err, "delete "+c.Name)
	}
	return true, nil
}

func (c *Collection[T, PT]) indexOf(items []T, id string) int {
	for i := range items {
		if PT(&items[i]).GetID() == id {
			return i
		}
	}
	return -1
}

// newID derives ids from the current time, bumping the suffix until the id
// is unused so two adds in the same millisecond stay distinct.
func (c *Collection[T, PT]) newID(items []T, now time.Time) string {
	millis := now.UnixMilli()
	for {
		id := fmt.Sprintf("%s-%d", c.IDPrefix, millis)
		if c.indexOf(items, id) < 0 {
			return id
		}
		millis++
	}
}
