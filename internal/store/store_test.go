package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func seedNotes() []note {
	return []note{{ID: "note-1", Text: "hello"}}
}

func TestLoadSeedsOnFirstAccess(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	seedCalls := 0
	seed := func() []note {
		seedCalls++
		return seedNotes()
	}

	first, err := Load(s, "notes", seed)
	require.NoError(t, err)
	assert.Equal(t, seedNotes(), first)
	assert.FileExists(t, filepath.Join(dir, "notes.json"))

	second, err := Load(s, "notes", seed)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, seedCalls, "existing file must not be reseeded")
}

func TestLoadIsIdempotent(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, Save(s, "notes", []note{{ID: "a"}, {ID: "b"}}))

	one, err := Load(s, "notes", seedNotes)
	require.NoError(t, err)
	two, err := Load(s, "notes", seedNotes)
	require.NoError(t, err)
	assert.Equal(t, one, two)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	in := []note{{ID: "note-9", Text: "röund trip"}}
	require.NoError(t, Save(s, "notes", in))

	out, err := Load(s, "notes", seedNotes)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveCreatesDirLazily(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s := New(dir)
	require.NoError(t, Save(s, "notes", seedNotes()))
	assert.FileExists(t, filepath.Join(dir, "notes.json"))
}

func TestSaveIsPrettyPrinted(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, Save(s, "notes", seedNotes()))

	raw, err := os.ReadFile(filepath.Join(dir, "notes.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "\n  ")
}

func TestLoadMalformedFileFailsLoudly(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	path := filepath.Join(dir, "notes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(s, "notes", seedNotes)
	require.Error(t, err)

	// The broken file must survive untouched, never silently reseeded.
	raw, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "{not json", string(raw))
}

func TestUpdateAppliesAndPersists(t *testing.T) {
	s := New(t.TempDir())
	updated, err := Update(s, "notes", seedNotes, func(items *[]note) error {
		*items = append(*items, note{ID: "note-2", Text: "more"})
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, updated, 2)

	loaded, err := Load(s, "notes", seedNotes)
	require.NoError(t, err)
	assert.Equal(t, updated, loaded)
}

func TestUpdateAbortsWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, Save(s, "notes", seedNotes()))
	before, err := os.ReadFile(filepath.Join(dir, "notes.json"))
	require.NoError(t, err)

	boom := errors.New("boom")
	_, err = Update(s, "notes", seedNotes, func(items *[]note) error {
		*items = nil
		return boom
	})
	assert.ErrorIs(t, err, boom)

	after, readErr := os.ReadFile(filepath.Join(dir, "notes.json"))
	require.NoError(t, readErr)
	assert.Equal(t, before, after, "a failed update must leave the file byte-for-byte unchanged")
}
