package services

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/store"
)

func newSkillCollection(t *testing.T) (*Collection[models.Skill, *models.Skill], string) {
	t.Helper()
	dir := t.TempDir()
	col := &Collection[models.Skill, *models.Skill]{
		Store:    store.New(dir),
		Name:     "skills",
		IDPrefix: "skill",
	}
	return col, dir
}

func TestAddAssignsUniqueIDs(t *testing.T) {
	col, _ := newSkillCollection(t)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		added, err := col.Add(models.Skill{Name: "Go", Proficiency: 95})
		require.NoError(t, err)
		assert.NotEmpty(t, added.ID)
		assert.False(t, seen[added.ID], "id %s assigned twice", added.ID)
		seen[added.ID] = true
	}

	items, err := col.List()
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestAddStampsAndPersists(t *testing.T) {
	col, _ := newSkillCollection(t)

	added, err := col.Add(models.Skill{Name: "Go", Proficiency: 95})
	require.NoError(t, err)
	assert.Equal(t, "Go", added.Name)
	assert.Equal(t, 95, added.Proficiency)
	assert.False(t, added.LastUpdated.IsZero())

	items, err := col.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, added.ID, items[0].ID)
	assert.Equal(t, "Go", items[0].Name)
}

func TestAddRejectsInvalidBeforePersisting(t *testing.T) {
	col, dir := newSkillCollection(t)

	_, err := col.Add(models.Skill{Proficiency: 50})
	require.Error(t, err)
	serr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 400, serr.Status)

	// Rejected before any read or write: not even the seed file exists.
	assert.NoFileExists(t, filepath.Join(dir, "skills.json"))

	_, err = col.Add(models.Skill{Name: "Go", Proficiency: 120})
	require.Error(t, err)
}

func TestUpdatePreservesIdentityFields(t *testing.T) {
	dir := t.TempDir()
	col := &Collection[models.Project, *models.Project]{
		Store:    store.New(dir),
		Name:     "projects",
		IDPrefix: "project",
		Preserve: func(next *models.Project, prev models.Project) {
			next.CreatedDate = prev.CreatedDate
		},
	}

	added, err := col.Add(models.Project{Title: "Original", CreatedDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	updated, err := col.Update(added.ID, models.Project{
		ID:          "forged-id",
		Title:       "Renamed",
		CreatedDate: time.Date(2030, 6, 6, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, added.ID, updated.ID)
	assert.True(t, added.CreatedDate.Equal(updated.CreatedDate))
	assert.Equal(t, "Renamed", updated.Title)
	assert.True(t, updated.LastUpdated.After(added.LastUpdated) || updated.LastUpdated.Equal(added.LastUpdated))
}

func TestUpdateMissingIDLeavesFileUntouched(t *testing.T) {
	col, dir := newSkillCollection(t)
	_, err := col.Add(models.Skill{Name: "Go", Proficiency: 95})
	require.NoError(t, err)

	before, err := os.ReadFile(filepath.Join(dir, "skills.json"))
	require.NoError(t, err)

	_, err = col.Update("missing-id", models.Skill{Name: "Rust", Proficiency: 80})
	require.Error(t, err)
	serr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 404, serr.Status)

	after, err := os.ReadFile(filepath.Join(dir, "skills.json"))
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteOutcomes(t *testing.T) {
	col, _ := newSkillCollection(t)
	added, err := col.Add(models.Skill{Name: "Go", Proficiency: 95})
	require.NoError(t, err)

	deleted, err := col.Delete("nope")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = col.Delete("nope")
	require.NoError(t, err)
	assert.False(t, deleted, "missing id must stay false on repeat")

	deleted, err = col.Delete(added.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = col.Delete(added.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete of the same id must be false")

	items, err := col.List()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSeededCollectionListsDefaults(t *testing.T) {
	col, _ := newSkillCollection(t)
	col.Seed = seedSkills

	items, err := col.List()
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "skill-1", items[0].ID)
	assert.Equal(t, "React", items[0].Name)

	again, err := col.List()
	require.NoError(t, err)
	assert.Equal(t, items, again)
}
