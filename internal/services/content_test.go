package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend-go/internal/models"
	"portfolio-backend-go/internal/store"
)

func newContentService(t *testing.T) *ContentService {
	t.Helper()
	return NewContentService(store.New(t.TempDir()))
}

func TestGetAllAssemblesSeededSections(t *testing.T) {
	svc := newContentService(t)

	all, err := svc.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "hero-1", all.Hero.ID)
	assert.Len(t, all.Skills, 4)
	assert.Len(t, all.Career, 1)
	assert.Len(t, all.Projects, 1)
	assert.Empty(t, all.SocialMedia)
	assert.True(t, all.Contact.Contact.Email.Enabled)
	assert.Equal(t, "#007bff", all.Theme.PrimaryColor)
	assert.Equal(t, "scroll", all.AdminSettings.NavigationStyle)
}

func TestGetAllReflectsWrites(t *testing.T) {
	svc := newContentService(t)

	added, err := svc.Skills.Add(models.Skill{Name: "Go", Proficiency: 95})
	require.NoError(t, err)

	all, err := svc.GetAll()
	require.NoError(t, err)
	require.Len(t, all.Skills, 5)
	assert.Equal(t, added.ID, all.Skills[4].ID)
}

func TestContactViewComposesSocialAccounts(t *testing.T) {
	svc := newContentService(t)

	added, err := svc.Social.Add(models.SocialAccount{Platform: "GitHub", URL: "https://github.com/johndoe", IsActive: true})
	require.NoError(t, err)

	contact, err := svc.GetContact()
	require.NoError(t, err)
	require.Len(t, contact.SocialMedia, 1)
	assert.Equal(t, added.ID, contact.SocialMedia[0].ID)

	contact.Location = "Ankara, Türkiye"
	saved, err := svc.SaveContact(contact)
	require.NoError(t, err)
	assert.Len(t, saved.SocialMedia, 1)

	reloaded, err := svc.GetContact()
	require.NoError(t, err)
	assert.Equal(t, "Ankara, Türkiye", reloaded.Location)
	assert.Len(t, reloaded.SocialMedia, 1, "accounts come from their own collection, not the contact file")
}

func TestSaveHeroDefaultsSingletonID(t *testing.T) {
	svc := newContentService(t)

	saved, err := svc.SaveHero(models.Hero{Title: "Hello", Position: "right", AreaNumber: 2})
	require.NoError(t, err)
	assert.Equal(t, "hero-1", saved.ID)
	assert.False(t, saved.LastUpdated.IsZero())

	loaded, err := svc.GetHero()
	require.NoError(t, err)
	assert.Equal(t, "Hello", loaded.Title)
	assert.Equal(t, "right", loaded.Position)
}

func TestSaveHeroRequiresTitle(t *testing.T) {
	svc := newContentService(t)
	_, err := svc.SaveHero(models.Hero{})
	require.Error(t, err)
	serr, ok := err.(ServiceError)
	require.True(t, ok)
	assert.Equal(t, 400, serr.Status)
}

func TestCitiesDeduplicatesAndSorts(t *testing.T) {
	svc := newContentService(t)

	for _, user := range []models.User{
		{Name: "A", Email: "a@example.com", City: "İstanbul"},
		{Name: "B", Email: "b@example.com", City: "Ankara"},
		{Name: "C", Email: "c@example.com", City: "İstanbul"},
		{Name: "D", Email: "d@example.com", City: "  "},
	} {
		_, err := svc.Users.Add(user)
		require.NoError(t, err)
	}

	cities, err := svc.Cities()
	require.NoError(t, err)
	assert.Equal(t, []string{"Ankara", "İstanbul"}, cities)
}

func TestUserUpdatePreservesCreatedDate(t *testing.T) {
	svc := newContentService(t)

	added, err := svc.Users.Add(models.User{Name: "Jane", Email: "jane@example.com", Age: 30, City: "Ankara"})
	require.NoError(t, err)
	assert.False(t, added.CreatedDate.IsZero())

	updated, err := svc.Users.Update(added.ID, models.User{Name: "Jane D", Email: "jane@example.com", Age: 31, City: "İzmir"})
	require.NoError(t, err)
	assert.True(t, added.CreatedDate.Equal(updated.CreatedDate), "createdDate must survive updates")
	assert.Equal(t, 31, updated.Age)
}

func TestUserValidation(t *testing.T) {
	svc := newContentService(t)

	_, err := svc.Users.Add(models.User{Email: "x@example.com"})
	require.Error(t, err)

	_, err = svc.Users.Add(models.User{Name: "X", Email: "not-an-email"})
	require.Error(t, err)
}
