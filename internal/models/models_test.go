package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectedTagsToggle(t *testing.T) {
	tags := SelectedTags{}

	tags.Toggle("navigation", "Hero")
	assert.Equal(t, []string{"Hero"}, tags.Navigation)

	tags.Toggle("navigation", "Skills")
	assert.Equal(t, []string{"Hero", "Skills"}, tags.Navigation)

	tags.Toggle("navigation", "Hero")
	assert.Equal(t, []string{"Skills"}, tags.Navigation)
}

func TestSelectedTagsToggleTwiceRestoresState(t *testing.T) {
	tags := SelectedTags{Navigation: []string{"Hero", "Contact"}}
	original := append([]string{}, tags.Navigation...)

	tags.Toggle("navigation", "Skills")
	tags.Toggle("navigation", "Skills")
	assert.Equal(t, original, tags.Navigation)
}

func TestSelectedTagsToggleUnknownSection(t *testing.T) {
	tags := SelectedTags{}
	tags.Toggle("colors", "Hero")
	assert.Empty(t, tags.SiteType)
	assert.Empty(t, tags.Navigation)
	assert.Empty(t, tags.Layout)
	assert.Empty(t, tags.PageOrder)
}

func TestSelectedTagsGroupsAreIndependent(t *testing.T) {
	tags := SelectedTags{}
	tags.Toggle("siteType", "Hero")
	tags.Toggle("layout", "Hero")
	assert.Equal(t, []string{"Hero"}, tags.SiteType)
	assert.Equal(t, []string{"Hero"}, tags.Layout)
	assert.Empty(t, tags.Navigation)
}
