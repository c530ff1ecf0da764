package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSelectionStateDefaults(t *testing.T) {
	s := NewSelectionState()

	assert.Empty(t, s.Entities)
	assert.Equal(t, []bool{true, true}, s.Gender)
	assert.Len(t, s.Religion, 6)
	assert.Len(t, s.SocialMedia, 6)
	for _, g := range Groups() {
		assert.True(t, s.AnyEnabled(g.ID), g.ID)
	}
}

func TestSelectEntitiesKeepsKnownInOrder(t *testing.T) {
	s := NewSelectionState()
	s.SelectEntities([]string{"Chile", "Atlantis", "Austria", "Chile"}, []string{"Austria", "Brazil", "Chile"})

	assert.Equal(t, []string{"Chile", "Austria"}, s.Entities)
	assert.True(t, s.IsSelected("Austria"))
	assert.False(t, s.IsSelected("Atlantis"))
}

func TestToggle(t *testing.T) {
	s := NewSelectionState()
	s.Toggle(GroupReligion, "Islam", false)
	s.Toggle(GroupReligion, "Pastafarianism", false)
	s.Toggle(GroupID("weather"), "rain", true)

	assert.Equal(t, []bool{true, false, true, true, true, true}, s.Religion)

	s.Toggle(GroupReligion, "Islam", true)
	assert.Equal(t, []bool{true, true, true, true, true, true}, s.Religion)
}

func TestSetEnabledResizes(t *testing.T) {
	s := NewSelectionState()

	s.SetEnabled(GroupGender, []bool{true})
	assert.Equal(t, []bool{true, false}, s.Gender)

	s.SetEnabled(GroupGender, []bool{false, true, true})
	assert.Equal(t, []bool{false, true}, s.Gender)
}

func TestSetEnabledLabels(t *testing.T) {
	s := NewSelectionState()
	s.SetEnabledLabels(GroupSocialMedia, []string{"youtube", "linkedin", "myspace"})

	assert.Equal(t, []bool{false, false, true, false, false, true}, s.SocialMedia)
	assert.True(t, s.AnyEnabled(GroupSocialMedia))

	s.SetEnabledLabels(GroupSocialMedia, nil)
	assert.False(t, s.AnyEnabled(GroupSocialMedia))
}

func TestCloneIsIndependent(t *testing.T) {
	s := NewSelectionState()
	s.Entities = []string{"Austria"}

	c := s.Clone()
	c.Entities[0] = "Brazil"
	c.Gender[0] = false

	assert.Equal(t, "Austria", s.Entities[0])
	assert.True(t, s.Gender[0])
}

func TestGroupLookups(t *testing.T) {
	g, ok := GroupByID(GroupReligion)
	assert.True(t, ok)
	assert.Equal(t, 3, g.IndexOf("Buddhism"))
	assert.Equal(t, -1, g.IndexOf("buddhism"))
	assert.Len(t, g.Colors, len(g.Labels))

	_, ok = GroupByID(GroupID("weather"))
	assert.False(t, ok)

	p, ok := ParsePanelID("social_media")
	assert.True(t, ok)
	assert.Equal(t, PanelSocialMedia, p)
	_, ok = ParsePanelID("weather")
	assert.False(t, ok)
}
