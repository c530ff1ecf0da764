package models

// SelectionState holds one session's choices: the selected entities in the
// order the user picked them and an enabled flag per category of each group.
type SelectionState struct {
	Entities    []string `json:"entities"`
	Gender      []bool   `json:"gender"`
	Religion    []bool   `json:"religion"`
	SocialMedia []bool   `json:"social_media"`
}

// NewSelectionState returns the session defaults: nothing selected, every
// category enabled.
func NewSelectionState() SelectionState {
	return SelectionState{
		Entities:    []string{},
		Gender:      allEnabled(len(GenderGroup.Labels)),
		Religion:    allEnabled(len(ReligionGroup.Labels)),
		SocialMedia: allEnabled(len(SocialMediaGroup.Labels)),
	}
}

func allEnabled(n int) []bool {
	v := make([]bool, n)
	for i := range v {
		v[i] = true
	}
	return v
}

// Clone returns a deep copy so callers can mutate without touching a stored state.
func (s SelectionState) Clone() SelectionState {
	return SelectionState{
		Entities:    append([]string{}, s.Entities...),
		Gender:      append([]bool{}, s.Gender...),
		Religion:    append([]bool{}, s.Religion...),
		SocialMedia: append([]bool{}, s.SocialMedia...),
	}
}

// Enabled returns the enabled vector of a group.
func (s SelectionState) Enabled(id GroupID) []bool {
	switch id {
	case GroupGender:
		return s.Gender
	case GroupReligion:
		return s.Religion
	case GroupSocialMedia:
		return s.SocialMedia
	}
	return nil
}

// SetEnabled replaces a group's enabled vector. The vector is resized to the
// group's label count; missing flags default to disabled.
func (s *SelectionState) SetEnabled(id GroupID, enabled []bool) {
	g, ok := GroupByID(id)
	if !ok {
		return
	}
	v := make([]bool, len(g.Labels))
	copy(v, enabled)
	switch id {
	case GroupGender:
		s.Gender = v
	case GroupReligion:
		s.Religion = v
	case GroupSocialMedia:
		s.SocialMedia = v
	}
}

// SetEnabledLabels enables exactly the given labels of a group.
func (s *SelectionState) SetEnabledLabels(id GroupID, labels []string) {
	g, ok := GroupByID(id)
	if !ok {
		return
	}
	v := make([]bool, len(g.Labels))
	for _, l := range labels {
		if i := g.IndexOf(l); i >= 0 {
			v[i] = true
		}
	}
	s.SetEnabled(id, v)
}

// Toggle sets one category flag by label. Unknown labels are ignored.
func (s *SelectionState) Toggle(id GroupID, label string, on bool) {
	g, ok := GroupByID(id)
	if !ok {
		return
	}
	i := g.IndexOf(label)
	if i < 0 {
		return
	}
	v := append([]bool{}, s.Enabled(id)...)
	if len(v) != len(g.Labels) {
		resized := make([]bool, len(g.Labels))
		copy(resized, v)
		v = resized
	}
	v[i] = on
	s.SetEnabled(id, v)
}

// SelectEntities keeps the requested entities that are available, in request
// order and without duplicates.
func (s *SelectionState) SelectEntities(requested []string, available []string) {
	known := make(map[string]bool, len(available))
	for _, e := range available {
		known[e] = true
	}
	seen := make(map[string]bool, len(requested))
	out := make([]string, 0, len(requested))
	for _, e := range requested {
		if !known[e] || seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	s.Entities = out
}

// AnyEnabled reports whether at least one flag of a group is set.
func (s SelectionState) AnyEnabled(id GroupID) bool {
	for _, on := range s.Enabled(id) {
		if on {
			return true
		}
	}
	return false
}

// IsSelected reports whether entity is part of the selection.
func (s SelectionState) IsSelected(entity string) bool {
	for _, e := range s.Entities {
		if e == entity {
			return true
		}
	}
	return false
}
