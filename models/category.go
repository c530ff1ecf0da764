package models

// GroupID names one of the three category groups a user can filter.
type GroupID string

const (
	GroupGender      GroupID = "gender"
	GroupReligion    GroupID = "religion"
	GroupSocialMedia GroupID = "social_media"
)

// CategoryGroup is a fixed label list with a parallel colour list. Record
// tuples in the matching dataset are aligned with Labels by position.
type CategoryGroup struct {
	ID     GroupID  `json:"id"`
	Title  string   `json:"title"`
	Labels []string `json:"labels"`
	Colors []string `json:"colors"`
}

var (
	GenderGroup = CategoryGroup{
		ID:     GroupGender,
		Title:  "Gender",
		Labels: []string{"Male", "Female"},
		Colors: []string{"#1f77b4", "#d62728"},
	}

	ReligionGroup = CategoryGroup{
		ID:     GroupReligion,
		Title:  "Religion",
		Labels: []string{"Christianity", "Islam", "Hinduism", "Buddhism", "Judaism", "Others"},
		Colors: []string{"#2ca02c", "#9467bd", "#8c564b", "#ff7f0e", "#6b6ecf", "#17becf"},
	}

	SocialMediaGroup = CategoryGroup{
		ID:     GroupSocialMedia,
		Title:  "Social Media Presence",
		Labels: []string{"twitter", "facebook", "youtube", "instagram", "website", "linkedin"},
		Colors: []string{"#FF5733", "#FFD700", "#7FFF00", "#4169E1", "#9400D3", "#FF1493"},
	}
)

// Groups returns the category groups in sidebar order.
func Groups() []CategoryGroup {
	return []CategoryGroup{GenderGroup, ReligionGroup, SocialMediaGroup}
}

// GroupByID looks up a category group.
func GroupByID(id GroupID) (CategoryGroup, bool) {
	for _, g := range Groups() {
		if g.ID == id {
			return g, true
		}
	}
	return CategoryGroup{}, false
}

// IndexOf returns the positional index of label within the group, or -1.
func (g CategoryGroup) IndexOf(label string) int {
	for i, l := range g.Labels {
		if l == label {
			return i
		}
	}
	return -1
}
