package handlers

import (
	"os"

	"github.com/cockroachdb/errors"

	"legislators_dashboard/logger"
	"legislators_dashboard/models"
)

const (
	VariantPlain       = "plain"
	VariantLegislators = "legislators"
)

// PanelCopy is the text shown around one result panel.
type PanelCopy struct {
	Title       string
	Description string
	Footnote    string
	Subgroups   []Subgroup
}

// Subgroup lists which raw religion labels were folded into a category.
type Subgroup struct {
	Category string
	Members  []string
}

// Presentation holds everything that differs between dashboard variants.
// Data handling is identical for all of them.
type Presentation struct {
	Variant           string
	PageTitle         string
	ShowBanner        bool
	BannerPath        string
	Heading           string
	Intro             []string
	SidebarHint       string
	SelectLabel       string
	SelectPlaceholder string
	SourceName        string
	SourceURL         string
	SourceNote        string
	Panels            map[models.PanelID]PanelCopy
}

// Copy returns the panel text, falling back to the panel id.
func (p Presentation) Copy(id models.PanelID) PanelCopy {
	if c, ok := p.Panels[id]; ok {
		return c
	}
	return PanelCopy{Title: string(id)}
}

// PresentationFor returns the presentation of a variant. A banner that
// cannot be read is dropped with a warning; it is decorative only.
func PresentationFor(variant, bannerPath string) (Presentation, error) {
	var p Presentation
	switch variant {
	case VariantPlain, "":
		p = plainPresentation()
	case VariantLegislators:
		p = legislatorsPresentation(bannerPath)
	default:
		return Presentation{}, errors.Newf("unknown dashboard variant %q", variant)
	}

	if p.ShowBanner {
		if _, err := os.Stat(p.BannerPath); err != nil {
			logger.Logger.Warnf("Banner %s unavailable, rendering without it: %v", p.BannerPath, err)
			p.ShowBanner = false
		}
	}
	return p, nil
}

func plainPresentation() Presentation {
	return Presentation{
		Variant:     VariantPlain,
		PageTitle:   "Country Statistics",
		SelectLabel: "Select Country",
		Panels: map[models.PanelID]PanelCopy{
			models.PanelGender:      {Title: "Gender Distribution for Selected Entities"},
			models.PanelReligion:    {Title: "Religion Distribution for Selected Entities"},
			models.PanelSocialMedia: {Title: "Social Media Distribution for Selected Countries"},
			models.PanelTraffic:     {Title: "Traffic Information for Selected Entities"},
		},
	}
}

func legislatorsPresentation(bannerPath string) Presentation {
	return Presentation{
		Variant:    VariantLegislators,
		PageTitle:  "The Comparative Legislators Database",
		ShowBanner: true,
		BannerPath: bannerPath,
		Heading:    "The Comparative Legislators Database: Exploring Political Representation",
		Intro: []string{
			"Dive into the heart of political representation. Our visualizations reveal not just numbers but stories of gender, religion, and digital presence, highlighting the intricate tapestry of global governance.",
			"Reflect on the impact of diversity in political representation. How do the gender, religious affiliations, and social media savviness of our leaders influence the policies and decisions that shape our world?",
		},
		SidebarHint:       "Choose Countries to compare and apply Filters as needed.",
		SelectPlaceholder: "Select Countries",
		SourceName:        "Harvard Dataverse",
		SourceURL:         "https://dataverse.harvard.edu/dataset.xhtml?persistentId=doi:10.7910/DVN/Z2V8DD",
		SourceNote:        "Data is meticulously collected and verified from Wikipedia and Wikidata, ensuring an accurate reflection of global political landscapes.",
		Panels: map[models.PanelID]PanelCopy{
			models.PanelGender: {
				Title:       "Gender Dynamics within political representation.",
				Description: "This visualization highlights the current state of gender equality, showcasing the existing balance—or imbalance—between genders in political offices.",
			},
			models.PanelReligion: {
				Title:       "Religion Distribution",
				Description: "*Religions were meticulously categorized into major groups to reflect theological similarities and ensure clarity in the visualization of religious affiliations among political representatives.",
				Footnote:    "The categories and their corresponding sub-groups are as follows:",
				Subgroups:   religionSubgroups,
			},
			models.PanelSocialMedia: {
				Title:       "Social Media Distribution",
				Description: "The Role of Digital Engagement: Explore the digital frontier of political engagement. Our analysis on social media presence offers insights into how modern representatives connect with the public, shaping perceptions and discourse.",
			},
			models.PanelTraffic: {
				Title:       "Traffic Distribution",
				Description: "This plot captures the pulsating attention directed towards our leaders, mediated through the clicks and views of the digital populace. It's a narrative of curiosity, engagement, and the shifting tides of public focus, offering insights into the moments and movements that capture our collective gaze.",
			},
		},
	}
}

var religionSubgroups = []Subgroup{
	{Category: "Christianity", Members: []string{
		"catholicism", "orthodox eastern", "protestantism", "protestantism hussite",
		"protestantism methodist", "protestantism lutheran", "protestantism anglican",
		"protestantism anglicanism", "anglicanism", "protestantism baptism", "protestantism baptist",
		"protestantism presbyterian", "protestantism adventist", "protestantism pentecostal",
		"protestantism quaker", "protestantism restorationism", "protestantism reformed",
		"protestantism evangelical", "protestantism anabaptism", "protestantism arminianism",
		"protestantism nontrinitarian", "protestantism unitarian", "protestantism christian science",
		"protestantism non-denominational", "protestantism apostolic", "protestantism proto",
	}},
	{Category: "Islam", Members: []string{"islam"}},
	{Category: "Hinduism", Members: []string{"hindu"}},
	{Category: "Buddhism", Members: []string{"buddhism", "nichiren shu", "jodo_shinshu", "soka gakkai"}},
	{Category: "Judaism", Members: []string{"judaism", "orthodox", "conservative", "reform"}},
}
