package plan_models

type ExperienceCategory string

const (
	ExperienceFood      ExperienceCategory = "food"
	ExperienceArts      ExperienceCategory = "arts_culture"
	ExperienceAdventure ExperienceCategory = "adventure"
	ExperienceShopping  ExperienceCategory = "shopping"
	ExperienceWellness  ExperienceCategory = "wellness"
)

// LocalExperience is one off-the-beaten-path suggestion for the first
// destination of a trip.
type LocalExperience struct {
	Category    ExperienceCategory `json:"category"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
}

type PackingItem struct {
	Item  string `json:"item"`
	Notes string `json:"notes,omitempty"`
}

// PackingList groups items under free-form category headings
// ("documents", "clothing", ...), as returned by the AI.
type PackingList map[string][]PackingItem
