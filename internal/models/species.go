package models

// CareRequirements is the static care guidance text for a species.
type CareRequirements struct {
	Water       string `json:"water"`
	Light       string `json:"light"`
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
}

// Species is a read-only catalog entry. It is reference data, not user-owned:
// a plant created from a species copies what it needs and keeps no foreign
// key back into the catalog.
type Species struct {
	ID             string           `json:"id"`
	CommonName     string           `json:"commonName"`
	ScientificName string           `json:"scientificName"`
	Description    string           `json:"description"`
	ImageURL       string           `json:"imageUrl"`
	Care           CareRequirements `json:"care"`
	CommonIssues   []string         `json:"commonIssues"`

	SuggestedWaterFrequency     int `json:"suggestedWaterFrequency,omitempty"`
	SuggestedMistFrequency      int `json:"suggestedMistFrequency,omitempty"`
	SuggestedFertilizeFrequency int `json:"suggestedFertilizeFrequency,omitempty"`
}

// Suggested returns the catalog's recommended frequencies for seeding a new
// plant's schedule.
func (sp Species) Suggested() SuggestedFrequencies {
	return SuggestedFrequencies{
		Water:     sp.SuggestedWaterFrequency,
		Mist:      sp.SuggestedMistFrequency,
		Fertilize: sp.SuggestedFertilizeFrequency,
	}
}
