package models

// DiagnosisResult is an immutable snapshot produced by the diagnosis client.
// All fields except the optional mist/fertilize suggestions are required in
// the upstream response schema; the client trusts the model to honor it and
// does not clamp or re-validate field ranges here.
type DiagnosisResult struct {
	PlantName      string       `json:"plantName"`
	ScientificName string       `json:"scientificName"`
	Confidence     float64      `json:"confidence"`
	HealthStatus   HealthStatus `json:"healthStatus"`
	Diagnosis      string       `json:"diagnosis"`
	Reasoning      string       `json:"reasoning"`
	CarePlan       []string     `json:"carePlan"`

	// Suggested care frequencies in days. Zero means the track is not
	// needed for this species.
	SuggestedWaterFrequency     int `json:"suggestedWaterFrequency"`
	SuggestedMistFrequency      int `json:"suggestedMistFrequency,omitempty"`
	SuggestedFertilizeFrequency int `json:"suggestedFertilizeFrequency,omitempty"`
}

// Suggested returns the recommended frequencies as a seedable value.
func (d DiagnosisResult) Suggested() SuggestedFrequencies {
	return SuggestedFrequencies{
		Water:     d.SuggestedWaterFrequency,
		Mist:      d.SuggestedMistFrequency,
		Fertilize: d.SuggestedFertilizeFrequency,
	}
}

// SuggestedFrequencies carries per-track care recommendations in days, used
// to seed a new plant's schedule. Zero disables a track; a zero water
// frequency falls back to the engine default since watering is never
// disableable.
type SuggestedFrequencies struct {
	Water     int
	Mist      int
	Fertilize int
}
