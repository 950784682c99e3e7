package domain

// Shelter is one evacuation shelter, optionally annotated with the
// distance from a search origin.
type Shelter struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	NameTranslated   string   `json:"name_translated,omitempty"`
	Address          string   `json:"address"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
	Distance         float64  `json:"distance,omitempty"`
	Capacity         int      `json:"capacity,omitempty"`
	CurrentOccupancy int      `json:"current_occupancy,omitempty"`
	Facilities       []string `json:"facilities"`
	IsOpen           bool     `json:"is_open"`
	Phone            string   `json:"phone,omitempty"`
	Types            []string `json:"types"`
}
