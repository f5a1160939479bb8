package models

// Skill is an offering listed on the platform.
type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s Skill) Key() string { return s.ID }
