package model

// TeamMember is a roster entry
type TeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photoUrl"`
}

// ProcessStep is one step of the engagement process. Steps are numbered from 1.
type ProcessStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
