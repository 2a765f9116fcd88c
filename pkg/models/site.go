package models

// Site holds the static content of the page.
type Site struct {
	Name         string      `yaml:"name" toml:"name" json:"name"`
	Tagline      string      `yaml:"tagline" toml:"tagline" json:"tagline"`
	Phone        string      `yaml:"phone" toml:"phone" json:"phone"`
	PhoneDisplay string      `yaml:"phone_display" toml:"phone_display" json:"phone_display"`
	Email        string      `yaml:"email" toml:"email" json:"email"`
	Address      string      `yaml:"address" toml:"address" json:"address"`
	City         string      `yaml:"city" toml:"city" json:"city"`
	Hours        string      `yaml:"hours" toml:"hours" json:"hours"`
	MenuURL      string      `yaml:"menu_url" toml:"menu_url" json:"menu_url"`
	SceneURL     string      `yaml:"scene_url" toml:"scene_url" json:"scene_url"`
	MapQuery     string      `yaml:"map_query" toml:"map_query" json:"map_query"`
	Features     []string    `yaml:"features" toml:"features" json:"features"`
	Specialties  []Specialty `yaml:"specialties" toml:"specialties" json:"specialties"`
}

type Specialty struct {
	Icon        string `yaml:"icon" toml:"icon" json:"icon"`
	Title       string `yaml:"title" toml:"title" json:"title"`
	Description string `yaml:"description" toml:"description" json:"description"`
}
