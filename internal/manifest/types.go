package manifest

// Manifest is a structured requirements manifest.
type Manifest struct {
	Name         string       `yaml:"name,omitempty" json:"name,omitempty"`
	Description  string       `yaml:"description,omitempty" json:"description,omitempty"`
	Dependencies []Dependency `yaml:"dependencies" json:"dependencies"`
}

// Dependency declares one required distribution.
type Dependency struct {
	Name      string   `yaml:"name" json:"name"`
	Specifier string   `yaml:"specifier,omitempty" json:"specifier,omitempty"`
	Marker    string   `yaml:"marker,omitempty" json:"marker,omitempty"`
	Extras    []string `yaml:"extras,omitempty" json:"extras,omitempty"`
	Optional  bool     `yaml:"optional,omitempty" json:"optional,omitempty"`
}
