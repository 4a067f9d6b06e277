package types

type (
	// Expansion is the result of recursively expanding one include or
	// recursive-exclude pattern.
	Expansion struct {
		Pattern string   `json:"pattern"`
		Base    string   `json:"base"` // absolute directory the walk started from
		Name    string   `json:"name"` // final-element pattern
		Files   []string `json:"files"`
	}

	// Config holds the settings that can come from a config file.
	Config struct {
		Input   string `yaml:"input" json:"input"`
		Output  string `yaml:"output" json:"output"`
		Tree    bool   `yaml:"tree" json:"tree"`
		Verbose bool   `yaml:"verbose" json:"verbose"`
	}
)
