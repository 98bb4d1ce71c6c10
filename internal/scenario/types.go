// types.go
package scenario

// Raw scenario file loaded from YAML.
type RawFile struct {
	Version  string   `yaml:"version"`
	Defaults Defaults `yaml:"defaults"`
	Runs     []RawRun `yaml:"runs"`
	Notes    string   `yaml:"notes,omitempty"`
}

// Defaults apply to every run that leaves the field unset.
type Defaults struct {
	Trials     *int    `yaml:"trials,omitempty"`
	StartLevel *int    `yaml:"start_level,omitempty"`
	Seed       *uint64 `yaml:"seed,omitempty"`
}

type RawRun struct {
	Name       string  `yaml:"name,omitempty"`
	Rarity     string  `yaml:"rarity"`
	Trials     *int    `yaml:"trials,omitempty"`
	StartLevel *int    `yaml:"start_level,omitempty"`
	Seed       *uint64 `yaml:"seed,omitempty"`
}
