package cli

import "github.com/CristianLlanos/phpunit/internal/config"

// Flags holds command-line flags
type Flags struct {
	Manifest string
	Workers  int
	Filter   string
	Group    string
	Save     bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Manifest: f.Manifest,
		Workers:  f.Workers,
		Filter:   f.Filter,
		Group:    f.Group,
		Save:     f.Save,
	}
}
