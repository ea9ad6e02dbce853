// Package profiles loads default-profile overlays for the policy
// compiler. An overlay is a YAML file whose keys mirror policy.Profile;
// fields it names replace the builtin defaults, fields it omits keep
// them.
package profiles

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cbrueffer/bowtie2/pkg/policy"
)

// Load reads a YAML overlay and applies it over the builtin profile.
// The result is validated before it is returned.
func Load(path string) (*policy.Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	prof, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return prof, nil
}

// Parse decodes an overlay from YAML bytes over the builtin profile.
func Parse(data []byte) (*policy.Profile, error) {
	prof := policy.Builtin()
	if err := yaml.Unmarshal(data, prof); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	if err := policy.ValidateProfile(prof); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return prof, nil
}
