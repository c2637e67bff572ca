package seed

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile describes a named seeding scenario loaded from YAML. Profiles let
// the demo environments pin their data shape in a file instead of flag soup.
type Profile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`

	Users    int  `yaml:"users"`
	Posts    int  `yaml:"posts"`
	Comments int  `yaml:"comments"`
	Follows  int  `yaml:"follows"`
	Clean    bool `yaml:"clean"`

	// Groups are created in addition to the built-in set.
	Groups []BuiltInGroup `yaml:"groups"`
}

// builtinProfiles are the profiles available without a YAML file.
var builtinProfiles = map[string]Profile{
	"minimal": {
		Name:        "minimal",
		Description: "A handful of users and posts for quick smoke tests.",
		Users:       5,
		Posts:       20,
		Comments:    10,
		Follows:     5,
		Clean:       true,
	},
	"demo": {
		Name:        "demo",
		Description: "Enough activity to make the feeds look alive.",
		Users:       50,
		Posts:       400,
		Comments:    600,
		Follows:     150,
		Clean:       true,
	},
	"busy": {
		Name:        "busy",
		Description: "A populated instance for pagination and cache testing.",
		Users:       200,
		Posts:       3000,
		Comments:    5000,
		Follows:     1000,
		Clean:       true,
	},
}

// LoadProfile resolves a profile by name or loads one from a YAML file when
// the argument looks like a path.
func LoadProfile(nameOrPath string) (Profile, error) {
	if p, ok := builtinProfiles[nameOrPath]; ok {
		return p, nil
	}

	raw, err := os.ReadFile(nameOrPath)
	if err != nil {
		return Profile{}, fmt.Errorf("unknown profile %q and no such file: %w", nameOrPath, err)
	}

	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", nameOrPath, err)
	}
	if err := p.validate(); err != nil {
		return Profile{}, fmt.Errorf("profile %s: %w", nameOrPath, err)
	}
	return p, nil
}

// ProfileNames lists the built-in profile names for CLI help output.
func ProfileNames() []string {
	names := make([]string, 0, len(builtinProfiles))
	for name := range builtinProfiles {
		names = append(names, name)
	}
	return names
}

func (p Profile) validate() error {
	if p.Users <= 0 {
		return fmt.Errorf("users must be positive, got %d", p.Users)
	}
	if p.Posts < 0 || p.Comments < 0 || p.Follows < 0 {
		return fmt.Errorf("posts, comments, and follows must not be negative")
	}
	for _, g := range p.Groups {
		if g.Slug == "" || g.Title == "" {
			return fmt.Errorf("every extra group needs a title and a slug")
		}
	}
	return nil
}
