package auth

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// rosterFile is the YAML shape of the roster config file.
type rosterFile struct {
	Users []User `yaml:"users"`
}

// DefaultRosterPath returns the expected roster config file location.
func DefaultRosterPath() string {
	return filepath.Join(xdg.ConfigHome, "lingualearn", "roster.yaml")
}

// LoadRoster reads a roster from the YAML file at path, falling back to the
// built-in roster when the file does not exist. Reading through afero.Fs
// keeps the loader testable against an in-memory filesystem.
func LoadRoster(fs afero.Fs, path string) (*Roster, error) {
	if path == "" {
		path = DefaultRosterPath()
	}

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return nil, fmt.Errorf("check roster file: %w", err)
	}
	if !exists {
		return DefaultRoster(), nil
	}

	handle, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster file: %w", err)
	}
	defer handle.Close()

	var rf rosterFile
	if err := yaml.NewDecoder(handle).Decode(&rf); err != nil {
		return nil, fmt.Errorf("decode roster file %s: %w", path, err)
	}

	if len(rf.Users) == 0 {
		return nil, fmt.Errorf("roster file %s has no users", path)
	}
	for i, u := range rf.Users {
		if u.Role != RoleStudent && u.Role != RoleTeacher {
			return nil, fmt.Errorf("roster file %s: user %d has unknown role %q", path, i, u.Role)
		}
	}

	return NewRoster(rf.Users), nil
}
