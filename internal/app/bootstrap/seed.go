package bootstrap

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/mergington/activities/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed default_activities.yaml
var defaultCatalog []byte

type catalogFile struct {
	Activities []catalogActivity `yaml:"activities"`
}

type catalogActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// LoadCatalog reads the activity seed catalog. An empty path, or a path that
// does not exist, falls back to the embedded default catalog.
func LoadCatalog(path string) ([]domain.Activity, error) {
	raw := defaultCatalog
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			raw = b
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("read catalog: %w", err)
		}
	}

	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Activities) == 0 {
		return nil, fmt.Errorf("catalog has no activities")
	}

	seen := make(map[string]bool, len(f.Activities))
	out := make([]domain.Activity, 0, len(f.Activities))
	for _, a := range f.Activities {
		if a.Name == "" {
			return nil, fmt.Errorf("catalog activity with empty name")
		}
		if seen[a.Name] {
			return nil, fmt.Errorf("duplicate catalog activity %q", a.Name)
		}
		if a.MaxParticipants < 0 {
			return nil, fmt.Errorf("catalog activity %q has negative max_participants", a.Name)
		}
		seen[a.Name] = true
		out = append(out, domain.Activity{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    append([]string(nil), a.Participants...),
		})
	}
	return out, nil
}
