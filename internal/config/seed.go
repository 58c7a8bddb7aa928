package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rpggio/roster/internal/domain/roster"
)

type seedFile struct {
	Activities []seedActivity `yaml:"activities"`
}

type seedActivity struct {
	Name            string   `yaml:"name"`
	Description     string   `yaml:"description"`
	Schedule        string   `yaml:"schedule"`
	MaxParticipants int      `yaml:"max_participants"`
	Participants    []string `yaml:"participants"`
}

// LoadSeed returns the roster seed: the YAML file at path when set, the
// built-in activities otherwise.
func LoadSeed(path string) ([]roster.Activity, error) {
	if path == "" {
		return roster.DefaultSeed(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var file seedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	seed := make([]roster.Activity, 0, len(file.Activities))
	for _, a := range file.Activities {
		participants := a.Participants
		if participants == nil {
			participants = []string{}
		}
		seed = append(seed, roster.Activity{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		})
	}

	if err := roster.ValidateSeed(seed); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return seed, nil
}
