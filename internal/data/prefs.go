package data

import (
	"fmt"
	"os"
	"path/filepath"

	"intrack/internal/model"

	"gopkg.in/yaml.v3"
)

// LoadPrefs reads the preferences file, writing one with defaults first if it does not exist
func LoadPrefs(path string) (*model.UserPrefs, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SavePrefs(path, model.NewUserPrefs()); err != nil {
			return nil, err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the preferences file: %w", err)
	}
	prefs := model.NewUserPrefs()
	if err = yaml.Unmarshal(data, prefs); err != nil {
		return nil, fmt.Errorf("failed to parse the preferences file %s: %w", path, err)
	}
	return prefs, nil
}

func SavePrefs(path string, prefs model.ReadOnlyUserPrefs) error {
	if prefs == nil {
		return fmt.Errorf("%w: nil user prefs", model.ErrInvalidArgument)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create the preferences directory: %w", err)
	}
	p, err := model.NewUserPrefsFrom(prefs)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
