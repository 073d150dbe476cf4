package model

import (
	"fmt"
	"path/filepath"
)

// GuiSettings is window geometry the presentation layer wants back next session. The core never reads it.
type GuiSettings struct {
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	X            int `yaml:"x"`
	Y            int `yaml:"y"`
	ListWidth    int `yaml:"list_width"` // columns given to the internship list
}

func DefaultGuiSettings() GuiSettings {
	return GuiSettings{WindowWidth: 740, WindowHeight: 600, ListWidth: 3}
}

type ReadOnlyUserPrefs interface {
	GuiSettings() GuiSettings
	InternshipFilePath() string
}

type UserPrefs struct {
	Gui                GuiSettings `yaml:"gui"`
	InternshipDataPath string      `yaml:"internship_file_path"`
}

func NewUserPrefs() *UserPrefs {
	return &UserPrefs{
		Gui:                DefaultGuiSettings(),
		InternshipDataPath: filepath.Join("data", "internships.db"),
	}
}

func NewUserPrefsFrom(src ReadOnlyUserPrefs) (*UserPrefs, error) {
	p := NewUserPrefs()
	if err := p.ResetData(src); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *UserPrefs) ResetData(src ReadOnlyUserPrefs) error {
	if up, ok := src.(*UserPrefs); src == nil || (ok && up == nil) {
		return fmt.Errorf("%w: nil user prefs", ErrInvalidArgument)
	}
	p.Gui = src.GuiSettings()
	p.InternshipDataPath = src.InternshipFilePath()
	return nil
}

func (p *UserPrefs) GuiSettings() GuiSettings       { return p.Gui }
func (p *UserPrefs) SetGuiSettings(g GuiSettings)   { p.Gui = g }
func (p *UserPrefs) InternshipFilePath() string     { return p.InternshipDataPath }
func (p *UserPrefs) SetInternshipFilePath(f string) { p.InternshipDataPath = f }

func (p *UserPrefs) Equal(other *UserPrefs) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return *p == *other
}
