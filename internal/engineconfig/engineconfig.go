package engineconfig

import (
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/cubefield.yaml"

// Environment variables that override the file.
const (
	EnvSeed    = "CUBEFIELD_SEED"
	EnvShowFPS = "CUBEFIELD_SHOW_FPS"
)

// Prefs holds host preferences for the cube field window. The cube field itself has
// no tunables; these only shape the window around it.
type Prefs struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Title       string `yaml:"title"`
	TargetFPS   int    `yaml:"target_fps"`
	Fullscreen  bool   `yaml:"fullscreen"`
	Transparent bool   `yaml:"transparent"`
	MSAA        bool   `yaml:"msaa"`
	ShowFPS     bool   `yaml:"show_fps"`
	// Seed fixes the cube layout. 0 picks a new layout every run.
	Seed    uint64 `yaml:"seed,omitempty"`
	LogPath string `yaml:"log_path"`
}

// Default returns the default preferences (1280×720, 60 FPS, transparent, overlay off).
func Default() Prefs {
	return Prefs{
		Width:       1280,
		Height:      720,
		Title:       "cubefield",
		TargetFPS:   60,
		Fullscreen:  false,
		Transparent: true,
		MSAA:        true,
		ShowFPS:     false,
		LogPath:     "logs/cubefield.txt",
	}
}

// Load reads preferences from path. If the file is missing or invalid, returns
// Default() and does not create a file. Fields absent from the file keep their
// default values.
func Load(path string) (Prefs, error) {
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p, nil
}

// ApplyEnv overrides p with CUBEFIELD_SEED and CUBEFIELD_SHOW_FPS when set. Returns
// an error naming the variable if a value does not parse; p is left unchanged then.
func ApplyEnv(p Prefs) (Prefs, error) {
	out := p
	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return p, &EnvError{Key: EnvSeed, Err: err}
		}
		out.Seed = seed
	}
	if v, ok := os.LookupEnv(EnvShowFPS); ok && v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return p, &EnvError{Key: EnvShowFPS, Err: err}
		}
		out.ShowFPS = show
	}
	return out, nil
}

// EnvError reports an environment override that could not be parsed.
type EnvError struct {
	Key string
	Err error
}

func (e *EnvError) Error() string {
	return "engineconfig: " + e.Key + ": " + e.Err.Error()
}

func (e *EnvError) Unwrap() error {
	return e.Err
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p Prefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
