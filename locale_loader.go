package chronia

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LocaleLoader reads locale definitions from files. Each file holds one
// locale; the extension picks the format (.json, .yaml or .yml).
type LocaleLoader struct {
	paths []string
}

func NewLocaleLoader(paths ...string) *LocaleLoader {
	return &LocaleLoader{paths: append([]string(nil), paths...)}
}

// Load decodes every configured file and returns the locales in path
// order. Any unreadable or malformed file fails the whole load.
func (l *LocaleLoader) Load() ([]*Locale, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("chronia: no loader paths configured")
	}

	locales := make([]*Locale, 0, len(l.paths))
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("chronia: read %s: %w", path, err)
		}
		loc, err := decodeLocaleFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("chronia: decode %s: %w", path, err)
		}
		locales = append(locales, loc)
	}

	return locales, nil
}

// LoadAndRegister decodes every configured file and places each locale
// into the process-wide registry, making it reachable by tag.
func (l *LocaleLoader) LoadAndRegister() error {
	locales, err := l.Load()
	if err != nil {
		return err
	}
	for _, loc := range locales {
		if err := RegisterLocale(loc); err != nil {
			return err
		}
	}
	return nil
}

func decodeLocaleFile(path string, data []byte) (*Locale, error) {
	ext := strings.ToLower(filepath.Ext(path))

	var loc Locale
	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &loc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loc); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if err := validateLocale(&loc); err != nil {
		return nil, err
	}
	return &loc, nil
}
