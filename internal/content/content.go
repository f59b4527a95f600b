package content

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one educational blurb: the text behind the app's "learn more"
// modals for a sign, number, animal or planet.
type Entry struct {
	Name    string `yaml:"name" json:"name"`
	Title   string `yaml:"title" json:"title"`
	Summary string `yaml:"summary" json:"summary"`
	Detail  string `yaml:"detail,omitempty" json:"detail,omitempty"`
}

type file struct {
	Signs   []Entry `yaml:"signs"`
	Numbers []Entry `yaml:"numbers"`
	Animals []Entry `yaml:"animals"`
	Planets []Entry `yaml:"planets"`
}

// Store holds the loaded content, indexed by lowercased name per category.
type Store struct {
	Signs   []Entry
	Numbers []Entry
	Animals []Entry
	Planets []Entry

	index map[string]map[string]Entry
}

// Load reads the YAML content file and builds the lookup index.
func Load(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("parse content yaml: %w", err)
	}

	s := &Store{
		Signs:   f.Signs,
		Numbers: f.Numbers,
		Animals: f.Animals,
		Planets: f.Planets,
		index:   make(map[string]map[string]Entry, 4),
	}
	s.indexCategory("signs", f.Signs)
	s.indexCategory("numbers", f.Numbers)
	s.indexCategory("animals", f.Animals)
	s.indexCategory("planets", f.Planets)
	return s, nil
}

func (s *Store) indexCategory(category string, entries []Entry) {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[strings.ToLower(e.Name)] = e
	}
	s.index[category] = m
}

// Lookup finds an entry by category and name, case-insensitively.
func (s *Store) Lookup(category, name string) (Entry, bool) {
	m, ok := s.index[category]
	if !ok {
		return Entry{}, false
	}
	e, ok := m[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// List returns all entries of a category, nil if the category is unknown.
func (s *Store) List(category string) []Entry {
	switch category {
	case "signs":
		return s.Signs
	case "numbers":
		return s.Numbers
	case "animals":
		return s.Animals
	case "planets":
		return s.Planets
	}
	return nil
}
