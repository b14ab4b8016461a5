package listview

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"gopkg.in/yaml.v3"
)

// KeyMapFile is the YAML form of a keymap.
//
//	profile: vim
//	bindings:
//	  navigate_up: [up, k]
//	  delete: []        # unbind
//
// Binding names are view action names plus toggle_guides, toggle_help,
// confirm, cancel and backspace. Unnamed actions keep the profile bindings.
type KeyMapFile struct {
	Profile  string              `yaml:"profile"`
	Bindings map[string][]string `yaml:"bindings"`
}

// LoadKeyMap decodes a KeyMapFile from r and builds its KeyMap.
// An empty document yields DefaultKeyMap.
func LoadKeyMap(r io.Reader) (KeyMap, error) {
	var f KeyMapFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return KeyMap{}, fmt.Errorf("decode keymap: %w", err)
	}
	return f.KeyMap()
}

// KeyMap applies the overrides on top of the selected profile.
func (f KeyMapFile) KeyMap() (KeyMap, error) {
	p := ProfileDefault
	if f.Profile != "" {
		var ok bool
		if p, ok = ParseProfile(f.Profile); !ok {
			return KeyMap{}, fmt.Errorf("keymap: unknown profile %q", f.Profile)
		}
	}
	km := KeyMapFor(p)

	names := make([]string, 0, len(f.Bindings))
	for name := range f.Bindings {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		b, ok := km.lookup(name)
		if !ok {
			return KeyMap{}, fmt.Errorf("keymap: unknown binding %q", name)
		}
		keys := f.Bindings[name]
		if len(keys) == 0 {
			*b = key.NewBinding(key.WithDisabled())
			continue
		}
		*b = key.NewBinding(key.WithKeys(keys...), key.WithHelp(strings.Join(keys, "/"), b.Help().Desc))
	}
	return km, nil
}
