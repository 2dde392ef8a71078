// Package yaml loads source lists from YAML files.
package yaml

import (
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/orgscout"
	yamlv3 "gopkg.in/yaml.v3"
)

// SourceFile is the schema of a source list file.
type SourceFile struct {
	Sources []SourceEntry `yaml:"sources"`
}

// SourceEntry is one source in a source list file.
type SourceEntry struct {
	Name       string   `yaml:"name"`
	URL        string   `yaml:"url"`
	Expected   int      `yaml:"expected"`
	Alternates []string `yaml:"alternates"`
}

// LoadSources decodes a source list. Unknown keys, invalid entries and
// repeated names are rejected with EINVALID. An empty document yields no
// sources.
func LoadSources(r io.Reader) ([]*orgscout.Source, error) {
	dec := yamlv3.NewDecoder(r)
	dec.KnownFields(true)

	var file SourceFile
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, orgscout.Errorf(orgscout.EINVALID, "invalid source file: %v", err)
	}

	seen := make(map[string]bool, len(file.Sources))
	sources := make([]*orgscout.Source, 0, len(file.Sources))
	for i, e := range file.Sources {
		src := &orgscout.Source{
			Name:       strings.TrimSpace(e.Name),
			URL:        strings.TrimSpace(e.URL),
			Expected:   e.Expected,
			Alternates: trimAll(e.Alternates),
		}
		if err := src.Validate(); err != nil {
			return nil, orgscout.Errorf(orgscout.EINVALID, "source %d: %s", i+1, orgscout.ErrorMessage(err))
		}
		if seen[src.Name] {
			return nil, orgscout.Errorf(orgscout.EINVALID, "source %d: duplicate name %q", i+1, src.Name)
		}
		seen[src.Name] = true
		sources = append(sources, src)
	}
	return sources, nil
}

func trimAll(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
