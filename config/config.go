// Package config loads a Style from a YAML file on disk.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sv-tools/svfmt/format"
)

// FileName is the conventional config file name looked for in a
// project directory.
const FileName = ".svfmt.yaml"

// Load reads and parses a style file. Missing fields keep their
// DefaultStyle() value, since the document is unmarshalled into a
// DefaultStyle() value and Unmarshal only overwrites keys present in it.
func Load(path string) (format.Style, error) {
	style := format.DefaultStyle()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return style, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return format.Style{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, &style); err != nil {
		return format.Style{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	policy, err := unmarshalPolicy(raw)
	if err != nil {
		return format.Style{}, err
	}
	if policy != "" {
		p, err := format.ParseAlignmentPolicy(policy)
		if err != nil {
			return format.Style{}, fmt.Errorf("parsing %s: %w", path, err)
		}
		style.AlignmentPolicy = p
	}

	return style, nil
}

// unmarshalPolicy pulls out the alignment_policy string key separately,
// since format.Style.AlignmentPolicy is tagged yaml:"-" (it is an enum,
// not a plain YAML scalar type).
func unmarshalPolicy(raw []byte) (string, error) {
	var doc struct {
		AlignmentPolicy string `yaml:"alignment_policy"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return "", err
	}
	return doc.AlignmentPolicy, nil
}
