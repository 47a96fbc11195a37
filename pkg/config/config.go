package config

import (
	"regexp"
	"strings"

	"github.com/raatiniemi/linker/pkg/errors"
)

// Configuration is the validated input of a run.
type Configuration struct {
	Source   string    `json:"source" toml:"source" yaml:"source"`
	Targets  []string  `json:"targets" toml:"targets" yaml:"targets"`
	Excludes []string  `json:"excludes" toml:"excludes" yaml:"excludes"`
	LinkMaps []LinkMap `json:"linkMaps" toml:"linkMaps" yaml:"linkMaps"`
}

// LinkMap routes entries whose basename matches Regex into Target.
type LinkMap struct {
	Regex  string `json:"regex" toml:"regex" yaml:"regex"`
	Target string `json:"target" toml:"target" yaml:"target"`
}

// rawConfiguration is the shape decoded from koanf before normalization.
// Link maps stay loosely typed so that malformed entries can be dropped
// instead of failing the decode.
type rawConfiguration struct {
	Source   string                   `koanf:"source"`
	Targets  []string                 `koanf:"targets"`
	Excludes []string                 `koanf:"excludes"`
	LinkMaps []map[string]interface{} `koanf:"linkMaps"`
}

func (r rawConfiguration) normalize() *Configuration {
	cfg := &Configuration{
		Source:   r.Source,
		Targets:  append([]string{}, r.Targets...),
		Excludes: make([]string, 0, len(r.Excludes)),
		LinkMaps: make([]LinkMap, 0, len(r.LinkMaps)),
	}

	for _, exclude := range r.Excludes {
		cfg.Excludes = append(cfg.Excludes, strings.ToLower(exclude))
	}

	for _, m := range r.LinkMaps {
		regex, _ := m["regex"].(string)
		target, _ := m["target"].(string)
		if regex == "" || target == "" {
			continue
		}
		cfg.LinkMaps = append(cfg.LinkMaps, LinkMap{Regex: regex, Target: target})
	}

	return cfg
}

// Validate checks the requirements a run depends on.
func (c *Configuration) Validate() error {
	if c.Source == "" {
		return errors.New(errors.ErrConfigInvalid, "configuration is missing valid source")
	}
	if len(c.Targets) == 0 {
		return errors.New(errors.ErrConfigInvalid, "configuration is missing valid targets")
	}
	for _, m := range c.LinkMaps {
		if _, err := regexp.Compile(m.Regex); err != nil {
			return errors.Wrapf(err, errors.ErrRegexInvalid, "unable to build regex: %q", m.Regex).
				WithDetail("regex", m.Regex)
		}
	}
	return nil
}
