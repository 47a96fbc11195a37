package config

import (
	"bytes"
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/raatiniemi/linker/pkg/errors"
)

// Format is a configuration file format.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// EnvPrefix prefixes the environment variables overriding file values.
const EnvPrefix = "LINKER_"

// FormatFromPath picks the format from the file extension, JSON otherwise.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatJSON, FormatTOML, FormatYAML:
		return f, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported format %q", name)
	}
}

func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatJSON:
		return json.Parser(), nil
	case FormatTOML:
		return toml.Parser(), nil
	case FormatYAML:
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported format %q", format)
	}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"source":   "",
		"targets":  []string{},
		"excludes": []string{},
		"linkMaps": []interface{}{},
	}
}

// Load reads, normalizes and validates the configuration at path.
func Load(path string) (*Configuration, error) {
	data, err := file.Provider(path).ReadBytes()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "unable to read configuration file at path %s", path).
			WithDetail("path", path)
	}

	k, err := load(data, FormatFromPath(path))
	if err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "unable to read environment overrides")
	}

	return finish(k)
}

// Parse normalizes and validates configuration data in the given format.
// Environment overrides are not applied.
func Parse(data []byte, format Format) (*Configuration, error) {
	k, err := load(data, format)
	if err != nil {
		return nil, err
	}
	return finish(k)
}

func load(data []byte, format Format) (*koanf.Koanf, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "unable to load defaults")
	}

	// An empty file is an empty configuration, rejected later by validation.
	if len(bytes.TrimSpace(data)) == 0 {
		return k, nil
	}

	parser, err := parserFor(format)
	if err != nil {
		return nil, err
	}
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "unable to parse %s configuration", format)
	}
	return k, nil
}

func finish(k *koanf.Koanf) (*Configuration, error) {
	var raw rawConfiguration
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:     &raw,
			DecodeHook: mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &raw, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid value in configuration")
	}

	cfg := raw.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps LINKER_SOURCE to "source" and so on; other variables are ignored.
func envKey(name string) string {
	switch key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix)); key {
	case "source", "targets", "excludes":
		return key
	default:
		return ""
	}
}
