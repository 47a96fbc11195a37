package config

import (
	"encoding/json"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/raatiniemi/linker/pkg/errors"
)

// Encode serializes the configuration in the given format.
func Encode(cfg *Configuration, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(cfg, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatTOML:
		data, err = toml.Marshal(cfg)
	case FormatYAML:
		data, err = yaml.Marshal(cfg)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "unable to encode configuration as %s", format)
	}
	return data, nil
}
