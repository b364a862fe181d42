package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	kerrors "github.com/PolarWolf314/followscraper/internal/errors"
	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"
)

// unmarshal decodes data into config according to the extension of path.
// Files without a known extension are treated as JSON.
func unmarshal(path string, data []byte, config *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		_, err = toml.Decode(string(data), config)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", kerrors.ErrConfigInvalid, path, err)
	}
	return nil
}

// Save writes config to path in the format implied by its extension.
func Save(path string, config *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return SaveTOML(path, config)
	case ".yaml", ".yml":
		data, err := yaml.Marshal(config)
		if err != nil {
			return err
		}
		return writeFile(path, data)
	case ".json":
		data, err := json.MarshalIndent(config, "", "    ")
		if err != nil {
			return err
		}
		return writeFile(path, append(data, '\n'))
	default:
		return fmt.Errorf("%w: %s", kerrors.ErrUnsupportedFormat, path)
	}
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	// #nosec G306 -- the file holds API credentials.
	return os.WriteFile(path, data, 0600)
}
