package circuit

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Config mirrors a circuit JSON file: the board image plus the peripheral
// devices wired to it.
type Config struct {
	ImagePath   string             `json:"Image path"`
	Peripherals []PeripheralConfig `json:"Peripherals"`
}

// PeripheralConfig is one entry of the "Peripherals" array. The
// initializer layout depends on the class, so it stays raw until the
// peripheral factory interprets it.
type PeripheralConfig struct {
	Class       string          `json:"Class"`
	Initializer json.RawMessage `json:"Initializer"`
}

// LoadConfig reads the circuit JSON at path. A relative image path is
// resolved against the directory of the JSON file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read circuit json")
	}
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse circuit json %s", path)
	}
	if cfg.ImagePath == "" {
		return nil, errors.Errorf("circuit json %s: missing \"Image path\"", path)
	}
	if !filepath.IsAbs(cfg.ImagePath) {
		cfg.ImagePath = filepath.Join(filepath.Dir(path), cfg.ImagePath)
	}
	return cfg, nil
}
