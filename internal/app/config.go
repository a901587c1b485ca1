package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pelletier/go-toml/v2"

	"cardbank/internal/logger"
	"cardbank/internal/money"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	DataFile string        `toml:"data_file" env:"CARDBANK_DATA_FILE"` // store file, .json or .toml
	Currency string        `toml:"currency" env:"CARDBANK_CURRENCY"`   // ISO 4217 code used for display
	Log      logger.Config `toml:"log"`
}

// DefaultConfig returns the built-in settings: the store under
// $HOME/.cardbank, USD display and warn level text logs.
func DefaultConfig() Config {
	dataFile := "accounts.json"
	if home, err := os.UserHomeDir(); err == nil {
		dataFile = filepath.Join(home, ".cardbank", "accounts.json")
	}
	return Config{
		DataFile: dataFile,
		Currency: money.DefaultCurrency,
		Log:      logger.Config{Level: "warn", Format: "text"},
	}
}

// LoadConfig starts from DefaultConfig, decodes the TOML file at path over it
// when path is set, then applies CARDBANK_* environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to open config: %w", err)
		}
		if err := toml.Unmarshal(b, &cfg); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				row, col := derr.Position()
				return Config{}, fmt.Errorf("config %s:%d:%d: %w", path, row, col, err)
			}
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("couldn't read environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects an empty data file and unknown currencies.
func (c Config) Validate() error {
	if c.DataFile == "" {
		return errors.New("config: data_file is empty")
	}
	if !money.Known(c.Currency) {
		return fmt.Errorf("config: unknown currency %q", c.Currency)
	}
	return nil
}
