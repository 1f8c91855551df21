package cmd

import (
	"errors"
	"os"

	"github.com/gravitrone/recycler/internal/config"
)

// LoadOrDefault returns the saved config, or the defaults when none exists.
// Any other load error is returned as is.
func LoadOrDefault() (*config.Config, error) {
	cfg, err := config.Load()
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		d := config.Default()
		return &d, nil
	}
	return nil, err
}
