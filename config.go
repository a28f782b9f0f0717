package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

const configFileName = ".squaredrc"

type Config struct {
	SaveDirectory string `env:"SQUARED_SAVE_DIR"`
	LogFile       string `env:"SQUARED_LOG_FILE"`
	Seed          int64  `env:"SQUARED_SEED"`
}

// loadConfig reads the rc file at path, or ~/.squaredrc when path is empty,
// then applies SQUARED_* environment overrides. A missing ~/.squaredrc is
// not an error; a missing explicit path is.
func loadConfig(path string) (*Config, error) {
	config := &Config{}

	homeDir, _ := os.UserHomeDir()
	explicit := path != ""
	if !explicit && homeDir != "" {
		path = filepath.Join(homeDir, configFileName)
	}

	if path != "" {
		file, err := os.Open(path)
		switch {
		case err == nil:
			defer file.Close()
			if err := parseConfig(file, homeDir, config); err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
		case explicit || !os.IsNotExist(err):
			return nil, fmt.Errorf("open config: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	config.SaveDirectory = expandPath(config.SaveDirectory, homeDir)
	return config, nil
}

// parseConfig reads key = value lines. Blank lines, # comments and unknown
// keys are skipped.
func parseConfig(r io.Reader, homeDir string, config *Config) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "savedirectory", "save_directory", "savedir":
			config.SaveDirectory = expandPath(value, homeDir)
		case "logfile", "log_file":
			config.LogFile = expandPath(value, homeDir)
		case "seed":
			seed, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return fmt.Errorf("seed %q: %w", value, err)
			}
			config.Seed = seed
		}
	}
	return scanner.Err()
}

func expandPath(value, homeDir string) string {
	if value == "" {
		return value
	}
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetSavePath joins filename under the save directory, creating the
// directory if needed.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.SaveDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.SaveDirectory, filename), nil
}
