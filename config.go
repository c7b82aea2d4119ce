package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

const (
	decodeErrorSkip  = "skip"
	decodeErrorAbort = "abort"
)

const defaultOutputPath = "./output_video.mp4"

// Config is the full run configuration: defaults, overlaid by the optional
// TOML config file, overlaid by explicitly set command-line flags.
type Config struct {
	TxtPath       string `toml:"txt_path"`
	ImgDir        string `toml:"img_dir"`
	OutputPath    string `toml:"output_path"`
	FPS           int    `toml:"fps"`
	Seed          int64  `toml:"seed"`
	OnDecodeError string `toml:"on_decode_error"`
}

func defaultConfig() *Config {
	return &Config{
		OutputPath:    defaultOutputPath,
		FPS:           30,
		OnDecodeError: decodeErrorSkip,
	}
}

// loadFile merges the TOML file at path into c. Keys absent from the file
// leave the current values untouched.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.TxtPath == "" {
		return errors.New("-txt_path is required (flag or config file)")
	}
	if c.ImgDir == "" {
		return errors.New("-img_dir is required (flag or config file)")
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	switch c.OnDecodeError {
	case decodeErrorSkip, decodeErrorAbort:
	default:
		return fmt.Errorf("on_decode_error must be %q or %q, got %q",
			decodeErrorSkip, decodeErrorAbort, c.OnDecodeError)
	}
	return nil
}
