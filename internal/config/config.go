// SPDX-License-Identifier: EPL-2.0

// Package config loads AUDXFORM_* settings from env files into the process
// environment, where the command line flags pick them up.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const (
	// KeyQuality is the resampler quality, 1 to 64.
	KeyQuality = "AUDXFORM_QUALITY"
	// KeyChunkMS is the source chunk duration in milliseconds.
	KeyChunkMS = "AUDXFORM_CHUNK_MS"
	// KeyQuiet suppresses trace logs when true.
	KeyQuiet = "AUDXFORM_QUIET"
)

// LocalFile is the env file read from the working directory.
const LocalFile = ".env"

// UserFile is the path of the per-user env file relative to the XDG config
// directories.
var UserFile = filepath.Join("audxform", "audxform.env")

// Load reads the local env file and then the per-user one. Variables that
// are already set are never overridden, so the process environment wins
// over the local file, which wins over the user file. It returns the files
// that were read.
func Load() ([]string, error) {
	paths := []string{LocalFile}
	if user, err := xdg.SearchConfigFile(UserFile); err == nil {
		paths = append(paths, user)
	}
	return LoadFiles(paths...)
}

// LoadFiles applies each existing env file in order and skips missing ones.
func LoadFiles(paths ...string) ([]string, error) {
	var loaded []string
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return loaded, fmt.Errorf("load %s: %w", path, err)
		}
		loaded = append(loaded, path)
	}
	return loaded, nil
}
