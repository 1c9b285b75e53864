// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads NCBI credentials from a directory of plain-text files.
// Each file holds one secret: the filename is the key and the trimmed file
// contents are the value.
//
// Supported key files: ncbi-api-key, ncbi-email.
package secrets

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Key files and the environment variables that back them.
const (
	NCBIAPIKey = "ncbi-api-key"
	NCBIEmail  = "ncbi-email"
)

var envFallback = map[string]string{
	NCBIAPIKey: "NCBI_API_KEY",
	NCBIEmail:  "NCBI_EMAIL",
}

// Secrets maps key file names to values.
type Secrets map[string]string

// Load reads every regular, non-hidden file in dir. A missing directory is
// not an error and yields an empty Secrets. Unreadable files are logged and
// skipped.
func Load(dir string) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			slog.Warn("could not read secret", "name", name, "err", err)
			continue
		}
		if v := strings.TrimSpace(string(data)); v != "" {
			s[name] = v
		}
	}
	return s, nil
}

// Get returns the value for key, falling back to its environment variable
// (NCBI_API_KEY, NCBI_EMAIL) when no file provided one.
func (s Secrets) Get(key string) string {
	if v, ok := s[key]; ok {
		return v
	}
	if env, ok := envFallback[key]; ok {
		return strings.TrimSpace(os.Getenv(env))
	}
	return ""
}

// Default returns explicit when set, otherwise Get(key).
func (s Secrets) Default(key, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return s.Get(key)
}
