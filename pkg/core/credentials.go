package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// Credentials holds the Codex API key pair.
// An empty field counts as absent; signing requires both.
type Credentials struct {
	// PublicKey is the opaque key identifier sent as X-Public-Key.
	PublicKey string `json:"public_key" yaml:"public_key"`
	// SecretKey is the hex-encoded ed25519 seed. It never leaves the process.
	SecretKey string `json:"secret_key" yaml:"secret_key"`
}

// Complete reports whether both keys are set.
func (c *Credentials) Complete() bool {
	return c != nil && c.PublicKey != "" && c.SecretKey != ""
}

func (c *Credentials) String() string {
	if c == nil {
		return "Credentials{}"
	}
	return fmt.Sprintf("Credentials{PublicKey:%s, SecretKey:%s}", maskKey(c.PublicKey), maskKey(c.SecretKey))
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "****" + key[len(key)-4:]
}

// LoadCredentials reads a credentials file holding public_key and secret_key.
// Files ending in .yaml or .yml are parsed as YAML, anything else as JSON.
// ${VAR} references are expanded from the environment before parsing.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read credentials file: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))

	var creds Credentials
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(expanded, &creds); err != nil {
			return nil, fmt.Errorf("parse credentials yaml: %w", err)
		}
	default:
		if err := sonic.Unmarshal(expanded, &creds); err != nil {
			return nil, fmt.Errorf("parse credentials json: %w", err)
		}
	}

	return &creds, nil
}
