// Package data provides the read-only portfolio records the knowledge base is built from.
package data

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"portfolio-chat/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed portfolio.yaml
var embeddedPortfolio []byte

// Load decodes the portfolio bundled with the binary.
func Load() (*models.Portfolio, error) {
	return Decode(embeddedPortfolio)
}

// LoadFile decodes a portfolio from disk, used to override the bundled data.
func LoadFile(path string) (*models.Portfolio, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio file: %w", err)
	}
	return Decode(raw)
}

// Decode parses a YAML portfolio document. Unknown keys are rejected so that
// typos in hand-edited data fail loudly instead of silently dropping content.
func Decode(raw []byte) (*models.Portfolio, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var p models.Portfolio
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio: %w", err)
	}
	return &p, nil
}
