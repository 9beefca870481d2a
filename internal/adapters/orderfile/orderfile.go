// Package orderfile persists the user-editable start order as a small YAML
// document, so an operator can hand-tune the order in a text editor between
// runs.
package orderfile

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"isrevy/internal/domain/model"
	"isrevy/internal/domain/order"
)

const filePermission = 0o600

// Document is the on-disk shape of a saved start order.
type Document struct {
	Version   int       `yaml:"version"`
	CreatedAt time.Time `yaml:"created_at"`
	RunID     string    `yaml:"run_id,omitempty"`
	Keys      []string  `yaml:"keys"`
}

// Save writes the start order for participants to path.
func Save(path string, participants []*model.Participant, runID string) error {
	doc := Document{
		Version:   order.FormatVersion,
		CreatedAt: time.Now().UTC(),
		RunID:     runID,
		Keys:      order.Keys(participants),
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.WriteFile(path, data, filePermission); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Load reads a saved start order from path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if doc.Version > order.FormatVersion {
		return Document{}, fmt.Errorf("%w: version %d is newer than this build understands", ErrVersion, doc.Version)
	}
	return doc, nil
}
