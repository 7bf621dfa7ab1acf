package seeder

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/php-ini/thamaneya/internal/domain"
	showsvc "github.com/php-ini/thamaneya/internal/service/show"
)

// Fixture is the YAML document read by the seeder.
type Fixture struct {
	Shows []FixtureShow `yaml:"shows"`
}

// FixtureShow is one show in a fixture file. PublishDate is YYYY-MM-DD.
type FixtureShow struct {
	Title       string  `yaml:"title"`
	Description *string `yaml:"description"`
	Category    *string `yaml:"category"`
	Language    *string `yaml:"language"`
	Duration    *int    `yaml:"duration"`
	PublishDate string  `yaml:"publish_date"`
}

// LoadFixture reads and parses the fixture file at path.
func LoadFixture(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	return ParseFixture(f)
}

// ParseFixture decodes a fixture document. Unknown keys are rejected so that
// typos do not silently drop data.
func ParseFixture(r io.Reader) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return &fx, nil
		}
		return nil, fmt.Errorf("parse fixture: %w", err)
	}
	return &fx, nil
}

// toInput converts a fixture show to service input.
func (s FixtureShow) toInput() (showsvc.CreateShowInput, error) {
	input := showsvc.CreateShowInput{
		Title:       s.Title,
		Description: s.Description,
		Category:    s.Category,
		Language:    s.Language,
		Duration:    s.Duration,
	}
	if s.PublishDate != "" {
		t, err := time.Parse(time.DateOnly, s.PublishDate)
		if err != nil {
			return input, domain.NewValidationError("publish_date", fmt.Sprintf("%q must be YYYY-MM-DD", s.PublishDate))
		}
		input.PublishDate = &t
	}
	return input, nil
}
