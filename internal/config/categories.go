package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/nostrmaps/location-etl/internal/domain"
	"gopkg.in/yaml.v3"
)

// Category file validation errors.
var (
	ErrNoCategories        = errors.New("at least one category is required")
	ErrCategoryMissingName = errors.New("category name is required")
	ErrCategoryNoKinds     = errors.New("category needs at least one kind")
	ErrCategoryBadKind     = errors.New("category kinds must be non-negative")
	ErrDuplicateCategory   = errors.New("duplicate category name")
)

// categoryFile is the YAML layout of a category configuration file:
//
//	categories:
//	  - name: calendar
//	    kinds: [31922, 31923, 31924, 31925]
//	  - name: notes
//	    kinds: [1]
type categoryFile struct {
	Categories []domain.Category `yaml:"categories"`
}

// LoadCategories reads and validates a category table from a YAML file. The
// table maps category names to the Nostr kind numbers requested from relays;
// keeping it in a file means new categories reach the pipeline without code
// changes.
func LoadCategories(path string) ([]domain.Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read category file: %w", err)
	}

	var f categoryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse category file: %w", err)
	}

	if err := validateCategories(f.Categories); err != nil {
		return nil, fmt.Errorf("category file %s: %w", path, err)
	}
	return f.Categories, nil
}

func validateCategories(categories []domain.Category) error {
	if len(categories) == 0 {
		return ErrNoCategories
	}
	seen := make(map[string]struct{}, len(categories))
	for _, cat := range categories {
		if cat.Name == "" {
			return ErrCategoryMissingName
		}
		if _, dup := seen[cat.Name]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateCategory, cat.Name)
		}
		seen[cat.Name] = struct{}{}
		if len(cat.Kinds) == 0 {
			return fmt.Errorf("%w: %s", ErrCategoryNoKinds, cat.Name)
		}
		for _, kind := range cat.Kinds {
			if kind < 0 {
				return fmt.Errorf("%w: %s has kind %d", ErrCategoryBadKind, cat.Name, kind)
			}
		}
	}
	return nil
}
