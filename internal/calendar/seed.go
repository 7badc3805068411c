package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// LoadSeedItems reads calendar items from a JSON file. Used on dev and demo
// setups to start with a populated calendar.
func LoadSeedItems(path string) ([]Item, error) {
	seedData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(seedData, &items); err != nil {
		return nil, fmt.Errorf("unmarshal seed file: %w", err)
	}

	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, fmt.Errorf("seed item %d: %w", i, err)
		}
	}

	return items, nil
}

// SeedFromFile loads the seed items into the repo, but only when the
// calendar is still empty. Safe to call on every startup.
func (s *Service) SeedFromFile(ctx context.Context, path string) error {
	existing, err := s.repo.List(ctx, ListParams{})
	if err != nil {
		return fmt.Errorf("list items: %w", err)
	}
	if len(existing) > 0 {
		log.Debugf("calendar seed skipped, %d items already present", len(existing))
		return nil
	}

	items, err := LoadSeedItems(path)
	if err != nil {
		return err
	}

	for i := range items {
		if _, err := s.Add(ctx, items[i]); err != nil {
			return fmt.Errorf("seed item %d: %w", i, err)
		}
	}

	log.Infof("calendar seeded with %d items from %s", len(items), path)
	return nil
}
