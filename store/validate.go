package store

import (
	"sort"

	"github.com/cockroachdb/errors"

	"legislators_dashboard/models"
)

// Validate checks that every count tuple has exactly one value per label of
// its group. Loading never calls it; strict deployments opt in.
func Validate(s *Store) error {
	for _, g := range models.Groups() {
		records := s.records(g.ID)
		entities := make([]string, 0, len(records))
		for e := range records {
			entities = append(entities, e)
		}
		sort.Strings(entities)
		for _, e := range entities {
			if n := len(records[e]); n != len(g.Labels) {
				return &LoadError{
					Source: string(g.ID),
					Err:    errors.Newf("entity %q has %d values, want %d", e, n, len(g.Labels)),
				}
			}
		}
	}
	return nil
}
