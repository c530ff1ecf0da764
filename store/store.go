// Package store holds the read-only datasets behind the dashboard.
//
// A Store is built once at startup, from JSON/CSV files or from PostgreSQL,
// and is never mutated afterwards, so it is safe to share between requests.
package store

import (
	"fmt"
	"sort"

	"legislators_dashboard/models"
)

// LoadError reports a dataset that could not be loaded. Source names the
// file or table involved.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

type Store struct {
	gender      models.CountRecords
	religion    models.CountRecords
	socialMedia models.CountRecords
	traffic     *models.TrafficTable
	entities    []string
}

// Stats summarises the loaded datasets.
type Stats struct {
	Entities      int `json:"entities"`
	Gender        int `json:"gender"`
	Religion      int `json:"religion"`
	SocialMedia   int `json:"social_media"`
	TrafficYears  int `json:"traffic_years"`
	TrafficSeries int `json:"traffic_series"`
}

// New builds a Store from already decoded datasets.
func New(gender, religion, socialMedia models.CountRecords, traffic *models.TrafficTable) *Store {
	if traffic == nil {
		traffic = &models.TrafficTable{Volumes: map[string][]float64{}}
	}
	s := &Store{
		gender:      gender,
		religion:    religion,
		socialMedia: socialMedia,
		traffic:     traffic,
	}
	s.entities = intersectKeys(gender, religion)
	return s
}

func intersectKeys(a, b models.CountRecords) []string {
	out := make([]string, 0, len(a))
	for k := range a {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// RecordFor returns the count tuple of entity in the given group.
func (s *Store) RecordFor(group models.GroupID, entity string) ([]int64, bool) {
	records := s.records(group)
	if records == nil {
		return nil, false
	}
	rec, ok := records[entity]
	return rec, ok
}

func (s *Store) records(group models.GroupID) models.CountRecords {
	switch group {
	case models.GroupGender:
		return s.gender
	case models.GroupReligion:
		return s.religion
	case models.GroupSocialMedia:
		return s.socialMedia
	}
	return nil
}

// Entities returns the selectable entities: the sorted intersection of the
// gender and religion dataset keys.
func (s *Store) Entities() []string {
	return append([]string{}, s.entities...)
}

func (s *Store) Traffic() *models.TrafficTable {
	return s.traffic
}

func (s *Store) Stats() Stats {
	return Stats{
		Entities:      len(s.entities),
		Gender:        len(s.gender),
		Religion:      len(s.religion),
		SocialMedia:   len(s.socialMedia),
		TrafficYears:  len(s.traffic.Years),
		TrafficSeries: len(s.traffic.Volumes),
	}
}
