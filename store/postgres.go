package store

import (
	"context"
	"database/sql"
	"math"
	"sort"

	"github.com/cockroachdb/errors"

	"legislators_dashboard/logger"
	"legislators_dashboard/models"
)

const (
	genderTable      = "gender_counts"
	religionTable    = "religion_counts"
	socialMediaTable = "social_media_counts"
	trafficTable     = "traffic_volumes"
)

const (
	genderQuery = `
		SELECT entity, male, female
		FROM gender_counts`

	religionQuery = `
		SELECT entity, christianity, islam, hinduism, buddhism, judaism, others
		FROM religion_counts`

	socialMediaQuery = `
		SELECT entity, twitter, facebook, youtube, instagram, website, linkedin
		FROM social_media_counts`

	trafficQuery = `
		SELECT year, entity, volume
		FROM traffic_volumes
		ORDER BY year, entity`
)

// LoadPostgres reads the four datasets from PostgreSQL. Count tables have
// one row per entity with one column per category, in label order; the
// traffic table is in long format (year, entity, volume).
func LoadPostgres(ctx context.Context, db *sql.DB) (*Store, error) {
	gender, err := queryCounts(ctx, db, genderTable, genderQuery, len(models.GenderGroup.Labels))
	if err != nil {
		return nil, err
	}
	religion, err := queryCounts(ctx, db, religionTable, religionQuery, len(models.ReligionGroup.Labels))
	if err != nil {
		return nil, err
	}
	socialMedia, err := queryCounts(ctx, db, socialMediaTable, socialMediaQuery, len(models.SocialMediaGroup.Labels))
	if err != nil {
		return nil, err
	}
	traffic, err := queryTraffic(ctx, db)
	if err != nil {
		return nil, err
	}

	s := New(gender, religion, socialMedia, traffic)
	logger.Logger.Infof("Loaded datasets from PostgreSQL: %+v", s.Stats())
	return s, nil
}

func queryCounts(ctx context.Context, db *sql.DB, table, query string, width int) (models.CountRecords, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, &LoadError{Source: table, Err: errors.Wrap(err, "query")}
	}
	defer rows.Close()

	records := models.CountRecords{}
	for rows.Next() {
		var entity string
		counts := make([]int64, width)
		dest := make([]interface{}, 0, width+1)
		dest = append(dest, &entity)
		for i := range counts {
			dest = append(dest, &counts[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, &LoadError{Source: table, Err: errors.Wrap(err, "scan")}
		}
		records[entity] = counts
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: table, Err: errors.Wrap(err, "iterate")}
	}
	return records, nil
}

func queryTraffic(ctx context.Context, db *sql.DB) (*models.TrafficTable, error) {
	rows, err := db.QueryContext(ctx, trafficQuery)
	if err != nil {
		return nil, &LoadError{Source: trafficTable, Err: errors.Wrap(err, "query")}
	}
	defer rows.Close()

	type cell struct {
		year   int
		entity string
		volume sql.NullFloat64
	}
	var cells []cell
	years := map[int]bool{}
	for rows.Next() {
		var c cell
		if err := rows.Scan(&c.year, &c.entity, &c.volume); err != nil {
			return nil, &LoadError{Source: trafficTable, Err: errors.Wrap(err, "scan")}
		}
		cells = append(cells, c)
		years[c.year] = true
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Source: trafficTable, Err: errors.Wrap(err, "iterate")}
	}

	table := &models.TrafficTable{Volumes: map[string][]float64{}}
	for y := range years {
		table.Years = append(table.Years, y)
	}
	sort.Ints(table.Years)
	rowOf := make(map[int]int, len(table.Years))
	for i, y := range table.Years {
		rowOf[y] = i
	}

	for _, c := range cells {
		col, ok := table.Volumes[c.entity]
		if !ok {
			col = make([]float64, len(table.Years))
			for i := range col {
				col[i] = math.NaN()
			}
			table.Volumes[c.entity] = col
		}
		if c.volume.Valid {
			col[rowOf[c.year]] = c.volume.Float64
		}
	}
	return table, nil
}
