package store

import (
	"context"
	"math"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legislators_dashboard/models"
)

func expectCounts(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("FROM gender_counts").WillReturnRows(
		sqlmock.NewRows([]string{"entity", "male", "female"}).
			AddRow("Austria", 120, 63).
			AddRow("Brazil", 450, 77))
	mock.ExpectQuery("FROM religion_counts").WillReturnRows(
		sqlmock.NewRows([]string{"entity", "christianity", "islam", "hinduism", "buddhism", "judaism", "others"}).
			AddRow("Austria", 90, 2, 0, 0, 1, 5))
	mock.ExpectQuery("FROM social_media_counts").WillReturnRows(
		sqlmock.NewRows([]string{"entity", "twitter", "facebook", "youtube", "instagram", "website", "linkedin"}).
			AddRow("Brazil", 200, 300, 50, 150, 400, 20))
}

func TestLoadPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectCounts(mock)
	mock.ExpectQuery("FROM traffic_volumes").WillReturnRows(
		sqlmock.NewRows([]string{"year", "entity", "volume"}).
			AddRow(2018, "Austria", 1200.0).
			AddRow(2019, "Austria", 1500.5).
			AddRow(2019, "Brazil", nil).
			AddRow(2020, "Brazil", 3500.0))

	s, err := LoadPostgres(context.Background(), db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, []string{"Austria"}, s.Entities())

	rec, ok := s.RecordFor(models.GroupGender, "Brazil")
	require.True(t, ok)
	assert.Equal(t, []int64{450, 77}, rec)

	rec, ok = s.RecordFor(models.GroupSocialMedia, "Brazil")
	require.True(t, ok)
	assert.Equal(t, []int64{200, 300, 50, 150, 400, 20}, rec)

	traffic := s.Traffic()
	assert.Equal(t, []int{2018, 2019, 2020}, traffic.Years)

	austria := traffic.Volumes["Austria"]
	assert.Equal(t, 1200.0, austria[0])
	assert.Equal(t, 1500.5, austria[1])
	assert.True(t, math.IsNaN(austria[2]))

	brazil := traffic.Volumes["Brazil"]
	assert.True(t, math.IsNaN(brazil[0]))
	assert.True(t, math.IsNaN(brazil[1]))
	assert.Equal(t, 3500.0, brazil[2])
}

func TestLoadPostgresQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM gender_counts").WillReturnRows(
		sqlmock.NewRows([]string{"entity", "male", "female"}).AddRow("Austria", 1, 2))
	mock.ExpectQuery("FROM religion_counts").WillReturnError(errors.New("relation does not exist"))

	_, err = LoadPostgres(context.Background(), db)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "religion_counts", loadErr.Source)
	assert.Contains(t, err.Error(), "relation does not exist")
}

func TestLoadPostgresTrafficScanError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectCounts(mock)
	mock.ExpectQuery("FROM traffic_volumes").WillReturnRows(
		sqlmock.NewRows([]string{"year", "entity", "volume"}).AddRow("not-a-year", "Austria", 1.0))

	_, err = LoadPostgres(context.Background(), db)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "traffic_volumes", loadErr.Source)
}
