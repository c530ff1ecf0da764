package store

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"legislators_dashboard/logger"
	"legislators_dashboard/models"
)

const (
	GenderFile      = "gender_dict.json"
	ReligionFile    = "religion_dict.json"
	SocialMediaFile = "social_media_dict.json"
	TrafficFile     = "traffic_df.csv"

	yearColumn = "year"
)

// Load reads the four dataset files from dir.
func Load(dir string) (*Store, error) {
	gender, err := loadCountsFile(filepath.Join(dir, GenderFile))
	if err != nil {
		return nil, err
	}
	religion, err := loadCountsFile(filepath.Join(dir, ReligionFile))
	if err != nil {
		return nil, err
	}
	socialMedia, err := loadCountsFile(filepath.Join(dir, SocialMediaFile))
	if err != nil {
		return nil, err
	}
	traffic, err := loadTrafficFile(filepath.Join(dir, TrafficFile))
	if err != nil {
		return nil, err
	}

	s := New(gender, religion, socialMedia, traffic)
	logger.Logger.Infof("Loaded datasets from %s: %+v", dir, s.Stats())
	return s, nil
}

func loadCountsFile(path string) (models.CountRecords, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	records, err := DecodeCounts(f)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return records, nil
}

// DecodeCounts decodes an object mapping entity names to arrays of integer counts.
func DecodeCounts(r io.Reader) (models.CountRecords, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw map[string][]json.Number
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decode counts")
	}

	records := make(models.CountRecords, len(raw))
	for entity, nums := range raw {
		tuple := make([]int64, len(nums))
		for i, n := range nums {
			v, err := parseCount(n)
			if err != nil {
				return nil, errors.Wrapf(err, "entity %q index %d", entity, i)
			}
			tuple[i] = v
		}
		records[entity] = tuple
	}
	return records, nil
}

func parseCount(n json.Number) (int64, error) {
	if v, err := n.Int64(); err == nil {
		return v, nil
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) {
		return 0, errors.Newf("count %q is not an integer", n.String())
	}
	return int64(f), nil
}

func loadTrafficFile(path string) (*models.TrafficTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()

	table, err := DecodeTraffic(f)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return table, nil
}

// DecodeTraffic reads a CSV with a "year" column and one numeric column per
// entity. Empty cells are stored as NaN. Rows are returned in ascending year order.
func DecodeTraffic(r io.Reader) (*models.TrafficTable, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	yearIdx := -1
	for i, name := range header {
		header[i] = strings.TrimSpace(name)
		if header[i] == yearColumn {
			yearIdx = i
		}
	}
	if yearIdx < 0 {
		return nil, errors.Newf("no %q column to index by", yearColumn)
	}

	type row struct {
		year  int
		cells []float64
	}
	var rows []row
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		year, err := parseYear(rec[yearIdx])
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		cells := make([]float64, len(header))
		for i, cell := range rec {
			if i == yearIdx {
				continue
			}
			cell = strings.TrimSpace(cell)
			if cell == "" {
				cells[i] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d column %q", line, header[i])
			}
			cells[i] = v
		}
		rows = append(rows, row{year: year, cells: cells})
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].year < rows[j].year })

	table := &models.TrafficTable{
		Years:   make([]int, len(rows)),
		Volumes: make(map[string][]float64, len(header)-1),
	}
	for i, rw := range rows {
		table.Years[i] = rw.year
	}
	for c, name := range header {
		if c == yearIdx || name == "" {
			continue
		}
		col := make([]float64, len(rows))
		for i, rw := range rows {
			col[i] = rw.cells[c]
		}
		table.Volumes[name] = col
	}
	return table, nil
}

func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, errors.Newf("year %q is not an integer", s)
	}
	return int(f), nil
}
