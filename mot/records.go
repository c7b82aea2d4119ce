package mot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Column order of the MOT challenge result format:
// frame,id,bb_left,bb_top,bb_width,bb_height,conf,x,y,z
const numColumns = 10

var (
	// ErrNotFound means the log path does not resolve to a readable file,
	// whether it is absent or unreadable.
	ErrNotFound = errors.New("tracking log not found")
	// ErrEmptyInput means the log exists but contains zero parseable rows.
	ErrEmptyInput = errors.New("tracking log contains no records")
)

// TrackRecord is one row of the tracking log.
type TrackRecord struct {
	Frame  int // 1-based frame number
	ID     int // track identity, repeated across frames for the same object
	Left   int
	Top    int
	Width  int
	Height int
	// Carried through from the log but not used for rendering.
	Conf float64
	X    float64
	Y    float64
	Z    float64
}

// Records holds every row of a log, indexed by frame number at load time
// so that rendering does a map lookup instead of rescanning all rows per
// frame. Immutable after Load returns.
type Records struct {
	rows    []TrackRecord
	byFrame map[int][]TrackRecord
}

// Load reads a headerless comma-delimited MOT result file. Every line must
// carry exactly ten fields; a malformed field is fatal and reported with its
// line number.
func Load(path string) (*Records, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open tracking log %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = numColumns
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse tracking log %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyInput, path)
	}

	recs := &Records{
		rows:    make([]TrackRecord, 0, len(rows)),
		byFrame: make(map[int][]TrackRecord),
	}
	for i, row := range rows {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("tracking log %s line %d: %w", path, i+1, err)
		}
		recs.rows = append(recs.rows, rec)
		recs.byFrame[rec.Frame] = append(recs.byFrame[rec.Frame], rec)
	}
	return recs, nil
}

// parseRow converts one CSV row into a TrackRecord. The integer columns go
// through ParseFloat first because some MOT exporters emit pixel values with
// a trailing decimal part ("912.0"); the fractional part is truncated.
func parseRow(row []string) (TrackRecord, error) {
	var rec TrackRecord

	intCols := []struct {
		name string
		dst  *int
	}{
		{"frame", &rec.Frame},
		{"id", &rec.ID},
		{"bb_left", &rec.Left},
		{"bb_top", &rec.Top},
		{"bb_width", &rec.Width},
		{"bb_height", &rec.Height},
	}
	for i, col := range intCols {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return rec, fmt.Errorf("column %s: %q is not numeric", col.name, row[i])
		}
		*col.dst = int(v)
	}

	floatCols := []struct {
		name string
		dst  *float64
	}{
		{"conf", &rec.Conf},
		{"x", &rec.X},
		{"y", &rec.Y},
		{"z", &rec.Z},
	}
	for i, col := range floatCols {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i+6]), 64)
		if err != nil {
			return rec, fmt.Errorf("column %s: %q is not numeric", col.name, row[i+6])
		}
		*col.dst = v
	}

	return rec, nil
}

// Len returns the total number of records in the log.
func (r *Records) Len() int { return len(r.rows) }

// ByFrame returns the records belonging to the given 1-based frame number,
// in log order. Frames with no records yield nil.
func (r *Records) ByFrame(frame int) []TrackRecord { return r.byFrame[frame] }

// IDs returns the distinct track ids across all frames, sorted ascending.
func (r *Records) IDs() []int {
	seen := make(map[int]struct{})
	for _, rec := range r.rows {
		seen[rec.ID] = struct{}{}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
