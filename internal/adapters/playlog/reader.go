// Package playlog streams play-log rows from CSV input.
//
// Each record is [create_timestamp, player_id, score, ...]. The first record
// is a header and is skipped. Rows are decoded one at a time so memory stays
// bounded regardless of log size.
package playlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Column positions in a play-log record.
const (
	colTimestamp = iota
	colPlayerID
	colScore
	minFields
)

// Row is one decoded play-log record.
type Row struct {
	Line      int
	Timestamp string // passed through, not interpreted
	PlayerID  string
	Score     int64
}

// Reader decodes rows from an underlying io.Reader.
type Reader struct {
	csv        *csv.Reader
	comma      rune
	skipHeader bool
	started    bool
}

// NewReader wraps r. The caller owns r and is responsible for closing it.
func NewReader(r io.Reader, opts ...Option) *Reader {
	rd := &Reader{
		comma:      ',',
		skipHeader: true,
	}
	for _, opt := range opts {
		opt(rd)
	}

	c := csv.NewReader(r)
	c.Comma = rd.comma
	c.FieldsPerRecord = -1 // extra trailing columns are allowed
	c.ReuseRecord = true
	rd.csv = c
	return rd
}

// Next returns the next data row. It returns io.EOF once the input is
// exhausted and a *MalformedInputError for any unusable row.
func (r *Reader) Next() (Row, error) {
	if !r.started {
		r.started = true
		if r.skipHeader {
			if _, err := r.read(); err != nil {
				return Row{}, err
			}
		}
	}

	rec, err := r.read()
	if err != nil {
		return Row{}, err
	}
	line, _ := r.csv.FieldPos(0)
	return parseRecord(line, rec)
}

func (r *Reader) read() ([]string, error) {
	rec, err := r.csv.Read()
	if err == nil {
		return rec, nil
	}
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return nil, &MalformedInputError{Line: pe.StartLine, Err: pe.Err}
	}
	return nil, fmt.Errorf("read play log: %w", err)
}

func parseRecord(line int, rec []string) (Row, error) {
	if len(rec) < minFields {
		return Row{}, &MalformedInputError{
			Line: line,
			Err:  fmt.Errorf("%w: want at least %d, got %d", ErrTooFewFields, minFields, len(rec)),
		}
	}

	id := rec[colPlayerID]
	if id == "" {
		return Row{}, &MalformedInputError{Line: line, Field: "player_id", Err: ErrEmptyPlayerID}
	}

	score, err := ParseScore(rec[colScore])
	if err != nil {
		return Row{}, &MalformedInputError{Line: line, Field: "score", Value: rec[colScore], Err: err}
	}

	return Row{
		Line:      line,
		Timestamp: rec[colTimestamp],
		PlayerID:  id,
		Score:     score,
	}, nil
}

// ParseScore parses a base-10 integer literal. Surrounding spaces and a
// leading sign are accepted; floats, empty strings and values outside the
// int64 range are not. Positivity is checked when the score is recorded.
func ParseScore(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) {
			return 0, fmt.Errorf("%w: %v", ErrInvalidScore, ne.Err)
		}
		return 0, fmt.Errorf("%w: %v", ErrInvalidScore, err)
	}
	return v, nil
}
