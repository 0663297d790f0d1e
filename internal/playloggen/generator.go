// Package playloggen writes synthetic play logs for load tests and benchmarks.
package playloggen

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"
)

// TimestampLayout is the create_timestamp format of generated rows.
const TimestampLayout = "2006/01/02 15:04"

const cancelCheckEvery = 1024

// ErrInvalidConfig is returned for non-positive row or player counts.
var ErrInvalidConfig = errors.New("invalid generator config")

// tier is a score band a player draws from.
type tier struct {
	min, span int
}

// Players cycle through these bands so rankings get both spread and ties.
var tiers = []tier{ //nolint:gochecknoglobals // fixed score distribution
	{min: 3000, span: 4000}, // average
	{min: 7000, span: 2000}, // high
	{min: 100, span: 2900},  // low
	{min: 9000, span: 1000}, // elite
	{min: 1, span: 900},     // very low
	{min: 100, span: 9900},  // wide
}

// Config controls the generated log.
type Config struct {
	Rows     int           // data rows to write
	Players  int           // distinct player ids to draw from
	Seed     int64         // rng seed; equal seeds give equal logs
	Start    time.Time     // timestamp of the first row
	Interval time.Duration // timestamp step between rows
}

// Stats summarizes a generated log.
type Stats struct {
	Rows    int
	Players int
}

// PlayerID returns the id of the i-th generated player.
func PlayerID(i int) string {
	return fmt.Sprintf("player%04d", i)
}

// Generate writes a header and cfg.Rows data rows to w.
func Generate(ctx context.Context, w io.Writer, cfg Config) (Stats, error) {
	if cfg.Rows < 0 || cfg.Players <= 0 {
		return Stats{}, fmt.Errorf("%w: rows=%d players=%d", ErrInvalidConfig, cfg.Rows, cfg.Players)
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.Start.IsZero() {
		cfg.Start = time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic test data
	bw := bufio.NewWriter(w)
	cw := csv.NewWriter(bw)

	if err := cw.Write([]string{"create_timestamp", "player_id", "score"}); err != nil {
		return Stats{}, fmt.Errorf("write header: %w", err)
	}

	seen := make(map[int]struct{}, min(cfg.Players, cfg.Rows))
	row := make([]string, 3)
	for i := 0; i < cfg.Rows; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Stats{}, fmt.Errorf("generate: %w", err)
			}
		}

		p := rng.Intn(cfg.Players)
		seen[p] = struct{}{}
		t := tiers[p%len(tiers)]

		row[0] = cfg.Start.Add(time.Duration(i) * cfg.Interval).Format(TimestampLayout)
		row[1] = PlayerID(p)
		row[2] = strconv.Itoa(t.min + rng.Intn(t.span))
		if err := cw.Write(row); err != nil {
			return Stats{}, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return Stats{}, fmt.Errorf("flush rows: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return Stats{}, fmt.Errorf("flush output: %w", err)
	}
	return Stats{Rows: cfg.Rows, Players: len(seen)}, nil
}
