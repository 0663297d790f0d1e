// Package aggregate folds a stream of play-log rows into per-player statistics.
package aggregate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/okian/playrank/internal/adapters/playlog"
	"github.com/okian/playrank/internal/domain/model"
	"github.com/okian/playrank/pkg/metrics"
)

const defaultCancelEvery = 4096

// RowSource yields play-log rows one at a time and io.EOF at the end.
type RowSource interface {
	Next() (playlog.Row, error)
}

// Aggregator keeps one PlayerStats per distinct player id. Memory is
// proportional to the number of players, never to the number of rows.
// An Aggregator is not safe for concurrent use.
type Aggregator struct {
	players     map[string]*model.PlayerStats
	rows        int64
	cancelEvery int
	metrics     *metrics.Manager
}

// New returns an empty aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		players:     make(map[string]*model.PlayerStats),
		cancelEvery: defaultCancelEvery,
		metrics:     metrics.Default(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Add records one row against its player, creating the player on first sight.
// A non-positive score is reported as a malformed row.
func (a *Aggregator) Add(row playlog.Row) error {
	p, ok := a.players[row.PlayerID]
	if !ok {
		p = model.NewPlayerStats(row.PlayerID)
	}
	if err := p.AddScore(row.Score); err != nil {
		return &playlog.MalformedInputError{
			Line:  row.Line,
			Field: "score",
			Value: fmt.Sprint(row.Score),
			Err:   err,
		}
	}
	if !ok {
		a.players[row.PlayerID] = p
	}
	a.rows++
	return nil
}

// Consume drains src into the aggregator. The first bad row aborts the
// whole pass; there is no partial result for a malformed log.
func (a *Aggregator) Consume(ctx context.Context, src RowSource) error {
	start := time.Now()
	defer func() {
		a.metrics.RecordAggregationDuration(float64(time.Since(start).Milliseconds()))
		a.metrics.UpdatePlayersTotal(len(a.players))
	}()

	for n := 0; ; n++ {
		if n%a.cancelEvery == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("aggregate: %w", err)
			}
		}

		row, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err == nil {
			err = a.Add(row)
		}
		if err != nil {
			if errors.Is(err, playlog.ErrMalformedInput) {
				a.metrics.RecordRowMalformed()
				a.metrics.RecordErrorByComponent("aggregate", "malformed_input")
			}
			return err
		}
		a.metrics.RecordRowRead()
	}
}

// Merge folds the statistics of other into a. Merging is associative and
// commutative, so partial aggregations of log chunks can be combined in any order.
func (a *Aggregator) Merge(other *Aggregator) error {
	if other == nil {
		return nil
	}
	for id, op := range other.players {
		p, ok := a.players[id]
		if !ok {
			p = model.NewPlayerStats(id)
			a.players[id] = p
		}
		if err := p.Merge(op); err != nil {
			return err
		}
	}
	a.rows += other.rows
	return nil
}

// Len returns the number of distinct players seen so far.
func (a *Aggregator) Len() int { return len(a.players) }

// Rows returns the number of rows recorded so far.
func (a *Aggregator) Rows() int64 { return a.rows }

// Players hands over the collected statistics in no particular order and
// resets the aggregator. The caller owns the returned records.
func (a *Aggregator) Players() []*model.PlayerStats {
	out := make([]*model.PlayerStats, 0, len(a.players))
	for _, p := range a.players {
		out = append(out, p)
	}
	a.players = make(map[string]*model.PlayerStats)
	a.rows = 0
	return out
}
