// Package ranking orders aggregated players by mean score and serializes
// the result as a CSV report.
//
// Ordering: mean score DESC, then player id ASC (deterministic).
// Players with equal means share a rank and the next distinct mean takes
// the rank equal to its 1-based position, so ranks may skip (1, 1, 3).
// Truncation never splits a tie group: once at least minCount entries are
// emitted, output stops before the next distinct mean.
package ranking

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/okian/playrank/internal/domain/model"
	"github.com/okian/playrank/internal/domain/types"
	"github.com/okian/playrank/pkg/metrics"
)

// Header is the first line of every serialized report.
var Header = []string{"rank", "player_id", "mean_score"} //nolint:gochecknoglobals // report schema

// Ranking is an immutable, ordered list of entries.
type Ranking struct {
	entries []types.Entry
}

// scored pairs a player with its mean so the mean is computed once.
type scored struct {
	id   string
	mean int64
}

// Build ranks players, emitting at least minCount entries (or all players
// when there are fewer) and extending past minCount only to finish a tie.
// Player ids must be unique.
func Build(players []*model.PlayerStats, minCount int, opts ...Option) (*Ranking, error) {
	b := builder{metrics: metrics.Default()}
	for _, opt := range opts {
		opt(&b)
	}

	start := time.Now()
	defer func() {
		b.metrics.RecordRankingDuration(float64(time.Since(start).Milliseconds()))
	}()

	if minCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMinCount, minCount)
	}

	seen := make(map[string]struct{}, len(players))
	candidates := make([]scored, 0, len(players))
	for _, p := range players {
		if p == nil {
			return nil, ErrNilPlayer
		}
		if _, dup := seen[p.ID]; dup {
			b.metrics.RecordErrorByComponent("ranking", "duplicate_identifier")
			return nil, fmt.Errorf("%w: %q", ErrDuplicateIdentifier, p.ID)
		}
		seen[p.ID] = struct{}{}
		candidates = append(candidates, scored{id: p.ID, mean: p.MeanScore()})
	}

	sortCandidates(candidates)
	entries := assignRanks(candidates, minCount)
	b.metrics.UpdateRankingEntries(len(entries))

	return &Ranking{entries: entries}, nil
}

// sortCandidates sorts by mean (descending) and id (ascending).
func sortCandidates(c []scored) {
	slices.SortFunc(c, func(a, b scored) int {
		if a.mean != b.mean {
			if a.mean > b.mean {
				return -1
			}
			return 1
		}
		return strings.Compare(a.id, b.id)
	})
}

// assignRanks walks sorted candidates once, sharing ranks on ties and
// stopping before the first new rank once minCount entries exist.
// The top group is always emitted, so minCount 0 still yields rank 1.
func assignRanks(c []scored, minCount int) []types.Entry {
	out := make([]types.Entry, 0, min(len(c), minCount))
	for i, cand := range c {
		rank := len(out) + 1
		switch {
		case i == 0:
		case cand.mean == c[i-1].mean:
			rank = out[len(out)-1].Rank
		case len(out) >= minCount:
			return out
		}
		out = append(out, types.Entry{Rank: rank, PlayerID: cand.id, MeanScore: cand.mean})
	}
	return out
}

// Entries returns a copy of the ranked entries.
func (r *Ranking) Entries() []types.Entry {
	return slices.Clone(r.entries)
}

// Len returns the number of ranked entries.
func (r *Ranking) Len() int { return len(r.entries) }

// WriteCSV writes the header and one line per entry, each terminated by "\n".
func (r *Ranking) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("write report header: %w", err)
	}
	row := make([]string, len(Header))
	for _, e := range r.entries {
		row[0] = strconv.Itoa(e.Rank)
		row[1] = e.PlayerID
		row[2] = strconv.FormatInt(e.MeanScore, 10)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write report row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}

// String returns the serialized report.
func (r *Ranking) String() string {
	var b strings.Builder
	_ = r.WriteCSV(&b) // strings.Builder never fails
	return b.String()
}
