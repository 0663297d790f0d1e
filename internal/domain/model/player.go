// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// PlayerStats accumulates the scores recorded for one player.
// Equality is by ID alone; two records with the same ID describe the same player.
type PlayerStats struct {
	ID string

	total big.Int // sum of recorded scores, unbounded
	count int64   // number of recorded scores
}

// NewPlayerStats returns an empty record for id.
func NewPlayerStats(id string) *PlayerStats {
	return &PlayerStats{ID: id}
}

// AddScore records one play. Scores must be strictly positive.
func (p *PlayerStats) AddScore(score int64) error {
	if score <= 0 {
		return fmt.Errorf("%w: got %d for player %q", ErrInvalidScore, score, p.ID)
	}
	var s big.Int
	s.SetInt64(score)
	p.total.Add(&p.total, &s)
	p.count++
	return nil
}

// TotalScore returns a copy of the accumulated score sum.
func (p *PlayerStats) TotalScore() *big.Int {
	return new(big.Int).Set(&p.total)
}

// PlayCount returns the number of recorded plays.
func (p *PlayerStats) PlayCount() int64 {
	return p.count
}

// MeanScore returns TotalScore/PlayCount rounded half up to an integer.
// The division is exact decimal arithmetic, so x.5 always rounds up.
// A record without plays has a mean of 0.
func (p *PlayerStats) MeanScore() int64 {
	if p.count == 0 {
		return 0
	}
	total := decimal.NewFromBigInt(&p.total, 0)
	return total.DivRound(decimal.NewFromInt(p.count), 0).IntPart()
}

// Merge folds other into p. Both records must describe the same player.
func (p *PlayerStats) Merge(other *PlayerStats) error {
	if other == nil {
		return nil
	}
	if other.ID != p.ID {
		return fmt.Errorf("%w: %q and %q", ErrIdentifierMismatch, p.ID, other.ID)
	}
	p.total.Add(&p.total, &other.total)
	p.count += other.count
	return nil
}
