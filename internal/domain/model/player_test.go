package model_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/okian/playrank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func statsWith(id string, scores ...int64) *model.PlayerStats {
	p := model.NewPlayerStats(id)
	for _, s := range scores {
		if err := p.AddScore(s); err != nil {
			panic(err)
		}
	}
	return p
}

func TestPlayerStats_AddScore(t *testing.T) {
	Convey("Given a new player", t, func() {
		p := model.NewPlayerStats("foo")

		Convey("When recording non-positive scores", func() {
			errNeg := p.AddScore(-1)
			errZero := p.AddScore(0)

			Convey("Then both are rejected and nothing is recorded", func() {
				So(errors.Is(errNeg, model.ErrInvalidScore), ShouldBeTrue)
				So(errors.Is(errZero, model.ErrInvalidScore), ShouldBeTrue)
				So(p.PlayCount(), ShouldEqual, 0)
				So(p.TotalScore().Sign(), ShouldEqual, 0)
			})
		})

		Convey("When recording positive scores", func() {
			So(p.AddScore(12345), ShouldBeNil)
			So(p.AddScore(12345), ShouldBeNil)

			Convey("Then totals and counts accumulate", func() {
				So(p.PlayCount(), ShouldEqual, 2)
				So(p.TotalScore().Int64(), ShouldEqual, 24690)
				So(p.MeanScore(), ShouldEqual, 12345)
			})
		})
	})
}

func TestPlayerStats_MeanScore(t *testing.T) {
	Convey("Given players with different score histories", t, func() {
		Convey("An exact mean is returned as is", func() {
			So(statsWith("a", 1, 3).MeanScore(), ShouldEqual, 2)
		})

		Convey("A mean of exactly x.5 rounds up", func() {
			So(statsWith("a", 1, 2).MeanScore(), ShouldEqual, 2)
			So(statsWith("a", 1, 2, 3, 4).MeanScore(), ShouldEqual, 3)
		})

		Convey("A mean below the halfway point rounds down", func() {
			So(statsWith("a", 1, 1, 2).MeanScore(), ShouldEqual, 1)
		})

		Convey("A mean above the halfway point rounds up", func() {
			So(statsWith("a", 1, 2, 2).MeanScore(), ShouldEqual, 2)
		})

		Convey("A player without plays has mean 0", func() {
			So(model.NewPlayerStats("a").MeanScore(), ShouldEqual, 0)
		})

		Convey("Totals beyond int64 do not overflow", func() {
			const maxInt64 = int64(^uint64(0) >> 1)
			p := statsWith("a", maxInt64, maxInt64, maxInt64)

			want := new(big.Int).Mul(big.NewInt(maxInt64), big.NewInt(3))
			So(p.TotalScore().Cmp(want), ShouldEqual, 0)
			So(p.MeanScore(), ShouldEqual, maxInt64)
		})
	})
}

func TestPlayerStats_Merge(t *testing.T) {
	Convey("Given two partial records for one player", t, func() {
		a := statsWith("p1", 1, 2)
		b := statsWith("p1", 3)

		Convey("When merging them", func() {
			So(a.Merge(b), ShouldBeNil)

			Convey("Then totals and counts are summed", func() {
				So(a.PlayCount(), ShouldEqual, 3)
				So(a.TotalScore().Int64(), ShouldEqual, 6)
				So(a.MeanScore(), ShouldEqual, 2)
			})
		})

		Convey("When merging a nil record", func() {
			So(a.Merge(nil), ShouldBeNil)
			So(a.PlayCount(), ShouldEqual, 2)
		})

		Convey("When merging a different player", func() {
			err := a.Merge(statsWith("p2", 10))

			Convey("Then it fails and leaves the record untouched", func() {
				So(errors.Is(err, model.ErrIdentifierMismatch), ShouldBeTrue)
				So(a.PlayCount(), ShouldEqual, 2)
			})
		})
	})
}
