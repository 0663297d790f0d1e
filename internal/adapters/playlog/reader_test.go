package playlog_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/okian/playrank/internal/adapters/playlog"
	. "github.com/smartystreets/goconvey/convey"
)

const header = "create_timestamp,player_id,score\n"

func readAll(r *playlog.Reader) ([]playlog.Row, error) {
	var rows []playlog.Row
	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, err
		}
		rows = append(rows, row)
	}
}

func TestReader_Next(t *testing.T) {
	Convey("Given a play log reader", t, func() {
		Convey("When the input is empty", func() {
			rows, err := readAll(playlog.NewReader(strings.NewReader("")))

			Convey("Then no rows are produced", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldBeEmpty)
			})
		})

		Convey("When the input only has a header", func() {
			rows, err := readAll(playlog.NewReader(strings.NewReader(header)))

			Convey("Then no rows are produced", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldBeEmpty)
			})
		})

		Convey("When the input has data rows", func() {
			in := header +
				"2021/01/01 12:00,player0001,12345\n" +
				"2021/01/01 12:05,player0002, 42 ,extra\n"
			rows, err := readAll(playlog.NewReader(strings.NewReader(in)))

			Convey("Then every data row is decoded in order", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 2)
				So(rows[0], ShouldResemble, playlog.Row{Line: 2, Timestamp: "2021/01/01 12:00", PlayerID: "player0001", Score: 12345})
				So(rows[1].PlayerID, ShouldEqual, "player0002")
				So(rows[1].Score, ShouldEqual, 42)
				So(rows[1].Line, ShouldEqual, 3)
			})
		})

		Convey("When header skipping is disabled", func() {
			in := "2021/01/01 12:00,player0001,7\n"
			rows, err := readAll(playlog.NewReader(strings.NewReader(in), playlog.WithHeader(false)))

			Convey("Then the first line is a data row", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Score, ShouldEqual, 7)
			})
		})

		Convey("When a different delimiter is configured", func() {
			in := "ts;id;score\n2021/01/01;p1;9\n"
			rows, err := readAll(playlog.NewReader(strings.NewReader(in), playlog.WithComma(';')))

			Convey("Then fields are split on it", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].PlayerID, ShouldEqual, "p1")
			})
		})
	})
}

func TestReader_Malformed(t *testing.T) {
	Convey("Given malformed play logs", t, func() {
		cases := []struct{ name, in string }{
			{"non-integer score", header + "2021/01/01 12:00,player0001,abc\n"},
			{"float score", header + "2021/01/01 12:00,player0001,1.5\n"},
			{"empty score", header + "2021/01/01 12:00,player0001,\n"},
			{"too few fields", header + "2021/01/01 12:00,player0001\n"},
			{"empty player id", header + "2021/01/01 12:00,,10\n"},
			{"broken quoting", header + "2021/01/01 12:00,\"player,10\n"},
		}

		for _, tc := range cases {
			Convey("When the log has a row with "+tc.name, func() {
				_, err := readAll(playlog.NewReader(strings.NewReader(tc.in)))

				Convey("Then a malformed input error is returned", func() {
					So(err, ShouldNotBeNil)
					So(errors.Is(err, playlog.ErrMalformedInput), ShouldBeTrue)

					var me *playlog.MalformedInputError
					So(errors.As(err, &me), ShouldBeTrue)
					So(me.Line, ShouldEqual, 2)
				})
			})
		}

		Convey("When the score is not an integer", func() {
			_, err := readAll(playlog.NewReader(strings.NewReader(header + "t,p1,abc\n")))

			Convey("Then the error names the score field", func() {
				var me *playlog.MalformedInputError
				So(errors.As(err, &me), ShouldBeTrue)
				So(me.Field, ShouldEqual, "score")
				So(me.Value, ShouldEqual, "abc")
				So(errors.Is(err, playlog.ErrInvalidScore), ShouldBeTrue)
			})
		})
	})
}

func TestParseScore(t *testing.T) {
	Convey("Given score literals", t, func() {
		Convey("Integers parse", func() {
			v, err := playlog.ParseScore("12345")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 12345)

			v, err = playlog.ParseScore("-3")
			So(err, ShouldBeNil)
			So(v, ShouldEqual, -3)
		})

		Convey("Out of range integers are rejected", func() {
			_, err := playlog.ParseScore("99999999999999999999")
			So(errors.Is(err, playlog.ErrInvalidScore), ShouldBeTrue)
		})

		Convey("Non-integers are rejected", func() {
			for _, s := range []string{"", " ", "1e3", "0x10", "2.0"} {
				_, err := playlog.ParseScore(s)
				So(errors.Is(err, playlog.ErrInvalidScore), ShouldBeTrue)
			}
		})
	})
}
