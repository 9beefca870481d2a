package schedule_test

import (
	"fmt"
	"testing"
	"time"

	"isrevy/internal/domain/model"
	"isrevy/internal/domain/schedule"
	. "github.com/smartystreets/goconvey/convey"
)

func startList(n int) []*model.Participant {
	ps := make([]*model.Participant, n)
	for i := range ps {
		ps[i] = &model.Participant{
			GivenRegistered:  fmt.Sprintf("Skater%d", i+1),
			FamilyRegistered: "Testsen",
			FromRegistration: true,
			Status:           model.StatusRegistered,
		}
	}
	return ps
}

func clock(h, m, s int) time.Time {
	return time.Date(2026, time.March, 14, h, m, s, 0, time.UTC)
}

func TestBuild(t *testing.T) {
	Convey("Given 10 skaters, groups of 8, 3:40 slots and 4:00 warm-up", t, func() {
		ps := startList(10)
		cfg := schedule.Config{
			GroupSize: 8,
			Interval:  220 * time.Second,
			Warmup:    240 * time.Second,
			Start:     clock(18, 0, 0),
		}

		entries := schedule.Build(ps, cfg)

		Convey("Then the timeline has 2 group markers and 10 slots", func() {
			So(entries, ShouldHaveLength, 12)
			groups := 0
			slots := 0
			for _, e := range entries {
				switch e.Kind {
				case schedule.KindGroup:
					groups++
				case schedule.KindSkater:
					slots++
				}
			}
			So(groups, ShouldEqual, 2)
			So(slots, ShouldEqual, 10)
		})

		Convey("Then the running clock matches the plan", func() {
			So(entries[0].Start, ShouldEqual, clock(18, 0, 0))
			So(entries[0].End, ShouldEqual, clock(18, 4, 0))
			So(entries[1].Start, ShouldEqual, clock(18, 4, 0))
			So(entries[2].Start, ShouldEqual, clock(18, 7, 40))
			// Second group: 18:00:00 + 4:00 + 8 x 3:40.
			So(entries[9].Kind, ShouldEqual, schedule.KindGroup)
			So(entries[9].Start, ShouldEqual, clock(18, 33, 20))
		})

		Convey("Then only the first group's time is exact", func() {
			So(entries[0].Approximate, ShouldBeFalse)
			So(entries[0].StartClock(), ShouldEqual, "18:00:00")
			So(entries[9].Approximate, ShouldBeTrue)
			So(entries[9].StartClock(), ShouldEqual, "ca. 18:33:20")
		})

		Convey("Then slots are numbered globally across groups", func() {
			seq := 0
			for _, e := range entries {
				if e.Kind == schedule.KindSkater {
					seq++
					So(e.Seq, ShouldEqual, seq)
				}
			}
			So(seq, ShouldEqual, 10)
		})

		Convey("Then start times are attached to the participants", func() {
			So(ps[0].StartAt, ShouldEqual, clock(18, 4, 0))
			So(ps[8].StartAt, ShouldEqual, clock(18, 37, 20))
		})
	})

	Convey("Given a pause after the 3rd skater", t, func() {
		base := schedule.Config{
			GroupSize: 8,
			Interval:  220 * time.Second,
			Warmup:    240 * time.Second,
			Start:     clock(18, 0, 0),
		}
		paused := base
		paused.PauseAfter = 3
		paused.PauseLength = 120 * time.Second
		paused.PauseLabel = "Kiosken er åpen"

		plain := schedule.Build(startList(10), base)
		withPause := schedule.Build(startList(10), paused)

		Convey("Then exactly one pause marker follows the 3rd slot", func() {
			So(withPause, ShouldHaveLength, len(plain)+1)
			var pauseIdx int
			pauses := 0
			for i, e := range withPause {
				if e.Kind == schedule.KindPause {
					pauses++
					pauseIdx = i
				}
			}
			So(pauses, ShouldEqual, 1)
			So(withPause[pauseIdx-1].Kind, ShouldEqual, schedule.KindSkater)
			So(withPause[pauseIdx-1].Seq, ShouldEqual, 3)
			So(withPause[pauseIdx].Label, ShouldEqual, "Kiosken er åpen")
			So(withPause[pauseIdx].Start, ShouldEqual, withPause[pauseIdx-1].End)
		})

		Convey("Then every later slot shifts by the pause length", func() {
			offset := 0
			for i, e := range plain {
				shifted := withPause[i+offset]
				if e.Kind == schedule.KindSkater && e.Seq == 4 {
					offset = 1
					shifted = withPause[i+offset]
				}
				if e.Kind != schedule.KindSkater {
					continue
				}
				if e.Seq <= 3 {
					So(shifted.Start, ShouldEqual, e.Start)
				} else {
					So(shifted.Start, ShouldEqual, e.Start.Add(120*time.Second))
				}
			}
		})
	})

	Convey("Given a non-positive group size and interval", t, func() {
		entries := schedule.Build(startList(2), schedule.Config{
			GroupSize: 0,
			Interval:  -5 * time.Second,
			Start:     clock(10, 0, 0),
		})

		Convey("Then both are clamped to 1 instead of failing", func() {
			groups := 0
			for _, e := range entries {
				if e.Kind == schedule.KindGroup {
					groups++
				}
			}
			So(groups, ShouldEqual, 2)
			So(entries[1].End.Sub(entries[1].Start), ShouldEqual, time.Second)
		})
	})

	Convey("Given a pause with only one of the two knobs set", t, func() {
		cfg := schedule.Config{GroupSize: 4, Interval: time.Minute, Start: clock(10, 0, 0)}
		cfg.PauseAfter = 2 // no PauseLength

		entries := schedule.Build(startList(4), cfg)

		Convey("Then no pause is inserted", func() {
			for _, e := range entries {
				So(e.Kind, ShouldNotEqual, schedule.KindPause)
			}
		})
	})

	Convey("Given no participants", t, func() {
		entries := schedule.Build(nil, schedule.Config{GroupSize: 8, Interval: time.Minute})

		Convey("Then the timeline is empty", func() {
			So(entries, ShouldHaveLength, 0)
		})
	})

	Convey("Given identical inputs, the build is deterministic", t, func() {
		cfg := schedule.Config{
			GroupSize: 3, Interval: 200 * time.Second,
			Warmup: 300 * time.Second, Start: clock(17, 30, 0),
		}
		a := schedule.Build(startList(7), cfg)
		b := schedule.Build(startList(7), cfg)

		So(len(a), ShouldEqual, len(b))
		for i := range a {
			So(a[i].Start, ShouldEqual, b[i].Start)
			So(a[i].End, ShouldEqual, b[i].End)
			So(a[i].Kind, ShouldEqual, b[i].Kind)
			So(a[i].Seq, ShouldEqual, b[i].Seq)
		}
	})
}

func TestParseClock(t *testing.T) {
	Convey("Given clock strings", t, func() {
		day := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)

		Convey("Then HH:MM:SS and HH:MM parse onto the day", func() {
			got, err := schedule.ParseClock(day, "18:00:00")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, clock(18, 0, 0))

			got, err = schedule.ParseClock(day, "09:30")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, clock(9, 30, 0))
		})

		Convey("Then junk is rejected with the sentinel", func() {
			_, err := schedule.ParseClock(day, "klokka seks")
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "clock time")
		})
	})
}

func TestParseSpan(t *testing.T) {
	Convey("Given span strings", t, func() {
		Convey("Then seconds, M:SS and H:MM:SS parse", func() {
			got, err := schedule.ParseSpan("220")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 220*time.Second)

			got, err = schedule.ParseSpan("3:40")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, 220*time.Second)

			got, err = schedule.ParseSpan("1:00:05")
			So(err, ShouldBeNil)
			So(got, ShouldEqual, time.Hour+5*time.Second)
		})

		Convey("Then junk is rejected", func() {
			for _, bad := range []string{"", "a:b", "1:2:3:4", "3:-40", "1:75"} {
				_, err := schedule.ParseSpan(bad)
				So(err, ShouldNotBeNil)
			}
		})
	})
}
