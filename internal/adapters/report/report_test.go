package report_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"isrevy/internal/adapters/report"
	"isrevy/internal/domain/model"
	"isrevy/internal/domain/reconcile"
	"isrevy/internal/domain/schedule"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleParticipants() []*model.Participant {
	return []*model.Participant{
		{
			GivenRegistered: "Ola", FamilyRegistered: "Nordmann",
			PrintName: "Ola NORDMANN", Gender: "M",
			Club: "Loddefjord IL", Organisation: "Loddefjord IL",
			StatusText: "Påmeldt", Status: model.StatusRegistered,
			ParticipantCode: "FSM-7", Event: "MENS_FREE", EntryOrder: "3",
			Music1: "Carmen", ElementsFree: []string{"2S", "1A"},
			FromRegistration: true, MatchedInExport: true,
			Asset: &model.MusicAsset{Filename: "Nordmann_Ola.wav", Duration: 225 * time.Second, DurationKnown: true},
		},
		{
			GivenRegistered: "Kari", FamilyRegistered: "Olsen",
			Status: model.StatusRegistered, StatusText: "Påmeldt",
			FromRegistration: true,
			Asset:            &model.MusicAsset{Filename: "Olsen_Kari.mp3"},
		},
	}
}

func TestWriteParticipantsCSV(t *testing.T) {
	Convey("Given the participant table", t, func() {
		var buf bytes.Buffer

		So(report.WriteParticipantsCSV(&buf, sampleParticipants()), ShouldBeNil)
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

		Convey("Then header and one line per participant come out", func() {
			So(lines, ShouldHaveLength, 3)
			So(lines[0], ShouldStartWith, "PrintName,GivenName,FamilyName")
		})

		Convey("Then export fields and music assignment are rendered", func() {
			So(lines[1], ShouldContainSubstring, "Ola NORDMANN")
			So(lines[1], ShouldContainSubstring, "FSM-7")
			So(lines[1], ShouldContainSubstring, "Nordmann_Ola.wav")
			So(lines[1], ShouldContainSubstring, "3:45")
			So(lines[1], ShouldContainSubstring, `"2S, 1A"`)
		})

		Convey("Then an unknown duration reads unknown, not zero", func() {
			So(lines[2], ShouldContainSubstring, "Olsen_Kari.mp3")
			So(lines[2], ShouldContainSubstring, "unknown")
			So(lines[2], ShouldNotContainSubstring, "0:00")
		})
	})
}

func TestWritePlaylistM3U(t *testing.T) {
	Convey("Given a built timeline", t, func() {
		ps := sampleParticipants()
		entries := schedule.Build(ps, schedule.Config{
			GroupSize: 8,
			Interval:  220 * time.Second,
			Start:     time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		})

		var buf bytes.Buffer
		So(report.WritePlaylistM3U(&buf, entries), ShouldBeNil)
		out := buf.String()

		Convey("Then the playlist lists files in start order", func() {
			So(out, ShouldStartWith, "#EXTM3U\n")
			first := strings.Index(out, "Nordmann_Ola.wav")
			second := strings.Index(out, "Olsen_Kari.mp3")
			So(first, ShouldBeGreaterThan, 0)
			So(second, ShouldBeGreaterThan, first)
		})

		Convey("Then durations carry through, unknown as -1", func() {
			So(out, ShouldContainSubstring, "#EXTINF:225,1. Ola NORDMANN")
			So(out, ShouldContainSubstring, "#EXTINF:-1,2. Kari Olsen")
		})
	})

	Convey("Given a slot without music", t, func() {
		p := &model.Participant{GivenRegistered: "Nina", FamilyRegistered: "Berg", FromRegistration: true}
		entries := schedule.Build([]*model.Participant{p}, schedule.Config{GroupSize: 1, Interval: time.Minute})

		var buf bytes.Buffer
		So(report.WritePlaylistM3U(&buf, entries), ShouldBeNil)

		Convey("Then the slot is skipped silently", func() {
			So(buf.String(), ShouldEqual, "#EXTM3U\n")
		})
	})
}

func TestRenderStartListHTML(t *testing.T) {
	Convey("Given start-list data", t, func() {
		ps := sampleParticipants()
		entries := schedule.Build(ps, schedule.Config{
			GroupSize: 1,
			Interval:  220 * time.Second,
			Warmup:    240 * time.Second,
			Start:     time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		})
		data := report.StartList{
			Title:       "Isrevy 2026",
			GeneratedAt: time.Date(2026, 3, 13, 12, 0, 0, 0, time.UTC),
			Entries:     entries,
			Discrepancies: []reconcile.Discrepancy{
				{Kind: reconcile.KindMissingMusic, Participant: ps[1]},
			},
			Officials: 3,
		}

		var buf bytes.Buffer
		So(report.RenderStartListHTML(&buf, data), ShouldBeNil)
		out := buf.String()

		Convey("Then the page carries timeline and discrepancies", func() {
			So(out, ShouldContainSubstring, "<title>Isrevy 2026</title>")
			So(out, ShouldContainSubstring, "Oppvarmingsgruppe 1")
			So(out, ShouldContainSubstring, "ca. ")
			So(out, ShouldContainSubstring, "Ola NORDMANN")
			So(out, ShouldContainSubstring, "Mangler musikk")
			So(out, ShouldContainSubstring, "3 dommere")
		})
	})
}
