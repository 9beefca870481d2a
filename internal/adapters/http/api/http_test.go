package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"isrevy/internal/adapters/http/api"
	"isrevy/internal/adapters/repository"
	"isrevy/internal/domain/model"
	"isrevy/internal/domain/reconcile"
	"isrevy/internal/domain/schedule"
)

func seededStore(t *testing.T) (*repository.MemoryStore, string) {
	t.Helper()

	ola := &model.Participant{
		GivenRegistered:  "Ola",
		FamilyRegistered: "Nordmann",
		Club:             "OSK",
		Status:           model.StatusRegistered,
		FromRegistration: true,
		MatchedInExport:  true,
		Event:            "SHOW",
		Asset: &model.MusicAsset{
			Filename:      "ola.wav",
			Duration:      225 * time.Second,
			DurationKnown: true,
		},
	}
	kari := &model.Participant{
		GivenRegistered:  "Kari",
		FamilyRegistered: "Olsen",
		Status:           model.StatusRegistered,
		FromRegistration: true,
		MatchedInExport:  true,
	}
	participants := []*model.Participant{ola, kari}

	entries := schedule.Build(participants, schedule.Config{
		GroupSize: 8,
		Interval:  220 * time.Second,
		Warmup:    240 * time.Second,
		Start:     time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
	})

	store := repository.NewMemoryStore()
	id, err := store.Save(context.Background(), repository.Run{
		Title:         "Vårshow 2026",
		Participants:  participants,
		Discrepancies: reconcile.Discrepancies(participants),
		Schedule:      entries,
		Officials:     3,
	})
	if err != nil {
		t.Fatalf("seed store: %v", err)
	}
	return store, id
}

func TestHTTPEndpoints(t *testing.T) {
	Convey("Given a server backed by a seeded store", t, func() {
		store, runID := seededStore(t)
		mux := http.NewServeMux()
		api.NewServer(store).Register(mux)
		ts := httptest.NewServer(mux)
		defer ts.Close()

		get := func(path string) (*http.Response, []byte) {
			resp, err := http.Get(ts.URL + path)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			var buf []byte
			buf, err = io.ReadAll(resp.Body)
			So(err, ShouldBeNil)
			return resp, buf
		}

		Convey("GET /api/v1/participants returns the table", func() {
			resp, body := get("/api/v1/participants")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var views []map[string]any
			So(json.Unmarshal(body, &views), ShouldBeNil)
			So(views, ShouldHaveLength, 2)
			So(views[0]["display_name"], ShouldEqual, "Ola Nordmann")
			So(views[0]["status"], ShouldEqual, "registered")
			So(views[0]["music_file"], ShouldEqual, "ola.wav")
			So(views[0]["music_seconds"], ShouldEqual, 225)
		})

		Convey("GET /api/v1/discrepancies reports missing music", func() {
			resp, body := get("/api/v1/discrepancies")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var views []map[string]any
			So(json.Unmarshal(body, &views), ShouldBeNil)
			So(views, ShouldHaveLength, 1)
			So(views[0]["kind"], ShouldEqual, "missing_music")
			So(views[0]["display_name"], ShouldEqual, "Kari Olsen")
		})

		Convey("GET /api/v1/schedule returns the timeline", func() {
			resp, body := get("/api/v1/schedule")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			var views []map[string]any
			So(json.Unmarshal(body, &views), ShouldBeNil)
			So(views, ShouldHaveLength, 3)
			So(views[0]["kind"], ShouldEqual, "group")
			So(views[0]["start"], ShouldEqual, "18:00:00")
			So(views[1]["kind"], ShouldEqual, "skater")
			So(views[1]["start"], ShouldEqual, "18:04:00")
		})

		Convey("Selecting a run by ID works", func() {
			resp, _ := get("/api/v1/participants?run=" + runID)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
		})

		Convey("An unknown run ID yields 404", func() {
			resp, body := get("/api/v1/participants?run=missing")
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
			So(string(body), ShouldContainSubstring, "run_not_found")
		})

		Convey("GET / renders the start list", func() {
			resp, body := get("/")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(resp.Header.Get("Content-Type"), ShouldContainSubstring, "text/html")
			So(string(body), ShouldContainSubstring, "Vårshow 2026")
			So(string(body), ShouldContainSubstring, "Oppvarmingsgruppe 1")
		})

		Convey("POST to a read-only endpoint yields 404", func() {
			resp, err := http.Post(ts.URL+"/api/v1/schedule", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})

	Convey("Given a server with no runs yet", t, func() {
		mux := http.NewServeMux()
		api.NewServer(repository.NewMemoryStore()).Register(mux)
		ts := httptest.NewServer(mux)
		defer ts.Close()

		Convey("Endpoints yield 404 with a no_runs code", func() {
			resp, err := http.Get(ts.URL + "/api/v1/schedule")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)

			buf, err := io.ReadAll(resp.Body)
			So(err, ShouldBeNil)
			So(string(buf), ShouldContainSubstring, "no_runs")
		})
	})
}
