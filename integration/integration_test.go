package integration

import (
	"context"
	"errors"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/horario/internal/catalog"
	"github.com/javiermolinar/horario/internal/db"
	"github.com/javiermolinar/horario/internal/lookup"
	"github.com/javiermolinar/horario/internal/server"
	"github.com/javiermolinar/horario/internal/summary"
	"github.com/javiermolinar/horario/internal/timetable"
)

const offerings = `[
  {
    "disciplina": "MAT001 - Calculus I",
    "turmas": [
      {"turma": "01", "docente": "Ada Lovelace", "horario": "24M12", "local": "Room 101"},
      {"turma": "02", "docente": "Alan Turing", "horario": "35T34", "local": "Room 202"}
    ]
  },
  {
    "disciplina": "FIS002 - Physics",
    "turmas": [
      {"turma": "01", "docente": "Marie Curie", "horario": "62M2", "local": "Lab 3"},
      {"turma": "02", "docente": "Lise Meitner", "horario": "4T1", "local": "Lab 4"}
    ]
  }
]`

// openStore creates a catalog loaded with the sample offerings.
func openStore(t *testing.T) *db.SQLite {
	t.Helper()
	store, err := db.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	sections, err := catalog.LoadJSON(strings.NewReader(offerings))
	if err != nil {
		t.Fatalf("failed to parse offerings: %v", err)
	}
	if err := store.ReplaceSections(context.Background(), sections); err != nil {
		t.Fatalf("failed to import sections: %v", err)
	}
	return store
}

// recordingSink keeps every notification for assertions.
type recordingSink struct {
	cells    map[timetable.Coordinate]timetable.CellView
	failures []string
	clears   int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{cells: make(map[timetable.Coordinate]timetable.CellView)}
}

func (r *recordingSink) Update(cells []timetable.CellView) {
	for _, c := range cells {
		r.cells[c.Coordinate] = c
	}
}

func (r *recordingSink) Clear() {
	r.cells = make(map[timetable.Coordinate]timetable.CellView)
	r.clears++
}

func (r *recordingSink) LookupFailed(message string) {
	r.failures = append(r.failures, message)
}

// lookups returns every lookup flavor over the same catalog.
func lookups(t *testing.T, store *db.SQLite) map[string]timetable.Lookup {
	t.Helper()
	srv := httptest.NewServer(server.NewRouter(store))
	t.Cleanup(srv.Close)

	remote, err := lookup.NewHTTPClient(srv.URL, 0)
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	return map[string]timetable.Lookup{
		"local": lookup.NewStoreClient(store),
		"http":  remote,
	}
}

func at(day, slot string) timetable.Coordinate {
	return timetable.Coordinate{Day: day, Slot: slot}
}

func TestPlacementFlow(t *testing.T) {
	store := openStore(t)

	for name, lk := range lookups(t, store) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			session, err := timetable.NewSession(nil, []string{"#111111", "#222222"})
			if err != nil {
				t.Fatalf("NewSession: %v", err)
			}
			sink := newRecordingSink()
			ctrl := timetable.NewController(session, lk, sink)

			candidates, err := ctrl.Open(ctx, at("Monday", "07:00"))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if len(candidates) != 1 || candidates[0].Instructor != "Ada Lovelace" {
				t.Fatalf("candidates = %+v", candidates)
			}

			res, err := ctrl.Choose(&candidates[0])
			if err != nil {
				t.Fatalf("Choose: %v", err)
			}
			if res.Color != "#111111" || len(res.Cells) != 4 {
				t.Errorf("placement = %+v", res)
			}
			if len(sink.cells) != 4 {
				t.Errorf("sink saw %d cells, want 4", len(sink.cells))
			}

			// An occupied cell is refused before the lookup runs.
			if _, err := ctrl.Open(ctx, at("Wednesday", "07:55")); !errors.Is(err, timetable.ErrAlreadyOccupied) {
				t.Errorf("Open occupied: err = %v, want ErrAlreadyOccupied", err)
			}

			// Physics 01 meets Friday 07:55, which is free, and Monday 07:55,
			// which Calculus 01 already holds.
			physics, err := ctrl.Open(ctx, at("Friday", "07:55"))
			if err != nil {
				t.Fatalf("Open Friday: %v", err)
			}
			if len(physics) != 1 {
				t.Fatalf("Friday 07:55 candidates = %d, want 1", len(physics))
			}
			_, err = ctrl.Choose(&physics[0])
			var conflict *timetable.ConflictError
			if !errors.As(err, &conflict) {
				t.Fatalf("Choose physics: err = %v, want *ConflictError", err)
			}
			if conflict.Coordinate != at("Monday", "07:55") {
				t.Errorf("conflict at %v, want Monday 07:55", conflict.Coordinate)
			}
			if session.IsOccupied(at("Friday", "07:55")) {
				t.Error("refused placement occupied a cell")
			}

			s := summary.Build(session)
			if len(s.Sections) != 1 || s.Classes != 4 {
				t.Errorf("summary = %d sections, %d classes", len(s.Sections), s.Classes)
			}

			ctrl.Reset()
			if sink.clears != 1 || len(sink.cells) != 0 {
				t.Errorf("reset: clears=%d cells=%d", sink.clears, len(sink.cells))
			}
			if len(session.Selected()) != 0 {
				t.Error("selection survived reset")
			}

			// Colors restart after reset.
			again, err := ctrl.Open(ctx, at("Tuesday", "14:50"))
			if err != nil {
				t.Fatalf("Open after reset: %v", err)
			}
			res, err = ctrl.Choose(&again[0])
			if err != nil {
				t.Fatalf("Choose after reset: %v", err)
			}
			if res.Color != "#111111" {
				t.Errorf("color after reset = %s, want #111111", res.Color)
			}
		})
	}
}

func TestEmptySlot(t *testing.T) {
	store := openStore(t)

	for name, lk := range lookups(t, store) {
		t.Run(name, func(t *testing.T) {
			session, err := timetable.NewSession(nil, nil)
			if err != nil {
				t.Fatalf("NewSession: %v", err)
			}
			ctrl := timetable.NewController(session, lk, nil)

			got, err := ctrl.Open(context.Background(), at("Saturday", "21:15"))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			if got == nil || len(got) != 0 {
				t.Errorf("candidates = %#v, want empty non-nil", got)
			}
		})
	}
}

func TestUnreachableServer(t *testing.T) {
	srv := httptest.NewServer(server.NewRouter(openStore(t)))
	url := srv.URL
	srv.Close()

	remote, err := lookup.NewHTTPClient(url, 0)
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	session, err := timetable.NewSession(nil, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	sink := newRecordingSink()
	ctrl := timetable.NewController(session, remote, sink)

	if _, err := ctrl.Open(context.Background(), at("Monday", "07:00")); !errors.Is(err, timetable.ErrLookupFailure) {
		t.Fatalf("err = %v, want ErrLookupFailure", err)
	}
	if len(sink.failures) != 1 || sink.failures[0] != timetable.RetryMessage {
		t.Errorf("failures = %v", sink.failures)
	}
	if len(sink.cells) != 0 || len(session.Selected()) != 0 {
		t.Error("failed lookup changed state")
	}
}
