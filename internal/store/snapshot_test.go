package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/tracker"
)

func seedStore(t *testing.T, s *Store) {
	t.Helper()
	createApp(t, s, "Acme", tracker.StatusApplied)
	createApp(t, s, "Acme", tracker.StatusOffer)
	createApp(t, s, "Globex", tracker.StatusRejected)
	if err := s.SetCompanyNotes("Acme", "strong referral pipeline"); err != nil {
		t.Fatalf("set notes: %v", err)
	}
	if err := s.SetCompanyStatus("Acme", tracker.CompanyDream); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if _, err := s.AddContact("Acme", tracker.Contact{Name: "Dana", Role: "Recruiter", Email: "dana@acme.test"}); err != nil {
		t.Fatalf("add contact: %v", err)
	}
}

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	s := newTestStore()
	seedStore(t, s)

	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}

	var decoded tracker.Snapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}

	restored := newTestStore()
	restored.Restore(decoded)

	if !reflect.DeepEqual(s.Snapshot(), restored.Snapshot()) {
		t.Fatalf("round trip not lossless:\nbefore: %+v\nafter:  %+v", s.Snapshot(), restored.Snapshot())
	}
}

func TestOpen_LoadsMirrorAndSeedsIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.json")

	s := Open(path, nil)
	s.now = steppingClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	seedStore(t, s)

	reopened := Open(path, nil)
	apps := reopened.Applications()
	if len(apps) != 3 {
		t.Fatalf("expected 3 applications after reload, got %d", len(apps))
	}
	meta := reopened.Metadata("acme")
	if meta.Notes == "" || meta.Status != tracker.CompanyDream || len(meta.Contacts) != 1 {
		t.Fatalf("metadata lost on reload: %+v", meta)
	}

	next := createApp(t, reopened, "Initech", tracker.StatusApplied)
	if next.ID != "4" {
		t.Fatalf("id counter not seeded from mirror: got %q", next.ID)
	}
}

func TestOpen_CorruptMirrorStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracker.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s := Open(path, nil)
	if apps := s.Applications(); len(apps) != 0 {
		t.Fatalf("expected empty store from corrupt mirror, got %d apps", len(apps))
	}

	// The store must still accept writes afterwards.
	if app := createApp(t, s, "Acme", tracker.StatusApplied); app.ID != "1" {
		t.Fatalf("unexpected first id: %q", app.ID)
	}
}

func TestOpen_MissingMirrorStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	s := Open(path, nil)
	if apps := s.Applications(); len(apps) != 0 {
		t.Fatalf("expected empty store, got %d apps", len(apps))
	}
}

func TestSaveFailure_DoesNotRollBackMutation(t *testing.T) {
	dir := t.TempDir()
	// A directory at the mirror path makes the final rename fail.
	path := filepath.Join(dir, "tracker.json")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	s := New(nil)
	s.path = path
	app := createApp(t, s, "Acme", tracker.StatusApplied)

	if _, err := s.Get(app.ID); err != nil {
		t.Fatalf("mutation rolled back on save failure: %v", err)
	}
}
