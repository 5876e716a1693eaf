package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/tracker"
)

// Snapshot returns a deep copy of the store's full state in the persisted
// document layout.
func (s *Store) Snapshot() tracker.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() tracker.Snapshot {
	snap := tracker.Snapshot{
		Applications:    make([]tracker.Application, len(s.apps)),
		CompanyNotes:    make(map[string]string, len(s.notes)),
		CompanyContacts: make(map[string][]tracker.Contact, len(s.contacts)),
		CompanyStatus:   make(map[string]tracker.CompanyStatus, len(s.statuses)),
	}
	copy(snap.Applications, s.apps)
	for company, notes := range s.notes {
		snap.CompanyNotes[company] = notes
	}
	for company, contacts := range s.contacts {
		list := make([]tracker.Contact, len(contacts))
		copy(list, contacts)
		snap.CompanyContacts[company] = list
	}
	for company, status := range s.statuses {
		snap.CompanyStatus[company] = status
	}
	return snap
}

// Restore replaces the store's state with the given snapshot and reseeds the
// id counters from the highest ids it contains.
func (s *Store) Restore(snap tracker.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restoreLocked(snap)
}

func (s *Store) restoreLocked(snap tracker.Snapshot) {
	s.apps = make([]tracker.Application, len(snap.Applications))
	copy(s.apps, snap.Applications)

	s.notes = map[string]string{}
	for company, notes := range snap.CompanyNotes {
		s.notes[foldCompany(company)] = notes
	}
	s.statuses = map[string]tracker.CompanyStatus{}
	for company, status := range snap.CompanyStatus {
		s.statuses[foldCompany(company)] = status
	}
	s.contacts = map[string][]tracker.Contact{}
	s.contactSeq = map[string]int{}
	for company, contacts := range snap.CompanyContacts {
		folded := foldCompany(company)
		list := make([]tracker.Contact, len(contacts))
		copy(list, contacts)
		s.contacts[folded] = list
		for _, contact := range list {
			if n, err := strconv.Atoi(contact.ID); err == nil && n > s.contactSeq[folded] {
				s.contactSeq[folded] = n
			}
		}
	}

	s.nextID = 1
	for _, app := range s.apps {
		if n, err := strconv.Atoi(app.ID); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
}

// loadSnapshot reads the mirror file once at startup. Any failure leaves the
// store empty; a corrupt file must not keep the service from starting.
func (s *Store) loadSnapshot() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("snapshot unreadable, starting empty", "path", s.path, "error", err)
		}
		return
	}

	var snap tracker.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("snapshot corrupt, starting empty", "path", s.path, "error", err)
		return
	}

	s.restoreLocked(snap)
	s.logger.Info("snapshot loaded", "path", s.path, "applications", len(s.apps))
}

// saveLocked rewrites the whole mirror file after a mutation. Failures are
// logged and swallowed: the in-memory mutation already happened and stands.
func (s *Store) saveLocked() {
	if s.path == "" {
		return
	}

	data, err := json.MarshalIndent(s.snapshotLocked(), "", "  ")
	if err != nil {
		s.logger.Error("snapshot encode failed", "path", s.path, "error", err)
		return
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		s.logger.Error("snapshot dir create failed", "path", s.path, "error", err)
		return
	}
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.logger.Error("snapshot write failed", "path", s.path, "error", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.logger.Error("snapshot rename failed", "path", s.path, "error", err)
	}
}
