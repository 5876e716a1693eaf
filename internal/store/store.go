package store

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Abhinavjayan34/py-project-job-tracker-latest/internal/tracker"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrCompanyNotFound     = errors.New("company not found or no applications exist")
	ErrNoContacts          = errors.New("company has no contacts")
	ErrContactNotFound     = errors.New("contact not found")
)

// Store owns every record in the process: the ordered application list plus
// the per-company metadata maps. A single mutex serializes all access; the
// service was never meant for concurrent writers beyond that.
//
// Company names are matched case-insensitively everywhere. The metadata maps
// are keyed by the folded name; display casing comes from the applications.
type Store struct {
	mu sync.Mutex

	apps       []tracker.Application
	notes      map[string]string
	contacts   map[string][]tracker.Contact
	statuses   map[string]tracker.CompanyStatus
	contactSeq map[string]int

	nextID int

	path   string
	logger *slog.Logger
	now    func() time.Time
}

// New creates an empty in-memory store with no file mirror.
func New(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		notes:      map[string]string{},
		contacts:   map[string][]tracker.Contact{},
		statuses:   map[string]tracker.CompanyStatus{},
		contactSeq: map[string]int{},
		nextID:     1,
		logger:     logger,
		now:        time.Now,
	}
}

// Open creates a store mirrored to the JSON document at path. A missing or
// unreadable file is logged and the store starts empty; it is never fatal.
// An empty path disables the mirror entirely.
func Open(path string, logger *slog.Logger) *Store {
	s := New(logger)
	s.path = path
	if path != "" {
		s.loadSnapshot()
	}
	return s
}

// Filter narrows List results. Zero values mean "no constraint"; all string
// matching is case-insensitive.
type Filter struct {
	Company string
	Status  tracker.ApplicationStatus
	Source  tracker.ApplicationSource
	Search  string
}

func (f Filter) matches(app tracker.Application) bool {
	if f.Company != "" && !strings.Contains(strings.ToLower(app.Company), strings.ToLower(f.Company)) {
		return false
	}
	if f.Status != "" && app.Status != f.Status {
		return false
	}
	if f.Source != "" && app.Source != f.Source {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(app.Role), q) &&
			!strings.Contains(strings.ToLower(app.Company), q) &&
			!strings.Contains(strings.ToLower(app.Notes), q) {
			return false
		}
	}
	return true
}

// List returns applications in insertion order, narrowed by f.
func (s *Store) List(f Filter) []tracker.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]tracker.Application, 0, len(s.apps))
	for _, app := range s.apps {
		if f.matches(app) {
			out = append(out, app)
		}
	}
	return out
}

// Applications returns a copy of the full list in insertion order.
func (s *Store) Applications() []tracker.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]tracker.Application, len(s.apps))
	copy(out, s.apps)
	return out
}

// Get returns the application with the given id.
func (s *Store) Get(id string) (tracker.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, app := range s.apps {
		if app.ID == id {
			return app, nil
		}
	}
	return tracker.Application{}, ErrApplicationNotFound
}

// CreateInput carries the caller-supplied fields of a new application.
type CreateInput struct {
	Company     string
	Role        string
	Status      tracker.ApplicationStatus
	Source      tracker.ApplicationSource
	Location    string
	SalaryRange string
	Notes       string
}

// Create appends a new application. The id comes from a high-water counter
// so deleted ids are never handed out again, and both timestamps are set to
// the current time.
func (s *Store) Create(in CreateInput) tracker.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	app := tracker.Application{
		ID:          strconv.Itoa(s.nextID),
		Company:     in.Company,
		Role:        in.Role,
		Status:      in.Status,
		Source:      in.Source,
		Location:    in.Location,
		SalaryRange: in.SalaryRange,
		Notes:       in.Notes,
		AppliedDate: now,
		LastUpdated: now,
	}
	s.nextID++
	s.apps = append(s.apps, app)
	s.saveLocked()
	return app
}

// UpdateInput carries a partial update; nil fields are left untouched.
type UpdateInput struct {
	Company     *string
	Role        *string
	Status      *tracker.ApplicationStatus
	Source      *tracker.ApplicationSource
	Location    *string
	SalaryRange *string
	Notes       *string
}

// Update merges the supplied fields into the application with the given id
// and refreshes last_updated. The applied date never changes.
func (s *Store) Update(id string, in UpdateInput) (tracker.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.apps {
		if s.apps[i].ID != id {
			continue
		}
		app := &s.apps[i]
		if in.Company != nil {
			app.Company = *in.Company
		}
		if in.Role != nil {
			app.Role = *in.Role
		}
		if in.Status != nil {
			app.Status = *in.Status
		}
		if in.Source != nil {
			app.Source = *in.Source
		}
		if in.Location != nil {
			app.Location = *in.Location
		}
		if in.SalaryRange != nil {
			app.SalaryRange = *in.SalaryRange
		}
		if in.Notes != nil {
			app.Notes = *in.Notes
		}
		app.LastUpdated = s.now()
		s.saveLocked()
		return *app, nil
	}
	return tracker.Application{}, ErrApplicationNotFound
}

// Delete removes the application with the given id and returns it. The id
// is retired permanently.
func (s *Store) Delete(id string) (tracker.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, app := range s.apps {
		if app.ID == id {
			s.apps = append(s.apps[:i], s.apps[i+1:]...)
			s.saveLocked()
			return app, nil
		}
	}
	return tracker.Application{}, ErrApplicationNotFound
}

func foldCompany(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CompanyApplications returns all applications whose company matches name
// case-insensitively, in insertion order. An empty result means the company
// is unknown.
func (s *Store) CompanyApplications(name string) []tracker.Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.companyApplicationsLocked(name)
}

func (s *Store) companyApplicationsLocked(name string) []tracker.Application {
	folded := foldCompany(name)
	var out []tracker.Application
	for _, app := range s.apps {
		if foldCompany(app.Company) == folded {
			out = append(out, app)
		}
	}
	return out
}

// CompanyMetadata is the stored side-channel data for one company.
type CompanyMetadata struct {
	Notes    string
	Contacts []tracker.Contact
	Status   tracker.CompanyStatus
}

// Metadata returns the stored notes, contacts and status for a company.
// Missing entries come back zero-valued; metadata needs no application
// history to exist once loaded from a snapshot.
func (s *Store) Metadata(name string) CompanyMetadata {
	s.mu.Lock()
	defer s.mu.Unlock()

	folded := foldCompany(name)
	contacts := make([]tracker.Contact, len(s.contacts[folded]))
	copy(contacts, s.contacts[folded])
	return CompanyMetadata{
		Notes:    s.notes[folded],
		Contacts: contacts,
		Status:   s.statuses[folded],
	}
}

// SetCompanyNotes replaces the notes for a company. The company must have
// at least one application on file.
func (s *Store) SetCompanyNotes(name, notes string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.companyApplicationsLocked(name)) == 0 {
		return ErrCompanyNotFound
	}
	s.notes[foldCompany(name)] = notes
	s.saveLocked()
	return nil
}

// SetCompanyStatus replaces the tracked status for a company. The company
// must have at least one application on file.
func (s *Store) SetCompanyStatus(name string, status tracker.CompanyStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.companyApplicationsLocked(name)) == 0 {
		return ErrCompanyNotFound
	}
	s.statuses[foldCompany(name)] = status
	s.saveLocked()
	return nil
}

// AddContact appends a contact to a company's list, assigning its id and
// creation time. The company must have at least one application on file.
func (s *Store) AddContact(name string, contact tracker.Contact) (tracker.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.companyApplicationsLocked(name)) == 0 {
		return tracker.Contact{}, ErrCompanyNotFound
	}

	folded := foldCompany(name)
	s.contactSeq[folded]++
	contact.ID = strconv.Itoa(s.contactSeq[folded])
	contact.CreatedAt = s.now()
	s.contacts[folded] = append(s.contacts[folded], contact)
	s.saveLocked()
	return contact, nil
}

// DeleteContact removes a contact by id from a company's list and returns it.
func (s *Store) DeleteContact(name, contactID string) (tracker.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	folded := foldCompany(name)
	contacts, ok := s.contacts[folded]
	if !ok || len(contacts) == 0 {
		return tracker.Contact{}, ErrNoContacts
	}

	for i, contact := range contacts {
		if contact.ID == contactID {
			s.contacts[folded] = append(contacts[:i], contacts[i+1:]...)
			s.saveLocked()
			return contact, nil
		}
	}
	return tracker.Contact{}, ErrContactNotFound
}
