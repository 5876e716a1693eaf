package tracker

import "time"

// ApplicationStatus is the pipeline stage of a single application.
type ApplicationStatus string

const (
	StatusApplied     ApplicationStatus = "applied"
	StatusPhoneScreen ApplicationStatus = "phone_screen"
	StatusInterview   ApplicationStatus = "interview"
	StatusRejected    ApplicationStatus = "rejected"
	StatusOffer       ApplicationStatus = "offer"
)

// Valid reports whether s is one of the known pipeline stages.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusPhoneScreen, StatusInterview, StatusRejected, StatusOffer:
		return true
	}
	return false
}

// ApplicationSource is where an application was submitted through.
type ApplicationSource string

const (
	SourceLinkedIn       ApplicationSource = "LinkedIn"
	SourceIndeed         ApplicationSource = "Indeed"
	SourceCompanyWebsite ApplicationSource = "Company Website"
	SourceReferral       ApplicationSource = "Referral"
	SourceOther          ApplicationSource = "Other"
)

// Valid reports whether s is one of the known sources.
func (s ApplicationSource) Valid() bool {
	switch s {
	case SourceLinkedIn, SourceIndeed, SourceCompanyWebsite, SourceReferral, SourceOther:
		return true
	}
	return false
}

// CompanyStatus is the tracked interest level for a company.
type CompanyStatus string

const (
	CompanyDream         CompanyStatus = "dream_company"
	CompanyInterested    CompanyStatus = "interested"
	CompanyResearching   CompanyStatus = "researching"
	CompanyNotInterested CompanyStatus = "not_interested"
)

// Valid reports whether s is one of the known company statuses.
func (s CompanyStatus) Valid() bool {
	switch s {
	case CompanyDream, CompanyInterested, CompanyResearching, CompanyNotInterested:
		return true
	}
	return false
}

// Application is one tracked job application. IDs are assigned by the store
// and never reused; AppliedDate is fixed at creation.
type Application struct {
	ID          string            `json:"id"`
	Company     string            `json:"company"`
	Role        string            `json:"role"`
	Status      ApplicationStatus `json:"status"`
	Source      ApplicationSource `json:"source"`
	Location    string            `json:"location,omitempty"`
	SalaryRange string            `json:"salary_range,omitempty"`
	Notes       string            `json:"notes,omitempty"`
	AppliedDate time.Time         `json:"applied_date"`
	LastUpdated time.Time         `json:"last_updated"`
}

// Responded reports whether the application moved past the initial stage.
func (a Application) Responded() bool {
	switch a.Status {
	case StatusPhoneScreen, StatusInterview, StatusOffer:
		return true
	}
	return false
}

// Interviewed reports whether the application reached the interview band.
func (a Application) Interviewed() bool {
	return a.Status == StatusInterview || a.Status == StatusOffer
}

// Contact is a person attached to a company's metadata.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	LinkedIn  string    `json:"linkedin,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Snapshot is the persisted layout of the whole store: one JSON document,
// read once at startup and rewritten after every mutation.
type Snapshot struct {
	Applications    []Application            `json:"applications"`
	CompanyNotes    map[string]string        `json:"company_notes"`
	CompanyContacts map[string][]Contact     `json:"company_contacts"`
	CompanyStatus   map[string]CompanyStatus `json:"company_status"`
}
