// Package models defines the data structures used across the application.
// Case and Hearing field names match the persisted snapshot slot.
package models

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

// CaseStatus is the open/closed disposition of a case
type CaseStatus string

const (
	StatusOpen    CaseStatus = "Open"
	StatusClosed  CaseStatus = "Closed"
	StatusPending CaseStatus = "Pending"
)

// Valid reports whether s is one of the stored status values
func (s CaseStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusClosed, StatusPending:
		return true
	}
	return false
}

// Case is a filed labour dispute record.
// Applicant is the petitioner, Management the respondent establishment.
type Case struct {
	ID           string `json:"id"`
	FileNumber   string `json:"fileNumber"`
	ReceivedDate string `json:"receivedDate"`
	ReceivedFrom string `json:"receivedFrom"`
	Section      string `json:"section"`

	ApplicantName    string   `json:"applicantName"`
	ApplicantPhones  []string `json:"applicantPhones"`
	ApplicantEmail   string   `json:"applicantEmail"`
	ApplicantAddress string   `json:"applicantAddress"`

	ManagementName    string   `json:"managementName"`
	ManagementPerson  string   `json:"managementPerson"`
	ManagementPhones  []string `json:"managementPhones"`
	ManagementEmail   string   `json:"managementEmail"`
	ManagementAddress string   `json:"managementAddress"`

	Subject         string     `json:"subject"`
	CaseNotes       string     `json:"caseNotes,omitempty"`
	AmountRecovered float64    `json:"amountRecovered"`
	Status          CaseStatus `json:"status"`

	Hearings  []Hearing `json:"hearings"`
	CreatedAt Timestamp `json:"createdAt"`
}

// UnmarshalJSON also reads the single managementPhone field written by
// older snapshots, folding it into ManagementPhones when that list is empty.
func (c *Case) UnmarshalJSON(data []byte) error {
	type plain Case
	aux := struct {
		*plain
		ManagementPhone string `json:"managementPhone"`
	}{plain: (*plain)(c)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if phone := strings.TrimSpace(aux.ManagementPhone); phone != "" && len(c.ManagementPhones) == 0 {
		c.ManagementPhones = []string{phone}
	}
	return nil
}

// Hearing is a dated event tied to exactly one case
type Hearing struct {
	ID          string    `json:"id"`
	Date        Timestamp `json:"date"`
	Remarks     string    `json:"remarks"`
	IsCompleted bool      `json:"isCompleted"`
}

// Clone returns a deep copy so callers never share the phone or hearing
// slices of a stored snapshot.
func (c Case) Clone() Case {
	out := c
	out.ApplicantPhones = slices.Clone(c.ApplicantPhones)
	out.ManagementPhones = slices.Clone(c.ManagementPhones)
	out.Hearings = slices.Clone(c.Hearings)
	return out
}

// PrimaryApplicantPhone returns the first applicant phone or ""
func (c Case) PrimaryApplicantPhone() string {
	if len(c.ApplicantPhones) == 0 {
		return ""
	}
	return c.ApplicantPhones[0]
}

// PrimaryManagementPhone returns the first management phone or ""
func (c Case) PrimaryManagementPhone() string {
	if len(c.ManagementPhones) == 0 {
		return ""
	}
	return c.ManagementPhones[0]
}

// CaseIntake is the request body for registering a new case
type CaseIntake struct {
	FileNumber        string   `json:"fileNumber"`
	ReceivedDate      string   `json:"receivedDate"`
	ReceivedFrom      string   `json:"receivedFrom"`
	Section           string   `json:"section"`
	ApplicantName     string   `json:"applicantName"`
	ApplicantPhones   []string `json:"applicantPhones"`
	ApplicantEmail    string   `json:"applicantEmail"`
	ApplicantAddress  string   `json:"applicantAddress"`
	ManagementName    string   `json:"managementName"`
	ManagementPerson  string   `json:"managementPerson"`
	ManagementPhones  []string `json:"managementPhones"`
	ManagementEmail   string   `json:"managementEmail"`
	ManagementAddress string   `json:"managementAddress"`
	Subject           string   `json:"subject"`
	CaseNotes         string   `json:"caseNotes"`
	AmountRecovered   float64  `json:"amountRecovered"`
}

// HearingRequest is the request body for scheduling a hearing
type HearingRequest struct {
	Date    Timestamp `json:"date"`
	Remarks string    `json:"remarks"`
}

// AmountRequest is the request body for editing the recovered amount
type AmountRequest struct {
	AmountRecovered float64 `json:"amountRecovered"`
}

// CaseStats backs the dashboard summary cards
type CaseStats struct {
	Total                 int     `json:"total"`
	AmountRecovered       float64 `json:"amountRecovered"`
	Open                  int     `json:"open"`
	Closed                int     `json:"closed"`
	WithScheduledHearings int     `json:"withScheduledHearings"`
}

// PublicHearing is a hearing as shown on the public portal
type PublicHearing struct {
	Date        time.Time `json:"date"`
	Label       string    `json:"label"`
	IsCompleted bool      `json:"isCompleted"`
}

// PublicCaseView is the reduced projection served to unauthenticated callers.
// It never carries phones, emails, addresses or internal notes.
type PublicCaseView struct {
	FileNumber     string          `json:"fileNumber"`
	Section        string          `json:"section"`
	Status         CaseStatus      `json:"status"`
	Subject        string          `json:"subject"`
	ReceivedDate   string          `json:"receivedDate"`
	ApplicantName  string          `json:"applicantName"`
	ManagementName string          `json:"managementName"`
	Hearings       []PublicHearing `json:"hearings"`
	NextHearing    *PublicHearing  `json:"nextHearing,omitempty"`
}

// HealthStatus represents the server health check response
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Uptime  string `json:"uptime,omitempty"`
	Store   string `json:"store,omitempty"`
}

// DispatchSettings is the body of GET/PUT /settings/dispatch
type DispatchSettings struct {
	URL        string `json:"url"`
	Configured bool   `json:"configured"`
}

// VocabularyOption is the request body for adding an intake option
type VocabularyOption struct {
	Value string `json:"value"`
}

// VocabularyList is an intake vocabulary as served to the registration form
type VocabularyList struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
	Added   bool     `json:"added,omitempty"`
}

// LoginRequest is the officer gate request body
type LoginRequest struct {
	Key string `json:"key"`
}

// LoginResponse carries the session token issued by the officer gate
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NextHearingResponse wraps the scheduler's pick; Hearing is null when the case has none
type NextHearingResponse struct {
	CaseID  string   `json:"caseId"`
	Hearing *Hearing `json:"hearing"`
}
