package models

// PendingScheduling is rendered in place of a date when a notice has no hearing
const PendingScheduling = "PENDING SCHEDULING"

// HearingDateTBD is the payload hearingDate when no hearing is selected
const HearingDateTBD = "TBD"

// Letterhead is the static office header printed on every notice
type Letterhead struct {
	Government string `json:"government"`
	Department string `json:"department"`
	Office     string `json:"office"`
	District   string `json:"district"`
	Venue      string `json:"venue"`
}

// RecipientBlock addresses the respondent establishment
type RecipientBlock struct {
	Salutation    string `json:"salutation"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactPerson string `json:"contactPerson"`
	ContactPhone  string `json:"contactPhone"`
}

// ScheduledEvent is the hearing block of a notice. When Pending is set the
// Date and Time fields are empty and Display holds PendingScheduling.
type ScheduledEvent struct {
	Pending   bool       `json:"pending"`
	HearingID string     `json:"hearingId,omitempty"`
	At        *Timestamp `json:"at,omitempty"`
	Date      string     `json:"date,omitempty"`
	Time      string     `json:"time,omitempty"`
	Display   string     `json:"display"`
	Venue     string     `json:"venue"`
}

// NoticeDocument is a joint meeting notice projected from a case
type NoticeDocument struct {
	Letterhead   Letterhead     `json:"letterhead"`
	Title        string         `json:"title"`
	FileNumber   string         `json:"fileNumber"`
	Section      string         `json:"section"`
	DispatchDate string         `json:"dispatchDate"`
	Recipient    RecipientBlock `json:"recipient"`
	SubjectLine  string         `json:"subjectLine"`
	Body         []string       `json:"body"`
	Event        ScheduledEvent `json:"event"`
	Signatory    []string       `json:"signatory"`
	CopyTo       []string       `json:"copyTo"`
}

// ApplicantContact is the petitioner block of a dispatch payload
type ApplicantContact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ManagementContact is the respondent block of a dispatch payload
type ManagementContact struct {
	Name    string   `json:"name"`
	Person  string   `json:"person"`
	Phones  []string `json:"phones"`
	Email   string   `json:"email"`
	Address string   `json:"address"`
}

// DispatchPayload is the JSON body posted to the dispatch endpoint
type DispatchPayload struct {
	Timestamp     string            `json:"timestamp"`
	FileNumber    string            `json:"fileNumber"`
	Section       string            `json:"section"`
	Subject       string            `json:"subject"`
	Applicant     ApplicantContact  `json:"applicant"`
	Management    ManagementContact `json:"management"`
	HearingDate   string            `json:"hearingDate"`
	NoticeContent string            `json:"noticeContent"`
}

// DispatchOutcome is the observable state of a notice dispatch
type DispatchOutcome string

const (
	DispatchIdle    DispatchOutcome = "idle"
	DispatchPending DispatchOutcome = "pending"
	DispatchSuccess DispatchOutcome = "success"
	DispatchFailure DispatchOutcome = "failure"
)

// DispatchResult is what a single send produced
type DispatchResult struct {
	Outcome    DispatchOutcome `json:"outcome"`
	StatusCode int             `json:"statusCode,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// DispatchStatus is the surfaced outcome for one case
type DispatchStatus struct {
	CaseID  string          `json:"caseId"`
	Outcome DispatchOutcome `json:"outcome"`
	Result  *DispatchResult `json:"result,omitempty"`
}

// NoticeRequest selects the hearing for a notice; empty HearingID uses the default policy
type NoticeRequest struct {
	HearingID string `json:"hearingId"`
}
