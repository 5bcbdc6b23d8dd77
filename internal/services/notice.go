package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
)

var ErrHearingNotFound = errors.New("hearing not found")

// HearingPolicy picks a notice's hearing when the caller does not
type HearingPolicy string

const (
	// PolicyLastAdded takes the last hearing in insertion order.
	PolicyLastAdded HearingPolicy = "last"
	// PolicyNextEvent takes the scheduler's next hearing.
	PolicyNextEvent HearingPolicy = "next"
)

// ParseHearingPolicy validates a configured policy
func ParseHearingPolicy(s string) (HearingPolicy, error) {
	switch p := HearingPolicy(s); p {
	case PolicyLastAdded, PolicyNextEvent:
		return p, nil
	}
	return "", fmt.Errorf("unknown hearing policy %q", s)
}

const (
	noticeTitle      = "JOINT MEETING NOTICE"
	noticeSalutation = "The Managing Director / Manager,"

	dispatchDateLayout = "02/01/2006"
	eventDateLayout    = "Monday, 2 January 2006"
	eventTimeLayout    = "15:04"
	contentDateLayout  = "02/01/2006, 15:04"
)

var noticeBody = []string{
	"It is brought to your notice that a formal labor representation has been registered in this office under the relevant provisions of the Labor Laws. The applicant (Petitioner) has raised serious concerns regarding industrial peace and statutory compliance.",
	"You are strictly directed to attend the aforementioned meeting in person or through an authorized representative well-versed with the facts of the case. Failure to attend without valid prior intimation will result in the matter being decided ex-parte based on the merits of the petitioner's claim.",
}

// NoticeComposer projects a case and one of its hearings into a notice
// document and a dispatch payload.
type NoticeComposer struct {
	letterhead models.Letterhead
	loc        *time.Location
	policy     HearingPolicy
	scheduler  *Scheduler
}

func NewNoticeComposer(letterhead models.Letterhead, loc *time.Location, policy HearingPolicy, scheduler *Scheduler) *NoticeComposer {
	if loc == nil {
		loc = time.Local
	}
	return &NoticeComposer{letterhead: letterhead, loc: loc, policy: policy, scheduler: scheduler}
}

// Policy returns the configured default hearing policy
func (n *NoticeComposer) Policy() HearingPolicy { return n.policy }

// DefaultHearing applies the configured policy. It returns nil when the
// case has no hearings.
func (n *NoticeComposer) DefaultHearing(c models.Case) *models.Hearing {
	var (
		h  models.Hearing
		ok bool
	)
	if n.policy == PolicyNextEvent {
		h, ok = n.scheduler.NextEvent(c.Hearings)
	} else {
		h, ok = LastHearing(c.Hearings)
	}
	if !ok {
		return nil
	}
	return &h
}

// SelectHearing resolves an explicit hearing id, falling back to
// DefaultHearing when hearingID is empty.
func (n *NoticeComposer) SelectHearing(c models.Case, hearingID string) (*models.Hearing, error) {
	if hearingID == "" {
		return n.DefaultHearing(c), nil
	}
	for _, h := range c.Hearings {
		if h.ID == hearingID {
			return &h, nil
		}
	}
	return nil, fmt.Errorf("select hearing %s on case %s: %w", hearingID, c.ID, ErrHearingNotFound)
}

// Compose builds the notice. A nil hearing renders the pending sentinel in
// place of a date.
func (n *NoticeComposer) Compose(c models.Case, h *models.Hearing) models.NoticeDocument {
	today := n.scheduler.Now().In(n.loc)

	doc := models.NoticeDocument{
		Letterhead:   n.letterhead,
		Title:        noticeTitle,
		FileNumber:   c.FileNumber,
		Section:      c.Section,
		DispatchDate: today.Format(dispatchDateLayout),
		Recipient: models.RecipientBlock{
			Salutation:    noticeSalutation,
			Name:          c.ManagementName,
			Address:       c.ManagementAddress,
			ContactPerson: c.ManagementPerson,
			ContactPhone:  c.PrimaryManagementPhone(),
		},
		SubjectLine: fmt.Sprintf("Industrial Relations Dispute - Case filed by %s regarding \"%s\" - Summons for Joint Meeting - Regarding.",
			c.ApplicantName, c.Subject),
		Body: append([]string(nil), noticeBody...),
		Event: models.ScheduledEvent{
			Pending: true,
			Display: models.PendingScheduling,
			Venue:   n.letterhead.Venue,
		},
		Signatory: []string{"Assistant Commissioner of Labour", n.letterhead.District},
		CopyTo: []string{
			fmt.Sprintf("Sri %s - (Transmitted via Digital Record)", c.ApplicantName),
			fmt.Sprintf("Official Case Repository - %s", c.FileNumber),
		},
	}

	if h != nil && !h.Date.IsZero() {
		at := h.Date.In(n.loc)
		ts := models.NewTimestamp(at)
		doc.Event = models.ScheduledEvent{
			HearingID: h.ID,
			At:        &ts,
			Date:      at.Format(eventDateLayout),
			Time:      at.Format(eventTimeLayout),
			Display:   fmt.Sprintf("On %s at %s", at.Format(eventDateLayout), at.Format(eventTimeLayout)),
			Venue:     n.letterhead.Venue,
		}
	}
	return doc
}

// NoticeContent is the one-line notice text carried in the dispatch payload
func (n *NoticeComposer) NoticeContent(c models.Case, h *models.Hearing) string {
	when := models.HearingDateTBD
	if h != nil && !h.Date.IsZero() {
		when = h.Date.In(n.loc).Format(contentDateLayout)
	}
	return fmt.Sprintf("OFFICIAL JOINT MEETING NOTICE: Reference File %s. You are hereby directed to attend a joint meeting regarding %s on %s.",
		c.FileNumber, c.Subject, when)
}

// BuildPayload projects the case into the automation endpoint's schema
func (n *NoticeComposer) BuildPayload(c models.Case, h *models.Hearing) models.DispatchPayload {
	hearingDate := models.HearingDateTBD
	if h != nil && !h.Date.IsZero() {
		hearingDate = h.Date.In(n.loc).Format(time.RFC3339)
	}

	phones := append([]string{}, c.ManagementPhones...)

	return models.DispatchPayload{
		Timestamp:  n.scheduler.Now().UTC().Format(time.RFC3339Nano),
		FileNumber: c.FileNumber,
		Section:    c.Section,
		Subject:    c.Subject,
		Applicant: models.ApplicantContact{
			Name:    c.ApplicantName,
			Phone:   c.PrimaryApplicantPhone(),
			Email:   c.ApplicantEmail,
			Address: c.ApplicantAddress,
		},
		Management: models.ManagementContact{
			Name:    c.ManagementName,
			Person:  c.ManagementPerson,
			Phones:  phones,
			Email:   c.ManagementEmail,
			Address: c.ManagementAddress,
		},
		HearingDate:   hearingDate,
		NoticeContent: n.NoticeContent(c, h),
	}
}
