package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
	"go.uber.org/zap"
)

var ErrNegativeAmount = errors.New("amount recovered cannot be negative")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidationError reports a rejected intake field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CaseService handles case business logic on top of the repository
type CaseService struct {
	repo      *CaseRepository
	lifecycle *StatusLifecycle
	scheduler *Scheduler
	vocab     *Vocabularies
	loc       *time.Location
	logger    *zap.SugaredLogger
}

// NewCaseService creates a new case service
func NewCaseService(repo *CaseRepository, lifecycle *StatusLifecycle, scheduler *Scheduler, vocab *Vocabularies, loc *time.Location, logger *zap.SugaredLogger) *CaseService {
	if loc == nil {
		loc = time.Local
	}
	return &CaseService{
		repo:      repo,
		lifecycle: lifecycle,
		scheduler: scheduler,
		vocab:     vocab,
		loc:       loc,
		logger:    logger,
	}
}

// Register validates and normalises an intake and stores it as a new case
func (s *CaseService) Register(ctx context.Context, in models.CaseIntake) (models.Case, error) {
	c := models.Case{
		FileNumber:        strings.TrimSpace(in.FileNumber),
		ReceivedDate:      strings.TrimSpace(in.ReceivedDate),
		ReceivedFrom:      strings.TrimSpace(in.ReceivedFrom),
		Section:           strings.TrimSpace(in.Section),
		ApplicantName:     strings.TrimSpace(in.ApplicantName),
		ApplicantPhones:   compactPhones(in.ApplicantPhones),
		ApplicantEmail:    strings.TrimSpace(in.ApplicantEmail),
		ApplicantAddress:  strings.TrimSpace(in.ApplicantAddress),
		ManagementName:    strings.TrimSpace(in.ManagementName),
		ManagementPerson:  strings.TrimSpace(in.ManagementPerson),
		ManagementPhones:  compactPhones(in.ManagementPhones),
		ManagementEmail:   strings.TrimSpace(in.ManagementEmail),
		ManagementAddress: strings.TrimSpace(in.ManagementAddress),
		Subject:           strings.TrimSpace(in.Subject),
		CaseNotes:         strings.TrimSpace(in.CaseNotes),
		AmountRecovered:   in.AmountRecovered,
	}

	now := s.scheduler.Now().In(s.loc)
	if c.FileNumber == "" {
		c.FileNumber = generateFileNumber(now)
	}
	if c.ReceivedDate == "" {
		c.ReceivedDate = now.Format("2006-01-02")
	}
	if c.ReceivedFrom == "" && s.vocab != nil {
		c.ReceivedFrom = s.vocab.Channels.First()
	}
	if c.Section == "" && s.vocab != nil {
		c.Section = s.vocab.Sections.First()
	}

	if err := validateCase(c); err != nil {
		return models.Case{}, err
	}

	c.ID = uuid.NewString()
	snap, err := s.repo.Create(ctx, c)
	if err != nil {
		return models.Case{}, fmt.Errorf("register case: %w", err)
	}
	stored, _ := snap.Get(c.ID)

	s.logger.Infow("Case registered",
		"id", stored.ID,
		"file_number", stored.FileNumber,
		"section", stored.Section,
	)
	return stored, nil
}

// Get returns one case
func (s *CaseService) Get(id string) (models.Case, error) {
	return s.repo.Get(id)
}

// List returns every case, newest registration first
func (s *CaseService) List() []models.Case {
	return s.repo.List()
}

// Search runs the fractional matcher over the current snapshot
func (s *CaseService) Search(query string) []models.Case {
	return SearchCases(query, s.repo.Snapshot().Cases())
}

// AddHearing appends a new, not yet completed hearing
func (s *CaseService) AddHearing(ctx context.Context, id string, date models.Timestamp, remarks string) (models.Case, error) {
	if date.IsZero() {
		return models.Case{}, &ValidationError{Field: "date", Message: "hearing date is required"}
	}

	h := models.Hearing{
		ID:      uuid.NewString(),
		Date:    date,
		Remarks: strings.TrimSpace(remarks),
	}
	c, err := s.repo.Mutate(ctx, id, func(c *models.Case) error {
		c.Hearings = append(c.Hearings, h)
		return nil
	})
	if err != nil {
		return models.Case{}, fmt.Errorf("add hearing: %w", err)
	}

	s.logger.Infow("Hearing scheduled", "case_id", id, "hearing_id", h.ID, "date", date.Time)
	return c, nil
}

// SetAmountRecovered replaces the recovered amount
func (s *CaseService) SetAmountRecovered(ctx context.Context, id string, amount float64) (models.Case, error) {
	if amount < 0 {
		return models.Case{}, ErrNegativeAmount
	}

	c, err := s.repo.Mutate(ctx, id, func(c *models.Case) error {
		c.AmountRecovered = amount
		return nil
	})
	if err != nil {
		return models.Case{}, fmt.Errorf("set amount recovered: %w", err)
	}

	s.logger.Infow("Amount recovered updated", "case_id", id, "amount", amount)
	return c, nil
}

// ToggleStatus moves the case to the lifecycle's next status
func (s *CaseService) ToggleStatus(ctx context.Context, id string) (models.Case, error) {
	var from models.CaseStatus
	c, err := s.repo.Mutate(ctx, id, func(c *models.Case) error {
		from = c.Status
		c.Status = s.lifecycle.Toggle(from)
		return nil
	})
	if err != nil {
		return models.Case{}, fmt.Errorf("toggle status: %w", err)
	}

	s.logger.Infow("Case status changed", "case_id", id, "from", from, "to", c.Status)
	return c, nil
}

// NextHearing returns the scheduler's current hearing for a case
func (s *CaseService) NextHearing(id string) (*models.Hearing, error) {
	c, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	h, ok := s.scheduler.NextEvent(c.Hearings)
	if !ok {
		return nil, nil
	}
	return &h, nil
}

// Stats aggregates the dashboard summary over every case
func (s *CaseService) Stats() models.CaseStats {
	var st models.CaseStats
	for _, c := range s.repo.Snapshot().Cases() {
		st.Total++
		st.AmountRecovered += c.AmountRecovered
		switch c.Status {
		case models.StatusOpen:
			st.Open++
		case models.StatusClosed:
			st.Closed++
		}
		for _, h := range c.Hearings {
			if !h.IsCompleted {
				st.WithScheduledHearings++
				break
			}
		}
	}
	return st
}

// PublicLookup finds a case by exact file number and projects it for the portal
func (s *CaseService) PublicLookup(fileNumber string) (models.PublicCaseView, bool) {
	c, ok := FindByFileNumber(fileNumber, s.repo.Snapshot().Cases())
	if !ok {
		return models.PublicCaseView{}, false
	}
	return s.publicView(c), true
}

// PublicSearch runs the fractional matcher and projects every hit for the portal
func (s *CaseService) PublicSearch(query string) []models.PublicCaseView {
	hits := s.Search(query)
	out := make([]models.PublicCaseView, 0, len(hits))
	for _, c := range hits {
		out = append(out, s.publicView(c))
	}
	return out
}

func (s *CaseService) publicView(c models.Case) models.PublicCaseView {
	v := models.PublicCaseView{
		FileNumber:     c.FileNumber,
		Section:        c.Section,
		Status:         c.Status,
		Subject:        c.Subject,
		ReceivedDate:   c.ReceivedDate,
		ApplicantName:  c.ApplicantName,
		ManagementName: c.ManagementName,
		Hearings:       make([]models.PublicHearing, 0, len(c.Hearings)),
	}
	// newest first, as the portal timeline shows them
	for i := len(c.Hearings) - 1; i >= 0; i-- {
		v.Hearings = append(v.Hearings, publicHearing(c.Hearings[i]))
	}
	if h, ok := s.scheduler.NextEvent(c.Hearings); ok {
		ph := publicHearing(h)
		v.NextHearing = &ph
	}
	return v
}

func publicHearing(h models.Hearing) models.PublicHearing {
	label := "Joint Meeting Scheduled"
	if h.IsCompleted {
		label = "Resolution Event Recorded"
	}
	return models.PublicHearing{Date: h.Date.Time, Label: label, IsCompleted: h.IsCompleted}
}

func validateCase(c models.Case) error {
	switch {
	case c.ApplicantName == "":
		return &ValidationError{Field: "applicantName", Message: "petitioner name is required"}
	case c.ManagementName == "":
		return &ValidationError{Field: "managementName", Message: "respondent name is required"}
	case c.ApplicantEmail != "" && !emailPattern.MatchString(c.ApplicantEmail):
		return &ValidationError{Field: "applicantEmail", Message: "email format is invalid"}
	case c.ManagementEmail != "" && !emailPattern.MatchString(c.ManagementEmail):
		return &ValidationError{Field: "managementEmail", Message: "official email format is invalid"}
	case c.AmountRecovered < 0:
		return &ValidationError{Field: "amountRecovered", Message: ErrNegativeAmount.Error()}
	}
	return nil
}

// compactPhones trims entries and drops blanks, keeping order
func compactPhones(phones []string) []string {
	out := make([]string, 0, len(phones))
	for _, p := range phones {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func generateFileNumber(now time.Time) string {
	return fmt.Sprintf("A/%04d/%d", 1000+rand.Intn(9000), now.Year())
}
