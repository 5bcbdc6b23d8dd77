package services

import (
	"strings"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
)

// SearchCases returns the cases whose file number, party names or phone
// numbers contain query. Matching is case-insensitive substring containment.
// Phones also match on their digits alone, so "98765 43210" finds
// "987-654-3210". A blank query matches nothing. Input order is kept.
func SearchCases(query string, cases []models.Case) []models.Case {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.Case{}
	}
	qDigits := digitsOnly(q)

	out := make([]models.Case, 0)
	for _, c := range cases {
		if caseMatches(c, q, qDigits) {
			out = append(out, c)
		}
	}
	return out
}

// FindByFileNumber is the strict public lookup: case-insensitive equality on
// the file number, first match only.
func FindByFileNumber(query string, cases []models.Case) (models.Case, bool) {
	q := strings.TrimSpace(query)
	if q == "" {
		return models.Case{}, false
	}
	for _, c := range cases {
		if strings.EqualFold(c.FileNumber, q) {
			return c, true
		}
	}
	return models.Case{}, false
}

func caseMatches(c models.Case, q, qDigits string) bool {
	if strings.Contains(strings.ToLower(c.FileNumber), q) ||
		strings.Contains(strings.ToLower(c.ApplicantName), q) ||
		strings.Contains(strings.ToLower(c.ManagementName), q) {
		return true
	}
	return phonesMatch(c.ApplicantPhones, q, qDigits) ||
		phonesMatch(c.ManagementPhones, q, qDigits)
}

func phonesMatch(phones []string, q, qDigits string) bool {
	for _, p := range phones {
		if strings.Contains(strings.ToLower(p), q) {
			return true
		}
		if qDigits != "" && strings.Contains(digitsOnly(p), qDigits) {
			return true
		}
	}
	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
