package services

import (
	"strings"
	"testing"

	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/models"
	"github.com/stretchr/testify/assert"
)

func matcherFixture() []models.Case {
	a := sampleCase("1", "TG/LC/2025/001")
	b := sampleCase("2", "A/1024/2024")
	b.ApplicantName = "Lakshmi Devi"
	b.ApplicantPhones = []string{"+91 99490 12345", "040-2345-6789"}
	b.ManagementName = "Deccan Foods"
	b.ManagementPhones = []string{"(040) 555 0101"}
	c := sampleCase("3", "B/77/2023")
	c.ApplicantName = "Mohammed Irfan"
	c.ApplicantPhones = nil
	c.ManagementName = "Sunrise Logistics"
	c.ManagementPhones = nil
	return []models.Case{a, b, c}
}

func TestSearchCases_Fields(t *testing.T) {
	cases := matcherFixture()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"file number substring", "2025/0", []string{"1"}},
		{"applicant name", "lakshmi", []string{"2"}},
		{"management name shared", "sunrise", []string{"1", "3"}},
		{"raw phone text", "+91 99490", []string{"2"}},
		{"digits only phone", "9876543210", []string{"1"}},
		{"digits with different separators", "98765-43210", []string{"1"}},
		{"secondary phone", "23456789", []string{"2"}},
		{"management phone digits", "0405550101", []string{"2"}},
		{"no match", "zzz", []string{}},
		{"surrounding space ignored", "  irfan ", []string{"3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SearchCases(tt.query, cases)))
		})
	}
}

func TestSearchCases_EmptyQuery(t *testing.T) {
	cases := matcherFixture()
	for _, q := range []string{"", "   ", "\t\n"} {
		got := SearchCases(q, cases)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestSearchCases_CaseInsensitive(t *testing.T) {
	cases := matcherFixture()
	for _, q := range []string{"tg/lc", "Sunrise", "deccan", "a/1024", "irfan"} {
		assert.Equal(t, ids(SearchCases(q, cases)), ids(SearchCases(strings.ToUpper(q), cases)), q)
	}
}

func TestSearchCases_PunctuatedPhone(t *testing.T) {
	c := sampleCase("p", "X/1")
	c.ApplicantPhones = []string{"987-654-3210"}
	got := SearchCases("9876543210", []models.Case{c})
	assert.Len(t, got, 1)
}

func TestSearchCases_PreservesOrder(t *testing.T) {
	cases := matcherFixture()
	// every fixture file number contains a slash
	assert.Equal(t, []string{"1", "2", "3"}, ids(SearchCases("/", cases)))
}

func TestFindByFileNumber(t *testing.T) {
	cases := matcherFixture()

	c, ok := FindByFileNumber("tg/lc/2025/001", cases)
	assert.True(t, ok)
	assert.Equal(t, "1", c.ID)

	c, ok = FindByFileNumber("  A/1024/2024 ", cases)
	assert.True(t, ok)
	assert.Equal(t, "2", c.ID)

	_, ok = FindByFileNumber("2025/001", cases)
	assert.False(t, ok, "partial file numbers must not match")

	_, ok = FindByFileNumber("", cases)
	assert.False(t, ok)
}

func TestFindByFileNumber_FirstMatchOnly(t *testing.T) {
	cases := []models.Case{sampleCase("first", "DUP/1"), sampleCase("second", "dup/1")}
	c, ok := FindByFileNumber("Dup/1", cases)
	assert.True(t, ok)
	assert.Equal(t, "first", c.ID)
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "919876543210", digitsOnly("+91 (98765) 43-210"))
	assert.Equal(t, "", digitsOnly("no digits"))
}
