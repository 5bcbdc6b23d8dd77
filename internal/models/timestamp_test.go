package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	prev := DecodeLocation
	DecodeLocation = time.UTC
	defer func() { DecodeLocation = prev }()

	tests := []struct {
		in   string
		want time.Time
	}{
		{"2025-02-10T10:30:00Z", time.Date(2025, 2, 10, 10, 30, 0, 0, time.UTC)},
		{"2025-02-10T10:30", time.Date(2025, 2, 10, 10, 30, 0, 0, time.UTC)},
		{"2025-02-10T10:30:15", time.Date(2025, 2, 10, 10, 30, 15, 0, time.UTC)},
		{"2025-02-10", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got.Time), "got %v", got.Time)
		})
	}

	_, err := ParseTimestamp("next tuesday")
	assert.Error(t, err)
}

func TestTimestamp_JSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC))

	data, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-02T10:30:00Z"`, string(data))

	var decoded Timestamp
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, ts, decoded)

	var empty Timestamp
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`42`), &empty))
}

func TestCase_Clone(t *testing.T) {
	c := Case{
		ApplicantPhones:  []string{"1"},
		ManagementPhones: []string{"2"},
		Hearings:         []Hearing{{ID: "h1"}},
	}
	clone := c.Clone()
	clone.ApplicantPhones[0] = "x"
	clone.Hearings[0].ID = "changed"

	assert.Equal(t, "1", c.ApplicantPhones[0])
	assert.Equal(t, "h1", c.Hearings[0].ID)
}
