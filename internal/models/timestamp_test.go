package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2024-09-01T10:30:00Z"`, time.Date(2024, 9, 1, 10, 30, 0, 0, time.UTC)},
		{"offset", `"2024-09-01T12:30:00+02:00"`, time.Date(2024, 9, 1, 10, 30, 0, 0, time.UTC)},
		{"naive", `"2024-09-01T10:30:00.123456"`, time.Date(2024, 9, 1, 10, 30, 0, 123456000, time.UTC)},
		{"naive with space", `"2024-09-01 10:30:00"`, time.Date(2024, 9, 1, 10, 30, 0, 0, time.UTC)},
		{"null", `null`, time.Time{}},
		{"empty", `""`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, tt.want.Equal(ts.Time), "got %v", ts.Time)
		})
	}
}

func TestTimestamp_InvalidFormat(t *testing.T) {
	var ts Timestamp
	err := json.Unmarshal([]byte(`"yesterday"`), &ts)
	assert.ErrorContains(t, err, "unsupported format")
}

func TestIncident_DecodesNaiveTimestamps(t *testing.T) {
	body := `[{"id": 1, "title": "Fire", "created_at": "2024-09-01T10:30:00", "updated_at": "2024-09-01T11:00:00Z"}]`

	var incidents []Incident
	require.NoError(t, json.Unmarshal([]byte(body), &incidents))

	require.Len(t, incidents, 1)
	assert.Equal(t, 10, incidents[0].CreatedAt.Hour())
	assert.Equal(t, 11, incidents[0].UpdatedAt.Hour())
}
