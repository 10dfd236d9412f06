package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_AcceptsServerFormats(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"rfc3339", `"2025-03-01T12:34:56Z"`, time.Date(2025, 3, 1, 12, 34, 56, 0, time.UTC)},
		{"zoneless", `"2025-03-01T12:34:56"`, time.Date(2025, 3, 1, 12, 34, 56, 0, time.UTC)},
		{"zoneless with fraction", `"2025-03-01T12:34:56.123456"`, time.Date(2025, 3, 1, 12, 34, 56, 123456000, time.UTC)},
		{"null", `null`, time.Time{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, ts.Equal(tt.want), "got %v want %v", ts.Time, tt.want)
		})
	}
}

func TestTimestamp_RejectsGarbage(t *testing.T) {
	var ts Timestamp
	assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &ts))
}

func TestTimestamp_RoundTripsInsidePost(t *testing.T) {
	in := []byte(`{"id":1,"title":"글","createdAt":"2025-03-01T09:00:00"}`)

	var p Post
	require.NoError(t, json.Unmarshal(in, &p))
	assert.Equal(t, 2025, p.CreatedAt.Year())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"createdAt":"2025-03-01T09:00:00Z"`)
}
