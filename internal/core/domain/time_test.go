package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateTimeUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want time.Time
	}{
		{"date only", `"2025-01-01"`, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", `"2025-06-15T10:30:00Z"`, time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"rfc3339 with offset", `"2025-06-15T12:30:00+02:00"`, time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)},
		{"empty string", `""`, time.Time{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var dt DateTime
			require.NoError(t, json.Unmarshal([]byte(tc.in), &dt))
			require.True(t, dt.Time.Equal(tc.want), "got %v want %v", dt.Time, tc.want)
		})
	}
}

func TestDateTimeUnmarshalRejectsGarbage(t *testing.T) {
	var dt DateTime
	require.Error(t, json.Unmarshal([]byte(`"yesterday"`), &dt))
}
