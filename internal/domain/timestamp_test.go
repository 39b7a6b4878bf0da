package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luanova/internal/domain"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		want     time.Time
		floating bool
	}{
		{"RFC 3339", `"2024-05-20T15:00:00Z"`, time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC), false},
		{"RFC 3339 com milissegundos", `"2024-05-20T15:00:00.123Z"`, time.Date(2024, 5, 20, 15, 0, 0, 123000000, time.UTC), false},
		{"sem fuso", `"2024-05-20T15:00:00"`, time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC), true},
		{"espaço no lugar do T", `"2024-05-20 15:00:00"`, time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC), true},
		{"só a data", `"2024-05-20"`, time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), true},
		{"milissegundos", `1716217200000`, time.Date(2024, 5, 20, 15, 0, 0, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts domain.Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.in), &ts))
			assert.True(t, tt.want.Equal(ts.Time), ts.Time.String())
			assert.Equal(t, tt.floating, ts.Floating)
		})
	}
}

func TestTimestamp_UnmarshalJSON_UnreadableIsZero(t *testing.T) {
	for _, in := range []string{`null`, `""`, `"ontem"`, `"20/05/2024"`, `true`, `{"x":1}`} {
		var ts domain.Timestamp
		require.NoError(t, json.Unmarshal([]byte(in), &ts), in)
		assert.True(t, ts.IsZero(), in)
	}
}
