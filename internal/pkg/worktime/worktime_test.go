package worktime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	parsed, err := time.Parse("2006-01-02 15:04:05", value)
	require.NoError(t, err)
	return parsed
}

func TestHours(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		want float64
	}{
		{"same day", "2024-03-01 08:00:00", "2024-03-01 17:30:00", 9.5},
		{"overnight full day", "2024-01-05 04:00:00", "2024-01-06 04:00:00", 24.00},
		{"overnight partial", "2024-01-05 22:00:00", "2024-01-06 06:15:00", 8.25},
		{"fractional", "2024-03-01 09:00:00", "2024-03-01 17:20:00", 8.33},
		{"equal instants", "2024-03-01 08:00:00", "2024-03-01 08:00:00", 0},
		{"checkout before checkin", "2024-03-01 08:00:00", "2024-03-01 07:00:00", 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Hours(mustTime(t, c.in), mustTime(t, c.out))
			assert.Equal(t, c.want, got)
		})
	}
}

func TestOvertime(t *testing.T) {
	assert.Equal(t, 1.5, Overtime(9.5, 8))
	assert.Equal(t, 0.0, Overtime(7.0, 8))
	assert.Equal(t, 0.0, Overtime(8.0, 8))
	assert.Equal(t, 16.0, Overtime(24.0, 8))
	assert.Equal(t, 0.25, Overtime(8.25, 8))
}

func TestOnDay(t *testing.T) {
	day := mustTime(t, "2024-01-06 00:00:00")
	clock := mustTime(t, "2024-01-05 04:30:15")

	combined := OnDay(day, clock)
	assert.Equal(t, "2024-01-06 04:30:15", combined.Format("2006-01-02 15:04:05"))
}

func TestSecondsOfDay(t *testing.T) {
	assert.Equal(t, 0, SecondsOfDay(mustTime(t, "2024-01-05 00:00:00")))
	assert.Equal(t, 4*3600+30*60+15, SecondsOfDay(mustTime(t, "2024-01-05 04:30:15")))
	assert.Equal(t, 86399, SecondsOfDay(mustTime(t, "2024-01-05 23:59:59")))
}
