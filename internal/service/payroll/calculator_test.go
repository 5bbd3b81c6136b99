package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/bntng-project/esensi-backend/internal/domain/attendance"
	"github.com/bntng-project/esensi-backend/internal/domain/employee"
)

func TestDailyPay(t *testing.T) {
	cases := []struct {
		name          string
		dailyRate     string
		overtimeHours float64
		overtimeRate  string
		want          string
	}{
		{"with overtime", "100000", 2.0, "15000", "130000"},
		{"no overtime", "100000", 0, "15000", "100000"},
		{"fractional overtime", "100000", 1.5, "15000", "122500"},
		{"fractional rate", "80000", 0.25, "10000", "82500"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rate := decimal.RequireFromString(c.dailyRate)
			otRate := decimal.RequireFromString(c.overtimeRate)
			got := DailyPay(rate, c.overtimeHours, otRate)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"DailyPay = %s, want %s", got, c.want)
		})
	}
}

func completedRecord(day time.Time, totalHours, overtimeHours float64) attendance.Record {
	return attendance.Record{
		Date:          day,
		TotalHours:    &totalHours,
		OvertimeHours: &overtimeHours,
		Status:        attendance.StatusCompleted,
	}
}

func TestSummarize(t *testing.T) {
	emp := employee.Employee{
		ID:                 "emp-1",
		FullName:           "Budi Santoso",
		DailyRate:          decimal.RequireFromString("100000"),
		OvertimeHourlyRate: decimal.RequireFromString("15000"),
	}

	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	records := []attendance.Record{
		completedRecord(day, 8.0, 0),
		completedRecord(day.AddDate(0, 0, 1), 9.5, 1.5),
		completedRecord(day.AddDate(0, 0, 2), 10.0, 2.0),
	}

	summary := Summarize(emp, records)

	assert.Equal(t, 3, summary.WorkedDays)
	assert.InDelta(t, 27.5, summary.TotalHours, 0.001)
	assert.InDelta(t, 3.5, summary.TotalOvertimeHours, 0.001)
	assert.True(t, summary.TotalBasePay.Equal(decimal.RequireFromString("300000")),
		"TotalBasePay = %s", summary.TotalBasePay)
	assert.True(t, summary.TotalOvertimePay.Equal(decimal.RequireFromString("52500")),
		"TotalOvertimePay = %s", summary.TotalOvertimePay)
	assert.True(t, summary.TotalPay.Equal(decimal.RequireFromString("352500")),
		"TotalPay = %s", summary.TotalPay)
}

func TestSummarize_SkipsIncompleteRecords(t *testing.T) {
	emp := employee.Employee{
		ID:                 "emp-1",
		DailyRate:          decimal.RequireFromString("100000"),
		OvertimeHourlyRate: decimal.RequireFromString("15000"),
	}

	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	records := []attendance.Record{
		completedRecord(day, 8.0, 0),
		{Date: day.AddDate(0, 0, 1), Status: attendance.StatusCheckedIn},
		{Date: day.AddDate(0, 0, 2), Status: attendance.StatusNotCheckedIn},
	}

	summary := Summarize(emp, records)

	assert.Equal(t, 1, summary.WorkedDays)
	assert.True(t, summary.TotalPay.Equal(decimal.RequireFromString("100000")),
		"TotalPay = %s", summary.TotalPay)
}

func TestSummarize_EmptyPeriod(t *testing.T) {
	emp := employee.Employee{
		ID:        "emp-1",
		DailyRate: decimal.RequireFromString("100000"),
	}

	summary := Summarize(emp, nil)

	assert.Equal(t, 0, summary.WorkedDays)
	assert.True(t, summary.TotalPay.IsZero())
	assert.True(t, summary.TotalBasePay.IsZero())
}
