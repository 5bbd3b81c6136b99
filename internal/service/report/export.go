package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/bntng-project/esensi-backend/internal/domain/report"
)

var exportHeader = []string{
	"Employee ID", "Employee Name", "Worked Days", "Total Hours",
	"Overtime Hours", "Daily Rate", "Overtime Rate",
	"Base Pay", "Overtime Pay", "Total Pay",
}

// ExportCSV renders the period report as CSV, one row per employee and a
// trailing totals row.
func ExportCSV(rep report.PeriodReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, s := range rep.Employees {
		row := []string{
			s.EmployeeID,
			s.EmployeeName,
			strconv.Itoa(s.WorkedDays),
			formatHours(s.TotalHours),
			formatHours(s.TotalOvertimeHours),
			s.DailyRate.StringFixed(2),
			s.OvertimeRate.StringFixed(2),
			s.TotalBasePay.StringFixed(2),
			s.TotalOvertimePay.StringFixed(2),
			s.TotalPay.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	totals := []string{
		"", "TOTAL",
		strconv.Itoa(rep.TotalWorkedDays),
		formatHours(rep.TotalHours),
		formatHours(rep.TotalOvertimeHours),
		"", "",
		rep.TotalBasePay.StringFixed(2),
		rep.TotalOvertimePay.StringFixed(2),
		rep.TotalPay.StringFixed(2),
	}
	if err := w.Write(totals); err != nil {
		return nil, err
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportXLSX renders the period report as a single-sheet workbook.
func ExportXLSX(rep report.PeriodReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll Report"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Payroll %s to %s", rep.StartDate, rep.EndDate)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}

	for col, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for i, s := range rep.Employees {
		values := []interface{}{
			s.EmployeeID,
			s.EmployeeName,
			s.WorkedDays,
			s.TotalHours,
			s.TotalOvertimeHours,
			s.DailyRate.InexactFloat64(),
			s.OvertimeRate.InexactFloat64(),
			s.TotalBasePay.InexactFloat64(),
			s.TotalOvertimePay.InexactFloat64(),
			s.TotalPay.InexactFloat64(),
		}
		if err := setRow(f, sheet, i+3, values); err != nil {
			return nil, err
		}
	}

	totalsRow := len(rep.Employees) + 3
	totals := []interface{}{
		"", "TOTAL",
		rep.TotalWorkedDays,
		rep.TotalHours,
		rep.TotalOvertimeHours,
		"", "",
		rep.TotalBasePay.InexactFloat64(),
		rep.TotalOvertimePay.InexactFloat64(),
		rep.TotalPay.InexactFloat64(),
	}
	if err := setRow(f, sheet, totalsRow, totals); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}
