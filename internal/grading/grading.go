// Package grading converts marks into grade points and credit-weighted averages.
package grading

import "github.com/shopspring/decimal"

// Thresholds on the combined total (cie + see, range 0..150), highest first.
var thresholds = []struct {
	min   int
	point int
}{
	{135, 10},
	{120, 9},
	{105, 8},
	{90, 7},
	{75, 6},
	{60, 5},
}

// Row is one subject result that contributes to an average.
type Row struct {
	CIE     int
	SEE     int
	Credits int
}

// Total returns the combined mark.
func (r Row) Total() int {
	return r.CIE + r.SEE
}

// GradePoint maps a combined total to a grade point. Totals below 60 fail with 0.
func GradePoint(total int) int {
	for _, t := range thresholds {
		if total >= t.min {
			return t.point
		}
	}
	return 0
}

// SGPA is the credit-weighted mean of grade points over all rows, failed
// subjects included. An empty set or zero credit sum yields zero.
func SGPA(rows []Row) decimal.Decimal {
	var points, credits int64
	for _, r := range rows {
		points += int64(GradePoint(r.Total()) * r.Credits)
		credits += int64(r.Credits)
	}
	return average(points, credits)
}

// CGPA is like SGPA but only rows with a positive grade point count, in both
// the numerator and the credit sum.
func CGPA(rows []Row) decimal.Decimal {
	var points, credits int64
	for _, r := range rows {
		gp := GradePoint(r.Total())
		if gp <= 0 {
			continue
		}
		points += int64(gp * r.Credits)
		credits += int64(r.Credits)
	}
	return average(points, credits)
}

// Mean averages already rounded values, e.g. CGPAs across students.
func Mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return decimal.Avg(values[0], values[1:]...).Round(2)
}

// Format renders a value with exactly two decimals.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// average divides exactly and rounds half away from zero to two places.
func average(points, credits int64) decimal.Decimal {
	if credits <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(points).
		DivRound(decimal.NewFromInt(credits), 2)
}
