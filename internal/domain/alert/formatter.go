// Package alert builds the public status text posted for every report.
package alert

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"alertacordon/internal/domain/entity"
)

const (
	// MaxStatusLength is the character budget of a post on X.
	MaxStatusLength = 280
	// Hashtag closes every status text.
	Hashtag  = " #AlertaCordon"
	ellipsis = "..."
)

// ReportSummary is the slice of a persisted report the status text needs.
type ReportSummary struct {
	ID          int64
	Location    string
	Description string
	Category    string
}

// SummaryOf extracts the formatter input from a stored report.
func SummaryOf(report *entity.Report) ReportSummary {
	return ReportSummary{
		ID:          report.ID,
		Location:    report.Location,
		Description: report.Description,
		Category:    report.Category,
	}
}

// Prefix returns the fixed head of a status text for r.
func Prefix(r ReportSummary) string {
	return "🚨 ALERTA CORDÓN #" + strconv.FormatInt(r.ID, 10) + ": " + r.Location + " (" + entity.CategoryLabel(r.Category) + ") - "
}

// Format renders r as a status text of at most MaxStatusLength characters.
// Only the description is shortened; when the location alone eats the budget
// the result keeps the full prefix and hashtag and runs over the limit.
func Format(r ReportSummary) string {
	prefix := Prefix(r)
	remaining := MaxStatusLength - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(Hashtag)

	return prefix + fitDescription(r.Description, remaining) + Hashtag
}

func fitDescription(description string, budget int) string {
	if utf8.RuneCountInString(description) <= budget {
		return description
	}

	keep := max(budget-len(ellipsis), 0)
	runes := []rune(description)

	return strings.TrimRightFunc(string(runes[:keep]), unicode.IsSpace) + ellipsis
}
