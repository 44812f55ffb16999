package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chartgrep/chartgrep/pkg/records"
)

// Define styles using lipgloss
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Margin(1, 0, 1, 0)

	recordStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1).
			Margin(0, 0, 1, 2)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)

	countStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("32"))

	noDataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true).
			Margin(1, 0)
)

var titleCaser = cases.Title(language.English)

// formatSearchHeader renders the "Found N results" line with the
// active filter badge.
func formatSearchHeader(query string, total, activeFilters int) string {
	header := fmt.Sprintf("Found %d results", total)
	if query != "" {
		header += fmt.Sprintf(" for %q", query)
	}
	if activeFilters > 0 {
		header += fmt.Sprintf(" (%d active filters)", activeFilters)
	}
	return countStyle.Render(header)
}

// formatRecord renders one record for the search output.
func formatRecord(r *records.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s %s\n", r.PrescriptionNumber, r.Date, r.Time)
	fmt.Fprintf(&b, "Patient: %s\n", r.Patient.Name)
	fmt.Fprintf(&b, "Doctor:  %s, %s\n", r.Doctor.Name, r.Doctor.Department)
	if r.Diagnosis != "" {
		fmt.Fprintf(&b, "Diagnosis: %s\n", r.Diagnosis)
	}

	for i := range r.Medications {
		med := &r.Medications[i]
		fmt.Fprintf(&b, "  %s %s, %s\n", med.Name, med.Dosage, med.Frequency)
	}

	status := titleCaser.String(r.Billing.PaymentStatus)
	fmt.Fprintf(&b, "%s", metaStyle.Render(
		fmt.Sprintf("Bill %s: %.2f (%s)", r.Billing.BillID, r.Billing.FinalAmount, status)))

	return recordStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// formatNoResults renders the empty-result placeholder.
func formatNoResults() string {
	return noDataStyle.Render("No matching records")
}
