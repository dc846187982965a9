package salesforce

import (
	"fmt"
	"strings"

	"github.com/srinipusuluri/sfdc-adminX/internal/types/domain"
)

// FormatUserDisplay renders a user record as the multi-line block shown in
// chat replies. Optional fields appear only when set.
func FormatUserDisplay(u domain.SalesforceUser) string {
	status := "Inactive"
	if u.IsActive {
		status = "Active"
	}

	lines := []string{
		fmt.Sprintf("%s %s", u.FirstName, u.LastName),
		fmt.Sprintf("Email: %s", orNA(u.Email)),
		fmt.Sprintf("Username: %s", orNA(u.Username)),
		fmt.Sprintf("Status: %s", status),
	}

	if u.Title != "" {
		lines = append(lines, fmt.Sprintf("Title: %s", u.Title))
	}
	if u.Phone != "" {
		lines = append(lines, fmt.Sprintf("Phone: %s", u.Phone))
	}
	if u.Department != "" {
		lines = append(lines, fmt.Sprintf("Department: %s", u.Department))
	}

	return strings.Join(lines, "\n")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
