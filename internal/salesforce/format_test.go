package salesforce

import (
	"testing"

	"github.com/srinipusuluri/sfdc-adminX/internal/types/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatUserDisplay(t *testing.T) {
	out := FormatUserDisplay(domain.SalesforceUser{
		FirstName:  "John",
		LastName:   "Doe",
		Email:      "john@example.com",
		Username:   "john@example.com",
		IsActive:   true,
		Title:      "Engineer",
		Phone:      "555-1234",
		Department: "R&D",
	})

	assert.Equal(t,
		"John Doe\n"+
			"Email: john@example.com\n"+
			"Username: john@example.com\n"+
			"Status: Active\n"+
			"Title: Engineer\n"+
			"Phone: 555-1234\n"+
			"Department: R&D",
		out,
	)
}

func TestFormatUserDisplaySkipsEmptyOptionalFields(t *testing.T) {
	out := FormatUserDisplay(domain.SalesforceUser{
		FirstName: "Jane",
		LastName:  "Roe",
		Email:     "jane@co.com",
		Username:  "jane@co.com",
	})

	assert.NotContains(t, out, "Title:")
	assert.NotContains(t, out, "Phone:")
	assert.NotContains(t, out, "Department:")
	assert.Contains(t, out, "Status: Inactive")
}
