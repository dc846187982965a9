package salesforce

import (
	"fmt"
	"regexp"
	"strings"
)

var soqlUnsafe = regexp.MustCompile(`['"\\;]`)

// Sanitize strips characters that would break out of a SOQL string literal.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	return strings.TrimSpace(soqlUnsafe.ReplaceAllString(input, ""))
}

const detailFields = "Id, FirstName, LastName, Email, Username, IsActive, Title, Phone, MobilePhone, Department"

// lookupSOQL builds the query that resolves an identifier to a record ID.
// Identifiers containing "@" are treated as email addresses, anything else
// as a Salesforce ID.
func lookupSOQL(identifier string) string {
	safe := Sanitize(identifier)
	if strings.Contains(safe, "@") {
		return fmt.Sprintf("SELECT Id, Email FROM User WHERE Email = '%s'", safe)
	}
	return fmt.Sprintf("SELECT Id, Email FROM User WHERE Id = '%s'", safe)
}

func detailSOQL(identifier string) string {
	safe := Sanitize(identifier)
	if strings.Contains(safe, "@") {
		return fmt.Sprintf("SELECT %s FROM User WHERE Email = '%s'", detailFields, safe)
	}
	return fmt.Sprintf("SELECT %s FROM User WHERE Id = '%s'", detailFields, safe)
}
