package interpreter

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/srinipusuluri/sfdc-adminX/internal/types/domain"
)

var (
	createPattern     = regexp.MustCompile(`(?i)(?:create|new)\s+(?:user\s+)?([A-Za-z\s]+?)\s+([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`)
	updatePattern     = regexp.MustCompile(`(?i)update\s+(?:user\s+)?(\S+)\s+to\s+have\s+(\S+)\s+(.+)`)
	deactivatePattern = regexp.MustCompile(`(?i)(?:deactivate|disable)\s+(?:user\s+)?(\S+)`)
)

// ParseFallback pattern-matches raw text into a structured command when the
// model-backed parser produced nothing. It is a pure function: no I/O, same
// inputs always yield the same command. Any text that does not match the
// intent's pattern yields the empty command; fields are never partially
// populated.
func ParseFallback(text string, intent domain.Intent) domain.Command {
	switch intent {
	case domain.IntentCreateUser:
		return parseCreate(text)
	case domain.IntentUpdateUser:
		return parseUpdate(text)
	case domain.IntentDeactivateUser:
		return parseDeactivate(text)
	default:
		return domain.Command{}
	}
}

func parseCreate(text string) domain.Command {
	m := createPattern.FindStringSubmatch(text)
	if m == nil {
		return domain.Command{}
	}

	email := strings.TrimSpace(m[2])
	nameParts := strings.Fields(strings.TrimSpace(m[1]))

	var firstName, lastName string
	if len(nameParts) > 0 {
		firstName = nameParts[0]
	}
	if len(nameParts) > 1 {
		lastName = strings.Join(nameParts[1:], " ")
	}

	return domain.Command{
		Operation: domain.OperationCreateUser,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		// Username defaults to the email address.
		Username: email,
	}
}

// parseUpdate extracts a single field/value pair of the shape
// "update [user] <id> to have <field> <value>". Multi-field updates are
// only reachable through the model-backed parser.
func parseUpdate(text string) domain.Command {
	m := updatePattern.FindStringSubmatch(text)
	if m == nil {
		return domain.Command{}
	}

	field := titleCase(strings.TrimSpace(m[2]))
	value := strings.TrimSpace(m[3])

	return domain.Command{
		Operation: domain.OperationUpdateUser,
		UserID:    strings.TrimSpace(m[1]),
		Updates:   map[string]string{field: value},
	}
}

func parseDeactivate(text string) domain.Command {
	m := deactivatePattern.FindStringSubmatch(text)
	if m == nil {
		return domain.Command{}
	}

	return domain.Command{
		Operation: domain.OperationDeactivateUser,
		UserID:    strings.TrimSpace(m[1]),
	}
}

// titleCase capitalizes the first letter of each word and lowercases the
// rest, turning a captured field token like "phone" into the administrative
// field name "Phone".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		isLetter := unicode.IsLetter(r)
		switch {
		case isLetter && !prevLetter:
			b.WriteRune(unicode.ToUpper(r))
		case isLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
		prevLetter = isLetter
	}

	return b.String()
}
