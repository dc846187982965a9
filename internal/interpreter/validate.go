package interpreter

import (
	"fmt"
	"strings"

	"github.com/srinipusuluri/sfdc-adminX/internal/types/domain"
)

// Validate checks a structured command before execution is permitted. It is
// a total function: every command, including the empty one, maps to a
// definite (ok, reason) pair and the reason text is suitable for direct
// display to the user.
func Validate(cmd domain.Command) (bool, string) {
	if cmd.Operation == "" {
		return false, "No operation specified"
	}

	switch cmd.Operation {
	case domain.OperationCreateUser:
		required := []struct {
			name  string
			value string
		}{
			{"firstName", cmd.FirstName},
			{"lastName", cmd.LastName},
			{"email", cmd.Email},
			{"username", cmd.Username},
		}

		var missing []string
		for _, f := range required {
			if f.value == "" {
				missing = append(missing, f.name)
			}
		}
		if len(missing) > 0 {
			return false, fmt.Sprintf("Missing required fields for create_user: %s", strings.Join(missing, ", "))
		}

		// Checked only after all four fields are present.
		if !strings.Contains(cmd.Email, "@") {
			return false, "Invalid email format"
		}

	case domain.OperationUpdateUser:
		if cmd.UserID == "" {
			return false, "User ID is required for update"
		}
		if len(cmd.Updates) == 0 {
			return false, "Updates are required for update operation"
		}

	case domain.OperationDeactivateUser:
		if cmd.UserID == "" {
			return false, "User ID is required for deactivate"
		}

	default:
		return false, fmt.Sprintf("Unknown operation: %s", cmd.Operation)
	}

	return true, ""
}
