package interpreter

import (
	"strings"

	"github.com/srinipusuluri/sfdc-adminX/internal/types/domain"
)

// Keyword sets are checked in a fixed priority order: create wins over
// update wins over deactivate wins over activate. A command containing
// keywords from several sets resolves to the earliest set. This tie-break
// is intentional policy; do not reorder without product confirmation.
var (
	createKeywords     = []string{"create", "new", "add", "hire"}
	updateKeywords     = []string{"update", "change", "modify", "edit"}
	deactivateKeywords = []string{"deactivate", "disable", "remove", "delete"}
	activateKeywords   = []string{"activate", "enable"}
)

// Classify assigns a coarse intent to a raw command by case-insensitive
// keyword membership. It never fails; unmatched input is IntentUnknown.
func Classify(text string) domain.Intent {
	lower := strings.ToLower(text)

	switch {
	case containsAny(lower, createKeywords):
		return domain.IntentCreateUser
	case containsAny(lower, updateKeywords):
		return domain.IntentUpdateUser
	case containsAny(lower, deactivateKeywords):
		return domain.IntentDeactivateUser
	case containsAny(lower, activateKeywords):
		return domain.IntentActivateUser
	default:
		return domain.IntentUnknown
	}
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
