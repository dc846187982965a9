package domain

// Intent is the coarse command category assigned by keyword classification.
type Intent string

const (
	IntentCreateUser     Intent = "create_user"
	IntentUpdateUser     Intent = "update_user"
	IntentDeactivateUser Intent = "deactivate_user"
	IntentActivateUser   Intent = "activate_user"
	IntentUnknown        Intent = "unknown"
)

const (
	OperationCreateUser     = "create_user"
	OperationUpdateUser     = "update_user"
	OperationDeactivateUser = "deactivate_user"
)

// Command is the structured form every parser produces. Which fields are
// meaningful depends on Operation: create_user carries the four name/email
// fields, update_user carries UserID and Updates, deactivate_user carries
// UserID only. The zero value is the "parsing failed" sentinel.
type Command struct {
	Operation string            `json:"operation,omitempty"`
	FirstName string            `json:"firstName,omitempty"`
	LastName  string            `json:"lastName,omitempty"`
	Email     string            `json:"email,omitempty"`
	Username  string            `json:"username,omitempty"`
	UserID    string            `json:"user_id,omitempty"`
	Updates   map[string]string `json:"updates,omitempty"`
}

// IsEmpty reports whether no parser managed to extract anything. A command
// with any populated field is non-empty even when it would fail validation.
func (c Command) IsEmpty() bool {
	return c.Operation == "" &&
		c.FirstName == "" &&
		c.LastName == "" &&
		c.Email == "" &&
		c.Username == "" &&
		c.UserID == "" &&
		len(c.Updates) == 0
}
