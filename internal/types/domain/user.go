package domain

// SalesforceUser mirrors the User sObject fields the service reads back
// after a mutation. JSON tags match the Salesforce REST field names.
type SalesforceUser struct {
	ID          string `json:"Id"`
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	Email       string `json:"Email"`
	Username    string `json:"Username"`
	IsActive    bool   `json:"IsActive"`
	Title       string `json:"Title"`
	Phone       string `json:"Phone"`
	MobilePhone string `json:"MobilePhone"`
	Department  string `json:"Department"`
}

// UpdatableUserFields lists the User fields an administrator can change
// through an update command. Username changes may be restricted by the org.
var UpdatableUserFields = []string{
	"FirstName", "LastName", "Title", "Email", "Phone", "MobilePhone",
	"Department", "City", "Street", "PostalCode", "Country", "State",
	"ManagerId",
}
