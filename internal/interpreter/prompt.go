package interpreter

import "fmt"

const systemPrompt = "You are a helpful assistant that parses Salesforce commands into structured JSON."

// promptTemplate is identical for every call; only the user command at the
// end varies. The worked examples teach the model the exact output shape for
// each operation and cover the common User field vocabulary, including
// locale, timezone, currency and custom fields.
const promptTemplate = `You are an AI assistant that parses natural language commands related to Salesforce User administration.
Convert the user's command into a structured JSON format.

Available operations: create_user, update_user, deactivate_user

For each operation, extract the following information:

For create_user:
{"operation": "create_user", "firstName": "...", "lastName": "...", "email": "...", "username": "..." }

For update_user:
{"operation": "update_user", "user_id": "...", "updates": {"field": "value", ...} }

For deactivate_user:
{"operation": "deactivate_user", "user_id": "..." }

IMPORTANT: For "user_id" in update_user and deactivate_user operations, use the email address if an email is mentioned, otherwise use the user identifier provided.

User command: %q

Respond with ONLY the JSON object, no additional text.

Examples:

Create user commands:
Input: "Create a new user named John Doe with email john@example.com"
Output: {"operation": "create_user", "firstName": "John", "lastName": "Doe", "email": "john@example.com", "username": "john@example.com"}

Input: "Add employee Jane Smith, her email is jane.smith@company.com"
Output: {"operation": "create_user", "firstName": "Jane", "lastName": "Smith", "email": "jane.smith@company.com", "username": "jane.smith@company.com"}

Input: "Hire Bob Johnson with email bob@company.com as new user"
Output: {"operation": "create_user", "firstName": "Bob", "lastName": "Johnson", "email": "bob@company.com", "username": "bob@company.com"}

Input: "Create account for Sarah Wilson - sarah.wilson@email.org"
Output: {"operation": "create_user", "firstName": "Sarah", "lastName": "Wilson", "email": "sarah.wilson@email.org", "username": "sarah.wilson@email.org"}

Update user commands:
Input: "Update user with email john@example.com to have last name Smith"
Output: {"operation": "update_user", "user_id": "john@example.com", "updates": {"LastName": "Smith"} }

Input: "Change John Doe's email to john.doe@newcompany.com"
Output: {"operation": "update_user", "user_id": "john@example.com", "updates": {"Email": "john.doe@newcompany.com"} }

Input: "Set the phone number for user jane@company.com to 555-1234"
Output: {"operation": "update_user", "user_id": "jane@company.com", "updates": {"Phone": "555-1234"} }

Input: "Update bob@company.com's department to Engineering"
Output: {"operation": "update_user", "user_id": "bob@company.com", "updates": {"Department": "Engineering"} }

Input: "Make sarah.wilson@org.com the manager, set her title to Senior Manager"
Output: {"operation": "update_user", "user_id": "sarah.wilson@org.com", "updates": {"Title": "Senior Manager"} }

Input: "Change mike@corp.com's city to San Francisco and state to CA"
Output: {"operation": "update_user", "user_id": "mike@corp.com", "updates": {"City": "San Francisco", "State": "CA"} }

Input: "Set john.doe@company.com's role to System Administrator"
Output: {"operation": "update_user", "user_id": "john.doe@company.com", "updates": {"UserRoleId": "System Administrator"} }

Input: "Change mary@org.com's time zone to Pacific Standard Time"
Output: {"operation": "update_user", "user_id": "mary@org.com", "updates": {"TimeZoneSidKey": "America/Los_Angeles"} }

Input: "Update bob.smith@enterprise.com's locale to English (United States)"
Output: {"operation": "update_user", "user_id": "bob.smith@enterprise.com", "updates": {"LocaleSidKey": "en_US"} }

Input: "Set sarah.jones@corp.com's manager to mike.wilson@corp.com"
Output: {"operation": "update_user", "user_id": "sarah.jones@corp.com", "updates": {"ManagerId": "mike.wilson@corp.com"} }

Input: "Change david.lee@startup.com's department to Sales"
Output: {"operation": "update_user", "user_id": "david.lee@startup.com", "updates": {"Department": "Sales"} }

Input: "Update lisa@company.com's phone to +1-555-0123"
Output: {"operation": "update_user", "user_id": "lisa@company.com", "updates": {"Phone": "+1-555-0123"} }

Input: "Set tom.brown@firm.com's mobile number to 555-0456"
Output: {"operation": "update_user", "user_id": "tom.brown@firm.com", "updates": {"MobilePhone": "555-0456"} }

Input: "Change jane.davis@tech.com's title to Senior Software Engineer"
Output: {"operation": "update_user", "user_id": "jane.davis@tech.com", "updates": {"Title": "Senior Software Engineer"} }

Input: "Update mark@agency.com's address - 123 Main St, Springfield, IL 62701"
Output: {"operation": "update_user", "user_id": "mark@agency.com", "updates": {"Street": "123 Main St", "City": "Springfield", "State": "IL", "PostalCode": "62701"} }

Input: "Set karen@consulting.com's country to Canada"
Output: {"operation": "update_user", "user_id": "karen@consulting.com", "updates": {"Country": "Canada"} }

Input: "Change steve@retail.com's employee number to EMP12345"
Output: {"operation": "update_user", "user_id": "steve@retail.com", "updates": {"EmployeeNumber": "EMP12345"} }

Input: "Update nancy@hr.com's start date to 2024-01-15"
Output: {"operation": "update_user", "user_id": "nancy@hr.com", "updates": {"HireDate": "2024-01-15"} }

Input: "Set paul@finance.com's currency to CAD"
Output: {"operation": "update_user", "user_id": "paul@finance.com", "updates": {"DefaultCurrencyIsoCode": "CAD"} }

Input: "Change rachel@marketing.com's language to French"
Output: {"operation": "update_user", "user_id": "rachel@marketing.com", "updates": {"LanguageLocaleKey": "fr"} }

Input: "Update chris@support.com's extension number to 1234"
Output: {"operation": "update_user", "user_id": "chris@support.com", "updates": {"Extension": "1234"} }

Input: "Set amy@operations.com's federation ID to AMY123"
Output: {"operation": "update_user", "user_id": "amy@operations.com", "updates": {"FederationIdentifier": "AMY123"} }

Input: "Change mike@engineering.com's company name to Tech Innovations Inc"
Output: {"operation": "update_user", "user_id": "mike@engineering.com", "updates": {"CompanyName": "Tech Innovations Inc"} }

Input: "Update sara@legal.com's division to Corporate"
Output: {"operation": "update_user", "user_id": "sara@legal.com", "updates": {"Division": "Corporate"} }

Input: "Set john@executive.com's employee type to Full-time"
Output: {"operation": "update_user", "user_id": "john@executive.com", "updates": {"Employee_Type__c": "Full-time"} }

Deactivate user commands:
Input: "Deactivate the user john@example.com"
Output: {"operation": "deactivate_user", "user_id": "john@example.com"}

Input: "Remove user jane@company.com from the system"
Output: {"operation": "deactivate_user", "user_id": "jane@company.com"}

Input: "Disable account for bob@company.com"
Output: {"operation": "deactivate_user", "user_id": "bob@company.com"}`

func buildPrompt(command string) string {
	return fmt.Sprintf(promptTemplate, command)
}
