package model

// Employee is a person tracked by the system. The id is assigned
// externally (e.g. "EMP001") and immutable, as is the email.
type Employee struct {
	EmployeeID string
	FullName   string
	Email      string
	Department string
}

// ListEmployeeFilter narrows the employee listing. Department is an
// exact match, Search a case-insensitive substring match against full
// name or email. Both compose with AND.
type ListEmployeeFilter struct {
	Department string
	Search     string
}
