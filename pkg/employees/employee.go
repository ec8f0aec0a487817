// Package employees keeps an observable in-memory employee directory and
// decodes submitted employee forms into records.
package employees

// Employee is a stored employee record. Tags match the control names of the
// employee form so submissions decode directly.
type Employee struct {
	ID             int     `json:"id" mapstructure:"id"`
	FirstName      string  `json:"first_name" mapstructure:"first_name"`
	LastName       string  `json:"last_name" mapstructure:"last_name"`
	Email          string  `json:"email" mapstructure:"email"`
	PhoneNumber    string  `json:"phone_number,omitempty" mapstructure:"phone_number"`
	DepartmentID   int     `json:"department_id" mapstructure:"department_id"`
	JobTitle       string  `json:"job_title" mapstructure:"job_title"`
	EmploymentType string  `json:"employment_type" mapstructure:"employment_type"`
	JoiningDate    string  `json:"joining_date" mapstructure:"joining_date"`
	Salary         float64 `json:"salary" mapstructure:"salary"`
	RoleID         int     `json:"role_id" mapstructure:"role_id"`
	IsActive       bool    `json:"is_active" mapstructure:"is_active"`
}

// FullName joins first and last name.
func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	default:
		return e.FirstName + " " + e.LastName
	}
}

// Seed returns the sample employees a fresh store starts with.
func Seed() []Employee {
	return []Employee{
		{
			ID:             1,
			FirstName:      "John",
			LastName:       "Doe",
			Email:          "john.doe@company.com",
			PhoneNumber:    "+1234567890",
			DepartmentID:   1,
			JobTitle:       "Software Engineer",
			EmploymentType: "Full-time",
			JoiningDate:    "2023-01-15",
			Salary:         75000,
			RoleID:         3,
			IsActive:       true,
		},
		{
			ID:             2,
			FirstName:      "Jane",
			LastName:       "Smith",
			Email:          "jane.smith@company.com",
			PhoneNumber:    "+1234567891",
			DepartmentID:   2,
			JobTitle:       "HR Manager",
			EmploymentType: "Full-time",
			JoiningDate:    "2022-03-10",
			Salary:         85000,
			RoleID:         2,
			IsActive:       true,
		},
	}
}
