package domain

import (
	"github.com/spec-kit/department-dto/internal/validator"
	apperrors "github.com/spec-kit/department-dto/pkg/util/errorutil"
)

// Employee is a person who can head a department. The zero value is not valid;
// use NewEmployee.
type Employee struct {
	name string
}

// Department represents an organizational unit with an optional head.
type Department struct {
	name string
	head *Employee
}

type employeeFields struct {
	Name string `validate:"required,utf8"`
}

type departmentFields struct {
	Name string `validate:"required,utf8"`
}

// NewEmployee validates and builds an Employee.
func NewEmployee(name string) (Employee, error) {
	if err := validator.Validate(employeeFields{Name: name}); err != nil {
		return Employee{}, apperrors.NewValidationError("employee is invalid", validator.Details(err))
	}
	return Employee{name: name}, nil
}

// NewDepartment validates and builds a Department. A nil head means the
// department has no head.
func NewDepartment(name string, head *Employee) (Department, error) {
	if err := validator.Validate(departmentFields{Name: name}); err != nil {
		return Department{}, apperrors.NewValidationError("department is invalid", validator.Details(err))
	}
	if head != nil {
		h := *head
		head = &h
	}
	return Department{name: name, head: head}, nil
}

// Name returns the employee name.
func (e Employee) Name() string {
	return e.name
}

// Equal reports whether both employees carry the same name.
func (e Employee) Equal(other Employee) bool {
	return e.name == other.name
}

// Name returns the department name.
func (d Department) Name() string {
	return d.name
}

// Head returns a copy of the department head and whether one is set.
func (d Department) Head() (Employee, bool) {
	if d.head == nil {
		return Employee{}, false
	}
	return *d.head, true
}

// HasHead reports whether the department has a head.
func (d Department) HasHead() bool {
	return d.head != nil
}

// Equal reports structural equality. Two departments without a head are equal
// on that field.
func (d Department) Equal(other Department) bool {
	if d.name != other.name {
		return false
	}
	if d.head == nil || other.head == nil {
		return d.head == nil && other.head == nil
	}
	return d.head.Equal(*other.head)
}

// Key returns a stable identity derived from the field values, suitable as a
// map key. Equal departments have equal keys.
func (d Department) Key() DepartmentKey {
	key := DepartmentKey{Name: d.name}
	if d.head != nil {
		key.HeadName = d.head.name
		key.HasHead = true
	}
	return key
}

// DepartmentKey is the comparable identity of a Department.
type DepartmentKey struct {
	Name     string
	HeadName string
	HasHead  bool
}
