package domain

// DepartmentBuilder assembles a Department from named field assignments. Each
// setter returns a new builder, so a partially configured builder can be
// reused safely.
type DepartmentBuilder struct {
	name string
	head *Employee
}

// NewDepartmentBuilder returns an empty builder.
func NewDepartmentBuilder() DepartmentBuilder {
	return DepartmentBuilder{}
}

// Name sets the department name.
func (b DepartmentBuilder) Name(name string) DepartmentBuilder {
	b.name = name
	return b
}

// Head sets the department head.
func (b DepartmentBuilder) Head(head Employee) DepartmentBuilder {
	b.head = &head
	return b
}

// WithoutHead clears the department head.
func (b DepartmentBuilder) WithoutHead() DepartmentBuilder {
	b.head = nil
	return b
}

// Build validates the collected fields and returns the Department.
func (b DepartmentBuilder) Build() (Department, error) {
	return NewDepartment(b.name, b.head)
}
