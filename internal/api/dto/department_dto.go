package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/spec-kit/department-dto/internal/domain"
	apperrors "github.com/spec-kit/department-dto/pkg/util/errorutil"
)

// DepartmentPayload is the JSON representation of a department. Field order
// fixes the key order on output; head is written as null when absent.
type DepartmentPayload struct {
	Name string           `json:"name"`
	Head *EmployeePayload `json:"head"`
}

// EmployeePayload is the JSON representation of an employee.
type EmployeePayload struct {
	Name string `json:"name"`
}

// NewDepartmentPayload maps a domain department to its wire form.
func NewDepartmentPayload(dept domain.Department) DepartmentPayload {
	payload := DepartmentPayload{Name: dept.Name()}
	if head, ok := dept.Head(); ok {
		payload.Head = &EmployeePayload{Name: head.Name()}
	}
	return payload
}

// EncodeDepartment serializes a department to its canonical JSON string.
func EncodeDepartment(dept domain.Department) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// U+2028 and U+2029 are still written as \u2028 and \u2029.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(NewDepartmentPayload(dept)); err != nil {
		return "", apperrors.NewInternalError(err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// DecodeDepartment parses a JSON document into a department. Surrounding
// whitespace and input key order are irrelevant; unknown keys, wrong types,
// trailing data, invalid UTF-8 and a missing name all fail with a parse error.
func DecodeDepartment(raw string) (domain.Department, error) {
	if !utf8.ValidString(raw) {
		return domain.Department{}, apperrors.NewParseError("department json is not valid UTF-8", nil)
	}
	fields, err := decodeObject([]byte(raw), "department", "name", "head")
	if err != nil {
		return domain.Department{}, err
	}
	name, err := requiredString(fields, "department", "name")
	if err != nil {
		return domain.Department{}, err
	}

	var head *domain.Employee
	if rawHead, ok := fields["head"]; ok && !isNull(rawHead) {
		emp, err := decodeEmployee(rawHead)
		if err != nil {
			return domain.Department{}, err
		}
		head = &emp
	}

	dept, err := domain.NewDepartment(name, head)
	if err != nil {
		return domain.Department{}, apperrors.NewParseError("department json does not describe a valid department", err)
	}
	return dept, nil
}

func decodeEmployee(raw json.RawMessage) (domain.Employee, error) {
	fields, err := decodeObject(raw, "head", "name")
	if err != nil {
		return domain.Employee{}, err
	}
	name, err := requiredString(fields, "head", "name")
	if err != nil {
		return domain.Employee{}, err
	}
	emp, err := domain.NewEmployee(name)
	if err != nil {
		return domain.Employee{}, apperrors.NewParseError("head does not describe a valid employee", err)
	}
	return emp, nil
}

func decodeObject(raw []byte, what string, allowed ...string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, apperrors.NewParseError(fmt.Sprintf("%s json is malformed", what), err)
	}
	if fields == nil {
		return nil, apperrors.NewParseError(fmt.Sprintf("%s json must be an object", what), nil)
	}
	for key := range fields {
		if !contains(allowed, key) {
			return nil, apperrors.NewParseError(fmt.Sprintf("%s json has unknown field %q", what, key), nil)
		}
	}
	return fields, nil
}

func requiredString(fields map[string]json.RawMessage, what, key string) (string, error) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return "", apperrors.NewParseError(fmt.Sprintf("%s json is missing %q", what, key), nil)
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", apperrors.NewParseError(fmt.Sprintf("%s field %q must be a string", what, key), err)
	}
	return value, nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
