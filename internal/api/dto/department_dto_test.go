package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/department-dto/internal/domain"
	apperrors "github.com/spec-kit/department-dto/pkg/util/errorutil"
)

func department(t *testing.T, name string, head ...string) domain.Department {
	t.Helper()
	b := domain.NewDepartmentBuilder().Name(name)
	if len(head) > 0 {
		emp, err := domain.NewEmployee(head[0])
		require.NoError(t, err)
		b = b.Head(emp)
	}
	dept, err := b.Build()
	require.NoError(t, err)
	return dept
}

func TestEncodeDepartment(t *testing.T) {
	tests := []struct {
		name string
		dept domain.Department
		want string
	}{
		{"with head", department(t, "IT", "Miller"), `{"name":"IT","head":{"name":"Miller"}}`},
		{"without head", department(t, "IT"), `{"name":"IT","head":null}`},
		{"html is not escaped", department(t, "R&D", "<Miller>"), `{"name":"R&D","head":{"name":"<Miller>"}}`},
		{"quotes are escaped", department(t, `"IT"`), `{"name":"\"IT\"","head":null}`},
		{"line separators are escaped", department(t, "IT\u2028", "Mil\u2029ler"), `{"name":"IT\u2028","head":{"name":"Mil\u2029ler"}}`},
		{"non-ascii is written raw", department(t, "Forschung", "Müller"), `{"name":"Forschung","head":{"name":"Müller"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeDepartment(tt.dept)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeDepartment(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  domain.Department
	}{
		{"canonical", `{"name":"IT","head":{"name":"Miller"}}`, department(t, "IT", "Miller")},
		{"null head", `{"name":"IT","head":null}`, department(t, "IT")},
		{"missing head", `{"name":"IT"}`, department(t, "IT")},
		{"reordered keys", `{"head":{"name":"Miller"},"name":"IT"}`, department(t, "IT", "Miller")},
		{"surrounding whitespace", " \n\t{ \"name\" : \"IT\" , \"head\" : null }\n ", department(t, "IT")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDepartment(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "decoded %+v", got.Key())
		})
	}
}

func TestDecodeDepartmentRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `invalidJson`},
		{"empty", ``},
		{"array", `[]`},
		{"top level null", `null`},
		{"missing name", `{"head":{"name":"Miller"}}`},
		{"null name", `{"name":null,"head":null}`},
		{"empty name", `{"name":"","head":null}`},
		{"numeric name", `{"name":42,"head":null}`},
		{"head is string", `{"name":"IT","head":"Miller"}`},
		{"head without name", `{"name":"IT","head":{}}`},
		{"head with empty name", `{"name":"IT","head":{"name":""}}`},
		{"unknown field", `{"name":"IT","head":null,"budget":1}`},
		{"differently cased key", `{"NAME":"IT","head":null}`},
		{"trailing data", `{"name":"IT","head":null} {}`},
		{"invalid utf-8 name", "{\"name\":\"IT\xff\",\"head\":null}"},
		{"invalid utf-8 head", "{\"name\":\"IT\",\"head\":{\"name\":\"\xfeMiller\"}}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDepartment(tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.IsParse(err), "got %v", err)
		})
	}
}

func TestEncodeDecodeIsStable(t *testing.T) {
	tests := []struct {
		name string
		dept domain.Department
	}{
		{"plain", department(t, "IT", "Miller")},
		{"no head", department(t, "HR")},
		{"quotes and backslashes", department(t, `R"&"D\`, `O"Brien`)},
		{"html characters", department(t, "<IT>", "A & B")},
		{"line separators", department(t, "IT\u2028", "Mil\u2029ler")},
		{"non-ascii", department(t, "Entwicklung ü", "李雷 🚀")},
		{"control characters", department(t, "IT\n\t\x01", "Mi\x1fller\r")},
		{"replacement character", department(t, "IT\ufffd")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := EncodeDepartment(tt.dept)
			require.NoError(t, err)

			decoded, err := DecodeDepartment(encoded)
			require.NoError(t, err)
			assert.True(t, tt.dept.Equal(decoded))

			again, err := EncodeDepartment(decoded)
			require.NoError(t, err)
			assert.Equal(t, encoded, again)
		})
	}
}
