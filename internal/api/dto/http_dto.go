package dto

// DepartmentJSONRequest asks for the canonical JSON of a department. A missing
// head_name means the department has no head.
type DepartmentJSONRequest struct {
	Name     string  `json:"name"`
	HeadName *string `json:"head_name"`
}

// DepartmentJSONResponse carries the canonical department JSON.
type DepartmentJSONResponse struct {
	JSON string `json:"json"`
}

// DepartmentMatchRequest carries two department documents to compare.
type DepartmentMatchRequest struct {
	JSON      string `json:"json"`
	OtherJSON string `json:"other_json"`
}

// DepartmentMatchResponse reports whether both documents describe the same department.
type DepartmentMatchResponse struct {
	Matches bool `json:"matches"`
}

// DepartmentDescriptionResponse carries the human readable department summary.
type DepartmentDescriptionResponse struct {
	Description string `json:"description"`
}
