package dto

// AllocateIdentifierRequest asks for a preview of the next identifier of a scope.
type AllocateIdentifierRequest struct {
	EnrollmentYear int    `json:"enrollment_year" binding:"required"`
	Program        string `json:"program" binding:"required"`
}

// IdentifierResponse is a validated and parsed student identifier.
type IdentifierResponse struct {
	ID          string `json:"id"`
	Valid       bool   `json:"valid"`
	Year        int    `json:"year,omitempty"`
	ProgramCode string `json:"program_code,omitempty"`
	Sequence    int    `json:"sequence,omitempty"`
}

// ProgramResponse is one entry of the program catalog.
type ProgramResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
