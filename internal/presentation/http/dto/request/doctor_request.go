package request

// AddDoctorRequest represents a new directory doctor
type AddDoctorRequest struct {
	Name     string `json:"name"`
	Degree   string `json:"degree"`
	Location string `json:"location"`
}

// UpdateDoctorRequest renames the doctor currently called OldName
type UpdateDoctorRequest struct {
	OldName  string `json:"oldName"`
	NewName  string `json:"newName"`
	Degree   string `json:"degree"`
	Location string `json:"location"`
}
