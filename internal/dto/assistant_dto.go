package dto

type CreateAssistantInput struct {
	NationalID string `json:"national_id" binding:"required,max=20"`
	Name       string `json:"name" binding:"required,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Level      string `json:"level" binding:"max=50"`
	Faculty    string `json:"faculty" binding:"max=100"`
	Career     string `json:"career" binding:"max=100"`
}

type UpdateAssistantInput struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Level   string `json:"level" binding:"max=50"`
	Faculty string `json:"faculty" binding:"max=100"`
	Career  string `json:"career" binding:"max=100"`
}

// CredentialResponse is returned exactly once, at creation time. The store
// never re-derives or rotates the credential afterwards.
type CredentialResponse struct {
	Status     string `json:"status"`
	NationalID string `json:"national_id"`
	Credential string `json:"credential"`
}

// SupervisedAssistant is the join projection of an assistant together with
// the position and type of their assistantship under a given supervisor.
type SupervisedAssistant struct {
	NationalID string `json:"national_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Level      string `json:"level"`
	Faculty    string `json:"faculty"`
	Career     string `json:"career"`
	Position   string `json:"position"`
	Type       string `json:"type"`
}
