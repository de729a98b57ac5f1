package models

// Session is the authenticated caller identity extracted from the bearer
// token. Token issuance belongs to the external credential service.
type Session struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

func (s *Session) IsPatient() bool {
	return s.Role == "patient"
}

func (s *Session) IsDoctor() bool {
	return s.Role == "doctor"
}
