package domain

import "time"

// State represents a node of the intake conversation
type State string

const (
	StateChoosing        State = "choosing"
	StateVerifyName      State = "verify_name"
	StateVerifyPassport  State = "verify_passport"
	StateAppointmentName State = "appointment_name"
	StateAppointmentDate State = "appointment_date"
	StateTerminal        State = "terminal"
)

// Session field keys
const (
	FieldName            = "name"
	FieldPassportNumber  = "passport_number"
	FieldAppointmentDate = "appointment_date"
)

// Session holds user's conversation state and collected answers
type Session struct {
	UserID    int64
	State     State
	Fields    map[string]string
	StartedAt time.Time
}

// NewSession creates a session waiting for a service choice
func NewSession(userID int64) *Session {
	return &Session{
		UserID:    userID,
		State:     StateChoosing,
		Fields:    make(map[string]string),
		StartedAt: time.Now(),
	}
}

// Field returns a collected value, or empty string if it was never set
func (s *Session) Field(key string) string {
	if s.Fields == nil {
		return ""
	}
	return s.Fields[key]
}

// SetField stores a collected value
func (s *Session) SetField(key, value string) {
	if s.Fields == nil {
		s.Fields = make(map[string]string)
	}
	s.Fields[key] = value
}

// Active reports whether the session is still collecting answers
func (s *Session) Active() bool {
	return s.State != "" && s.State != StateTerminal
}
