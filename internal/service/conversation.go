package service

import (
	"fmt"
	"strings"

	"migrationbot/internal/domain"
	"migrationbot/internal/repository"

	"go.uber.org/zap"
)

// Reply texts
const (
	welcomeText = "👋 Welcome to *International Migration Service!* 🇨🇦🇦🇺\n\n" +
		"Please choose a service below:"
	invalidOptionText        = "Please select a valid option."
	verifyNamePrompt         = "Please enter your full name:"
	passportPrompt           = "Now please enter your travel document number:"
	appointmentNamePrompt    = "Please enter your full name for the appointment:"
	appointmentDatePrompt    = "Please enter your preferred appointment date (e.g., 2025-10-20):"
	canceledText             = "Operation canceled. Type /start to begin again."
	verificationReceivedText = "✅ Thank you, %s!\nYour verification request has been received.\n" +
		"We will review your documents and contact you shortly."
	appointmentSubmittedText = "📅 Thank you, %s!\nYour appointment request for %s has been submitted.\n" +
		"We’ll contact you soon with confirmation."
)

// ConversationService drives the intake conversation of every user
type ConversationService struct {
	sessions repository.SessionRepository
	logger   *zap.Logger
}

// NewConversationService creates a new conversation service
func NewConversationService(sessions repository.SessionRepository, logger *zap.Logger) *ConversationService {
	return &ConversationService{
		sessions: sessions,
		logger:   logger,
	}
}

// Start begins a new conversation, discarding anything collected before
func (s *ConversationService) Start(userID int64) domain.Reply {
	s.sessions.Save(domain.NewSession(userID))
	return menuReply(welcomeText)
}

// Cancel drops the user's conversation whatever state it is in
func (s *ConversationService) Cancel(userID int64) domain.Reply {
	s.sessions.Delete(userID)
	return domain.Reply{Text: canceledText}
}

// State returns user's current conversation state
func (s *ConversationService) State(userID int64) domain.State {
	session, found := s.sessions.Get(userID)
	if !found || !session.Active() {
		return domain.StateTerminal
	}
	return session.State
}

// Handle feeds a text message into the user's conversation.
// It returns false when there is no conversation to answer in.
func (s *ConversationService) Handle(userID int64, text string) (domain.Reply, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Reply{}, false
	}

	session, found := s.sessions.Get(userID)
	if !found || !session.Active() {
		return domain.Reply{}, false
	}

	from := session.State
	reply := transition(session, text)

	if session.State == domain.StateTerminal {
		s.sessions.Delete(userID)
	} else {
		s.sessions.Save(session)
	}

	s.logger.Debug("Conversation advanced",
		zap.Int64("user_id", userID),
		zap.String("from", string(from)),
		zap.String("to", string(session.State)),
	)

	if reply.Completed {
		s.logger.Info("Intake request received",
			zap.Int64("user_id", userID),
			zap.String("flow", flowName(from)),
		)
	}

	return reply, true
}

// transition applies one input to the session and returns the answer.
// The session's state and fields are updated in place.
func transition(session *domain.Session, text string) domain.Reply {
	switch session.State {
	case domain.StateChoosing:
		switch text {
		case domain.OptionVerifyDocuments:
			session.State = domain.StateVerifyName
			return domain.Reply{Text: verifyNamePrompt}
		case domain.OptionBookAppointment:
			session.State = domain.StateAppointmentName
			return domain.Reply{Text: appointmentNamePrompt}
		default:
			return menuReply(invalidOptionText)
		}

	case domain.StateVerifyName:
		session.SetField(domain.FieldName, text)
		session.State = domain.StateVerifyPassport
		return domain.Reply{Text: passportPrompt}

	case domain.StateVerifyPassport:
		session.SetField(domain.FieldPassportNumber, text)
		session.State = domain.StateTerminal
		return domain.Reply{
			Text:      fmt.Sprintf(verificationReceivedText, session.Field(domain.FieldName)),
			Completed: true,
		}

	case domain.StateAppointmentName:
		session.SetField(domain.FieldName, text)
		session.State = domain.StateAppointmentDate
		return domain.Reply{Text: appointmentDatePrompt}

	case domain.StateAppointmentDate:
		session.SetField(domain.FieldAppointmentDate, text)
		session.State = domain.StateTerminal
		return domain.Reply{
			Text: fmt.Sprintf(appointmentSubmittedText,
				session.Field(domain.FieldName),
				session.Field(domain.FieldAppointmentDate),
			),
			Completed: true,
		}
	}

	// Unknown state: close the conversation like /cancel does
	session.State = domain.StateTerminal
	return domain.Reply{Text: canceledText}
}

func flowName(state domain.State) string {
	switch state {
	case domain.StateVerifyName, domain.StateVerifyPassport:
		return "verification"
	case domain.StateAppointmentName, domain.StateAppointmentDate:
		return "appointment"
	}
	return "none"
}

func menuReply(text string) domain.Reply {
	return domain.Reply{Text: text, Options: domain.MenuOptions()}
}
