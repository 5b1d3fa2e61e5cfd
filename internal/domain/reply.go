package domain

// Service menu labels
const (
	OptionVerifyDocuments = "Verify Documents"
	OptionBookAppointment = "Book Appointment"
)

// MenuOptions returns the service menu in display order
func MenuOptions() []string {
	return []string{OptionVerifyDocuments, OptionBookAppointment}
}

// Reply is a single bot answer to an inbound message
type Reply struct {
	Text string
	// Options are shown as a one-time reply keyboard
	Options []string
	// Completed is set on the acknowledgement that finishes a workflow
	Completed bool
}

// HasKeyboard reports whether the reply carries keyboard options
func (r Reply) HasKeyboard() bool {
	return len(r.Options) > 0
}
