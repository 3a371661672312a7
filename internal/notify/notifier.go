package notify

import "time"

// Notifier delivers best-effort messages. Callers treat every method as
// fire-and-forget: a delivery failure is logged, never propagated into
// the operation that triggered it.
type Notifier interface {
	OTPIssued(email, code string) error
	PollCreated(recipients []string, subject string, start, end time.Time) error
}

type noop struct{}

// NewNoop returns a notifier that silently drops everything. Used when
// no delivery channel is configured.
func NewNoop() Notifier {
	return noop{}
}

func (noop) OTPIssued(string, string) error { return nil }

func (noop) PollCreated([]string, string, time.Time, time.Time) error { return nil }

type multi struct {
	notifiers []Notifier
}

// NewMulti fans every notification out to all given notifiers and
// returns the first error, after trying each one.
func NewMulti(notifiers ...Notifier) Notifier {
	return &multi{notifiers: notifiers}
}

func (m *multi) OTPIssued(email, code string) error {
	var firstErr error
	for _, n := range m.notifiers {
		if err := n.OTPIssued(email, code); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multi) PollCreated(recipients []string, subject string, start, end time.Time) error {
	var firstErr error
	for _, n := range m.notifiers {
		if err := n.PollCreated(recipients, subject, start, end); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
