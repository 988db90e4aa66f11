package ports

import (
	"context"
)

// NotificationSender delivers transactional emails to customers and
// drivers. Implementations must not be invoked inside a database
// transaction; callers send after commit and treat failures as
// non-fatal.
type NotificationSender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// OTPGenerator produces delivery OTPs for order handoff.
type OTPGenerator interface {
	// Generate returns a new six digit OTP.
	Generate() (string, error)
}
