package constants

import "time"

// RFC 3339 date-time format string.
// Use this format for all timestamps written to the store, the mirror, and
// API responses.
const RFC3339DateTimeFormat = "2006-01-02T15:04:05Z07:00"

// Submission rate limiting. Both forms share one 15-minute window per
// client IP; the waitlist form is more permissive than the contact form.
const (
	WaitlistSubmissionsPerWindow = 20
	ContactRequestsPerWindow     = 10
	SubmissionWindowMinutes      = 15
)

// SubmissionWindow returns the rate-limit window shared by both forms.
func SubmissionWindow() time.Duration {
	return time.Duration(SubmissionWindowMinutes) * time.Minute
}

// Default rate limiting for everything that is not a form submission
// (pages, QR codes, health).
const (
	DefaultRateLimitRequests      = 100
	DefaultRateLimitWindowMinutes = 1
)

func DefaultRateLimitWindow() time.Duration {
	return time.Duration(DefaultRateLimitWindowMinutes) * time.Minute
}

// Fixed rejection messages returned with a 429 on the form endpoints.
const (
	WaitlistRateLimitMessage = "Too many submissions. Please try again later."
	ContactRateLimitMessage  = "Too many requests. Please try again later."
)
