package models

// WaitlistEntry is a single waitlist submission as persisted in the local
// JSON log and mirrored to the external document store. Entries are
// immutable once written; there is no assigned identity and duplicate
// emails are accepted.
type WaitlistEntry struct {
	Company   string `json:"company"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Notes     string `json:"notes"`
	Timestamp string `json:"timestamp"`
}

// ContactSubmission records that a contact-card email was requested. It is
// not an entity of record; it exists only as an audit document in the
// mirror store.
type ContactSubmission struct {
	Email       string `json:"email"`
	SubmittedAt string `json:"submitted_at"`
}
