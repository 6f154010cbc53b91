package contact

// ShareContactRequest is the JSON body of POST /api/contact. A single
// email field; validation is the permissive syntax check.
type ShareContactRequest struct {
	Email string `json:"email"`
}
