package domain

// Feedback carries a user's rating plus the profile fields copied onto the
// row at submission time.
type Feedback struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Rating   int    `json:"rating"`
}

// ContactQuery is a contact-us submission.
type ContactQuery struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Message  string `json:"message"`
}
