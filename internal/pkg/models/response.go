package models

// APIResponse is the generic acknowledgement returned by mutating endpoints
type APIResponse struct {
	Message string `json:"message"`
	Token   string `json:"token,omitempty"`
	Name    string `json:"name,omitempty"`
	Role    Role   `json:"role,omitempty"`
	ID      string `json:"_id,omitempty"`
}

// LoginResponse is returned by POST users/login: the session token plus the
// signed-in user's profile, sent as members of the same object
type LoginResponse struct {
	Token string
	User  UserProfile
}
