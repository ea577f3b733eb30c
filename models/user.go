package models

// AddUserRequest describes a new user of an enrolled company.
type AddUserRequest struct {
	CompanyID string `json:"company_id"`
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role,omitempty"`
}

// UpdateUserRequest carries the mutable attributes of an existing user.
// Empty fields are left unchanged by the backend.
type UpdateUserRequest struct {
	CompanyID string `json:"company_id"`
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Status    string `json:"status,omitempty"`
}

// UserSummary is a single user record returned by a search.
type UserSummary struct {
	CompanyID string `json:"company_id"`
	UserID    string `json:"user_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

// SearchUserResponse is the backend answer to a user search.
type SearchUserResponse struct {
	Users []UserSummary `json:"users"`
}

// DeleteUserResponse is the backend answer to a user deletion.
type DeleteUserResponse struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	Deleted   bool   `json:"deleted"`
	Message   string `json:"message,omitempty"`
}
