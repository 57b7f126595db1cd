package auth

import "github.com/radityaputra/intranet-portal/internal"

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterDTO carries the fields required to create an account.
type RegisterDTO struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
}

// Validate checks required fields and returns a MissingFields error listing
// every absent field.
func (d LoginDTO) Validate() error {
	var missing []string
	if d.Email == "" {
		missing = append(missing, "email")
	}
	if d.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return internal.NewMissingFieldsError(missing...)
	}
	return nil
}

func (d RegisterDTO) Validate() error {
	var missing []string
	if d.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if d.LastName == "" {
		missing = append(missing, "last_name")
	}
	if d.Email == "" {
		missing = append(missing, "email")
	}
	if d.Password == "" {
		missing = append(missing, "password")
	}
	if d.Department == "" {
		missing = append(missing, "department")
	}
	if len(missing) > 0 {
		return internal.NewMissingFieldsError(missing...)
	}
	return nil
}

// AuthResponse is the shape returned by login and register: the session
// projection plus the account status, matching what the dashboard expects.
type AuthResponse struct {
	ID         int64   `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	UserLevel  Level   `json:"userLevel"`
	Status     *string `json:"status"`
}

func NewAuthResponse(account *Account) AuthResponse {
	resp := AuthResponse{
		ID:         account.ID,
		FirstName:  account.FirstName,
		LastName:   account.LastName,
		Email:      account.Email,
		Department: account.Department,
		UserLevel:  account.UserLevel,
	}
	if account.Status != "" {
		resp.Status = &account.Status
	}
	return resp
}
