package models

import "time"

// User account types
const (
	UserTypeCustomer = "customer"
	UserTypeBusiness = "business"
)

// Profile represents a user account in the system
type Profile struct {
	ID        string    `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	FullName  string    `json:"fullName" db:"full_name"`
	Phone     string    `json:"phone" db:"phone"`
	Password  string    `json:"-" db:"password_hash"`    // Never expose in JSON
	UserType  string    `json:"userType" db:"user_type"` // 'customer' or 'business'
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// ProfileResponse is what we send to clients (without sensitive data)
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Phone     string    `json:"phone"`
	UserType  string    `json:"userType"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToResponse converts Profile to ProfileResponse
func (p *Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		Phone:     p.Phone,
		UserType:  p.UserType,
		CreatedAt: p.CreatedAt,
	}
}
