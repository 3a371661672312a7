package models

import "time"

type User struct {
	ID         int64     `json:"id" pg:",pk"`
	Name       string    `json:"name" pg:",notnull"`
	Email      string    `json:"email" pg:",notnull,unique"`
	EmployeeID string    `json:"employee_id" pg:"employee_id,notnull,unique"`
	RefName    string    `json:"ref_name"`
	BirthDate  time.Time `json:"birth_date" pg:",notnull"`

	// IsVote is the voting capability flag, toggled by admins. It is
	// independent of poll state and of IsActive.
	IsVote bool `json:"is_vote" pg:",use_zero,default:true"`
	// IsActive gates login only. It is never consulted when a vote is
	// cast; by then the caller is already authenticated.
	IsActive bool `json:"is_active" pg:",use_zero"`
	IsAdmin  bool `json:"is_admin" pg:",use_zero"`

	OTP          string    `json:"-" pg:"otp"`
	OTPExpiresAt time.Time `json:"-" pg:"otp_expires_at"`
	LastLogin    time.Time `json:"last_login"`

	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt time.Time `json:"updated_at"`

	VotedRecords []*VotedRecord `json:"voted_records" pg:"rel:has-many"`
}
