package models

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type PendingUserStatus string

const (
	PendingUserStatusPending  PendingUserStatus = "pending"
	PendingUserStatusApproved PendingUserStatus = "approved"
	PendingUserStatusRejected PendingUserStatus = "rejected"
)

func (s PendingUserStatus) String() string {
	return string(s)
}

func (s PendingUserStatus) CapitalizedString() string {
	return cases.Title(language.English).String(s.String())
}

type PendingUser struct {
	ID         int64             `json:"id" pg:",pk"`
	Name       string            `json:"name" pg:",notnull"`
	Email      string            `json:"email" pg:",notnull,unique"`
	EmployeeID string            `json:"employee_id" pg:"employee_id,notnull"`
	RefName    string            `json:"ref_name"`
	BirthDate  time.Time         `json:"birth_date" pg:",notnull"`
	Status     PendingUserStatus `json:"status" pg:",notnull,default:'pending'"`
	AdminNotes string            `json:"admin_notes"`
	ReviewedBy int64             `json:"reviewed_by"`
	ReviewedAt time.Time         `json:"reviewed_at"`
	CreatedAt  time.Time         `json:"created_at" pg:"default:now()"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
