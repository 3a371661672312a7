package models

import "time"

// VotedRecord is the voter-side half of a cast vote. The unique
// (user_id, poll_id) constraint makes the duplicate check and the
// append a single indivisible store operation.
type VotedRecord struct {
	ID              int64 `json:"id" pg:",pk"`
	UserID          int64 `json:"user_id" pg:",notnull"`
	PollID          int64 `json:"poll_id" pg:",notnull"`
	CandidateUserID int64 `json:"candidate_user_id" pg:",notnull"`
	// CandidateDescription is snapshotted at vote time so history
	// survives any later poll edits.
	CandidateDescription string    `json:"candidate_description"`
	VotedAt              time.Time `json:"voted_at" pg:",notnull"`

	Poll *Poll `json:"poll" pg:"rel:has-one"`
}
