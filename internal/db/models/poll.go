package models

import "time"

type Poll struct {
	ID            int64     `json:"id" pg:",pk"`
	Subject       string    `json:"subject" pg:",notnull"`
	StartDateTime time.Time `json:"start_date_time" pg:",notnull"`
	EndDateTime   time.Time `json:"end_date_time" pg:",notnull"`

	// IsActive caches whether now falls inside the poll window. The
	// status reconciler is the only writer after creation; readers and
	// the vote engine trust it instead of recomputing from the clock.
	IsActive bool `json:"is_active" pg:",use_zero"`

	// TotalVotes equals the sum of all candidates' vote counts and is
	// updated in the same transaction as every ledger append.
	TotalVotes int `json:"total_votes" pg:",use_zero"`

	CreatedByID int64     `json:"created_by_id"`
	CreatedAt   time.Time `json:"created_at" pg:"default:now()"`
	UpdatedAt   time.Time `json:"updated_at"`

	Candidates []*Candidate `json:"candidates" pg:"rel:has-many"`
}

// WindowContains reports whether now falls in [StartDateTime, EndDateTime).
// The start is inclusive, the end exclusive.
func (p *Poll) WindowContains(now time.Time) bool {
	return !p.StartDateTime.After(now) && p.EndDateTime.After(now)
}

// ShouldActivate mirrors the reconciler's activation predicate.
func (p *Poll) ShouldActivate(now time.Time) bool {
	return !p.IsActive && p.WindowContains(now)
}

// ShouldDeactivate mirrors the reconciler's deactivation predicate.
func (p *Poll) ShouldDeactivate(now time.Time) bool {
	return p.IsActive && !p.WindowContains(now)
}

// Candidate returns the candidate with the given id, or nil if the poll
// has no such candidate.
func (p *Poll) Candidate(candidateID int64) *Candidate {
	for _, candidate := range p.Candidates {
		if candidate.ID == candidateID {
			return candidate
		}
	}
	return nil
}

// TallyConsistent reports whether the denormalized counters agree with
// the ledgers: TotalVotes == sum of candidate VoteCount == total ledger
// entries across all candidates.
func (p *Poll) TallyConsistent() bool {
	countSum := 0
	ledgerSum := 0
	for _, candidate := range p.Candidates {
		countSum += candidate.VoteCount
		ledgerSum += len(candidate.Ballots)
	}
	return p.TotalVotes == countSum && p.TotalVotes == ledgerSum
}

type Candidate struct {
	ID     int64 `json:"id" pg:",pk"`
	PollID int64 `json:"poll_id" pg:",notnull"`
	// UserID references the user this candidate represents; unique
	// within a poll, enforced at creation.
	UserID      int64  `json:"user_id" pg:",notnull"`
	Description string `json:"description" pg:",notnull"`
	VoteCount   int    `json:"vote_count" pg:",use_zero"`

	Ballots []*Ballot `json:"ballots" pg:"rel:has-many"`
}

// Ballot is one entry in a candidate's append-only vote ledger. Each
// ballot pairs with exactly one VotedRecord on the voter's side.
type Ballot struct {
	ID          int64     `json:"id" pg:",pk"`
	CandidateID int64     `json:"candidate_id" pg:",notnull"`
	PollID      int64     `json:"poll_id" pg:",notnull"`
	VoterID     int64     `json:"voter_id" pg:",notnull"`
	CreatedAt   time.Time `json:"created_at" pg:"default:now()"`

	Voter *User `json:"voter" pg:"rel:has-one"`
	Poll  *Poll `json:"poll" pg:"rel:has-one"`
}
