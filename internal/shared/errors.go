package shared

import "errors"

// Vote casting failures. All of them are deterministic: retrying
// without a state change yields the same result.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPollNotFound      = errors.New("poll not found")
	ErrCandidateNotFound = errors.New("candidate not found in this poll")
	ErrDuplicateVote     = errors.New("you have already voted in this poll")
	ErrPollNotOpen       = errors.New("voting has ended or not started yet")
	ErrVotingBlocked     = errors.New("user is blocked from voting")
)

// Signup and account management failures.
var (
	ErrUserAlreadyExists     = errors.New("a user with this employee id or email already exists")
	ErrSignupAlreadyPending  = errors.New("a signup request for this employee id or email is already pending approval")
	ErrSignupRejected        = errors.New("a signup request for this employee id or email has been rejected")
	ErrSignupRequestNotFound = errors.New("signup request not found")
	ErrSignupAlreadyReviewed = errors.New("signup request has already been reviewed")
	ErrSelfAction            = errors.New("you cannot perform this action on yourself")
	ErrAdminImmutable        = errors.New("admin accounts cannot be deleted")
)

// Authentication failures.
var (
	ErrInvalidOTP      = errors.New("invalid or expired otp")
	ErrAccountInactive = errors.New("user account is not active")
	ErrInvalidToken    = errors.New("invalid token")
)

// ErrValidation marks rejected input; wrap it with the specific reason.
var ErrValidation = errors.New("validation error")
