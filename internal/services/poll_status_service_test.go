package services

import (
	"errors"
	"testing"
	"time"

	"employee_voting_system/internal/db/models"
	mock_repositories "employee_voting_system/internal/db/repositories/mocks"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var reconcileNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func TestReconcile_NothingToDo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	pollRepo.EXPECT().ActivateDue(reconcileNow).Return(0, nil)
	pollRepo.EXPECT().DeactivateExpired(reconcileNow).Return(0, nil)

	service := NewPollStatusService(pollRepo, zap.NewNop().Sugar())

	activated, deactivated, err := service.Reconcile(reconcileNow)
	assert.NoError(t, err)
	assert.Equal(t, 0, activated)
	assert.Equal(t, 0, deactivated)
}

func TestReconcile_ReportsCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	pollRepo.EXPECT().ActivateDue(reconcileNow).Return(3, nil)
	pollRepo.EXPECT().DeactivateExpired(reconcileNow).Return(2, nil)

	service := NewPollStatusService(pollRepo, zap.NewNop().Sugar())

	activated, deactivated, err := service.Reconcile(reconcileNow)
	assert.NoError(t, err)
	assert.Equal(t, 3, activated)
	assert.Equal(t, 2, deactivated)
}

func TestReconcile_ActivateFailsDeactivateStillRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	pollRepo.EXPECT().ActivateDue(reconcileNow).Return(0, errors.New("database error"))
	pollRepo.EXPECT().DeactivateExpired(reconcileNow).Return(1, nil)

	service := NewPollStatusService(pollRepo, zap.NewNop().Sugar())

	_, deactivated, err := service.Reconcile(reconcileNow)
	assert.Error(t, err)
	assert.Equal(t, 1, deactivated)
}

func TestReconcile_DeactivateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pollRepo := mock_repositories.NewMockPollRepository(ctrl)
	pollRepo.EXPECT().ActivateDue(reconcileNow).Return(2, nil)
	pollRepo.EXPECT().DeactivateExpired(reconcileNow).Return(0, errors.New("database error"))

	service := NewPollStatusService(pollRepo, zap.NewNop().Sugar())

	activated, _, err := service.Reconcile(reconcileNow)
	assert.Error(t, err)
	assert.Equal(t, 2, activated)
}

// statePollRepository applies the model predicates to an in-memory poll
// set, mirroring what the bulk updates do in SQL.
type statePollRepository struct {
	mock_repositories.MockPollRepository
	polls []*models.Poll
}

func (r *statePollRepository) ActivateDue(now time.Time) (int, error) {
	updated := 0
	for _, poll := range r.polls {
		if poll.ShouldActivate(now) {
			poll.IsActive = true
			updated++
		}
	}
	return updated, nil
}

func (r *statePollRepository) DeactivateExpired(now time.Time) (int, error) {
	updated := 0
	for _, poll := range r.polls {
		if poll.ShouldDeactivate(now) {
			poll.IsActive = false
			updated++
		}
	}
	return updated, nil
}

func TestReconcile_TransitionsAndIdempotence(t *testing.T) {
	polls := []*models.Poll{
		// Due: window open, flag stale.
		{ID: 1, StartDateTime: reconcileNow.Add(-time.Hour), EndDateTime: reconcileNow.Add(time.Hour), IsActive: false},
		// Expired: window closed, flag stale.
		{ID: 2, StartDateTime: reconcileNow.Add(-3 * time.Hour), EndDateTime: reconcileNow.Add(-time.Hour), IsActive: true},
		// Upcoming: stays inactive.
		{ID: 3, StartDateTime: reconcileNow.Add(time.Hour), EndDateTime: reconcileNow.Add(2 * time.Hour), IsActive: false},
		// Already consistent: untouched.
		{ID: 4, StartDateTime: reconcileNow.Add(-time.Hour), EndDateTime: reconcileNow.Add(time.Hour), IsActive: true},
	}

	pollRepo := &statePollRepository{polls: polls}
	service := NewPollStatusService(pollRepo, zap.NewNop().Sugar())

	activated, deactivated, err := service.Reconcile(reconcileNow)
	assert.NoError(t, err)
	assert.Equal(t, 1, activated)
	assert.Equal(t, 1, deactivated)

	assert.True(t, polls[0].IsActive)
	assert.False(t, polls[1].IsActive)
	assert.False(t, polls[2].IsActive)
	assert.True(t, polls[3].IsActive)

	// A second pass at the same instant finds nothing to change.
	activated, deactivated, err = service.Reconcile(reconcileNow)
	assert.NoError(t, err)
	assert.Equal(t, 0, activated)
	assert.Equal(t, 0, deactivated)
}

func TestReconcile_BoundaryInstants(t *testing.T) {
	start := reconcileNow
	end := reconcileNow.Add(time.Hour)

	polls := []*models.Poll{
		{ID: 1, StartDateTime: start, EndDateTime: end, IsActive: false},
	}

	pollRepo := &statePollRepository{polls: polls}
	service := NewPollStatusService(pollRepo, zap.NewNop().Sugar())

	// Exactly at start the poll activates.
	activated, _, err := service.Reconcile(start)
	assert.NoError(t, err)
	assert.Equal(t, 1, activated)
	assert.True(t, polls[0].IsActive)

	// Exactly at end it deactivates: the window is half-open.
	_, deactivated, err := service.Reconcile(end)
	assert.NoError(t, err)
	assert.Equal(t, 1, deactivated)
	assert.False(t, polls[0].IsActive)
}
