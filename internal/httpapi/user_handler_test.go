package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"employee_voting_system/internal/db/models"
	mock_repositories "employee_voting_system/internal/db/repositories/mocks"
	"employee_voting_system/internal/services"
	"employee_voting_system/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type stubVotingService struct {
	err error

	userID      int64
	pollID      int64
	candidateID int64
}

func (s *stubVotingService) CastVote(userID, pollID, candidateID int64, now time.Time) error {
	s.userID = userID
	s.pollID = pollID
	s.candidateID = candidateID
	return s.err
}

type stubPollQueryService struct {
	polls   []*models.Poll
	records []*models.VotedRecord
	total   int
	err     error
}

func (s *stubPollQueryService) ActivePolls(page, limit int) ([]*models.Poll, int, error) {
	return s.polls, s.total, s.err
}

func (s *stubPollQueryService) UpcomingPolls(now time.Time, page, limit int) ([]*models.Poll, int, error) {
	return s.polls, s.total, s.err
}

func (s *stubPollQueryService) EndedPolls(now time.Time, page, limit int) ([]*models.Poll, int, error) {
	return s.polls, s.total, s.err
}

func (s *stubPollQueryService) VotedHistory(userID int64, page, limit int) ([]*models.VotedRecord, int, error) {
	return s.records, s.total, s.err
}

func (s *stubPollQueryService) Dashboard(now time.Time) (*services.Dashboard, error) {
	return &services.Dashboard{}, s.err
}

func userRouter(t *testing.T, voting *stubVotingService, query *stubPollQueryService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	userRepo := mock_repositories.NewMockUserRepository(ctrl)

	handler := NewUserHandler(userRepo, voting, query, zap.NewNop().Sugar())

	router := gin.New()
	group := router.Group("/api/user", RequireAuth(tokenSecret))
	group.GET("/polls/active", handler.ActivePolls)
	group.POST("/polls/:pollID/candidates/:candidateID/vote", handler.CastVote)
	group.GET("/voted", handler.VotedHistory)
	return router
}

func authedRequest(t *testing.T, method, target string) *http.Request {
	t.Helper()

	tokenString, err := GenerateToken(&models.User{ID: 1, Name: "Alice", IsVote: true}, tokenSecret, time.Hour)
	assert.NoError(t, err)

	request := httptest.NewRequest(method, target, nil)
	request.Header.Set("Authorization", "Bearer "+tokenString)
	return request
}

func TestCastVoteEndpoint_Success(t *testing.T) {
	voting := &stubVotingService{}
	router := userRouter(t, voting, &stubPollQueryService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/api/user/polls/7/candidates/31/vote"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, int64(1), voting.userID)
	assert.Equal(t, int64(7), voting.pollID)
	assert.Equal(t, int64(31), voting.candidateID)
}

func TestCastVoteEndpoint_DuplicateIsConflict(t *testing.T) {
	voting := &stubVotingService{err: shared.ErrDuplicateVote}
	router := userRouter(t, voting, &stubPollQueryService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/api/user/polls/7/candidates/31/vote"))

	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCastVoteEndpoint_ClosedPollIsForbidden(t *testing.T) {
	voting := &stubVotingService{err: shared.ErrPollNotOpen}
	router := userRouter(t, voting, &stubPollQueryService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/api/user/polls/7/candidates/31/vote"))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestCastVoteEndpoint_BadPollID(t *testing.T) {
	voting := &stubVotingService{}
	router := userRouter(t, voting, &stubPollQueryService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(t, http.MethodPost, "/api/user/polls/abc/candidates/31/vote"))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestActivePollsEndpoint_HidesVoteCounts(t *testing.T) {
	query := &stubPollQueryService{
		polls: []*models.Poll{
			{
				ID:         7,
				Subject:    "Employee of the month",
				TotalVotes: 12,
				Candidates: []*models.Candidate{
					{ID: 31, Description: "Always helps the team", VoteCount: 8},
				},
			},
		},
		total: 1,
	}
	router := userRouter(t, &stubVotingService{}, query)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(t, http.MethodGet, "/api/user/polls/active"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Always helps the team")
	assert.NotContains(t, body, "vote_count")
	assert.NotContains(t, body, "total_votes")
}

func TestVotedHistoryEndpoint_RendersMissingPoll(t *testing.T) {
	query := &stubPollQueryService{
		records: []*models.VotedRecord{
			{PollID: 7, CandidateDescription: "Always helps the team", Poll: &models.Poll{ID: 7, Subject: "Employee of the month"}},
			{PollID: 8, CandidateDescription: "Shipped the big release", Poll: nil},
		},
		total: 2,
	}
	router := userRouter(t, &stubVotingService{}, query)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, authedRequest(t, http.MethodGet, "/api/user/voted"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "Employee of the month")
	assert.Contains(t, body, "poll_unavailable")
}
