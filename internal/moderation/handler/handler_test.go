package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"mentorhub/internal/moderation/handler/mocks"
	"mentorhub/internal/moderation/models"
	dErrors "mentorhub/pkg/domain-errors"
)

//go:generate mockgen -source=handler.go -destination=mocks/moderation-mocks.go -package=mocks Service
type ModerationHandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
}

func (s *ModerationHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)

	h := New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.router = chi.NewRouter()
	h.Register(s.router)
}

func TestModerationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ModerationHandlerSuite))
}

func (s *ModerationHandlerSuite) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ModerationHandlerSuite) decodeError(rec *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ModerationHandlerSuite) TestApproveMentorSuccess() {
	mentorID := uuid.NewString()
	s.service.EXPECT().ApproveMentor(gomock.Any(), mentorID).
		Return(&models.ActionResult{Success: true, Message: "Mentor application approved"}, nil)

	rec := s.do(http.MethodPost, "/mentor/approve", `{"id":"`+mentorID+`"}`)

	s.Equal(http.StatusOK, rec.Code)
	var res models.ActionResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.True(res.Success)
}

func (s *ModerationHandlerSuite) TestApproveMentorMissingIDRejected() {
	s.service.EXPECT().ApproveMentor(gomock.Any(), gomock.Any()).Times(0)

	rec := s.do(http.MethodPost, "/mentor/approve", `{"id":"   "}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ModerationHandlerSuite) TestApproveMentorInvalidJSON() {
	s.service.EXPECT().ApproveMentor(gomock.Any(), gomock.Any()).Times(0)

	rec := s.do(http.MethodPost, "/mentor/approve", `{"id": `)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(dErrors.CodeBadRequest), s.decodeError(rec)["error"])
}

func (s *ModerationHandlerSuite) TestApproveMentorNotFound() {
	mentorID := uuid.NewString()
	s.service.EXPECT().ApproveMentor(gomock.Any(), mentorID).
		Return(nil, dErrors.New(dErrors.CodeNotFound, "mentor not found"))

	rec := s.do(http.MethodPost, "/mentor/approve", `{"id":"`+mentorID+`"}`)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(dErrors.CodeNotFound), s.decodeError(rec)["error"])
}

func (s *ModerationHandlerSuite) TestRejectMentorReadsQueryParam() {
	mentorID := uuid.NewString()
	s.service.EXPECT().RejectMentor(gomock.Any(), mentorID).
		Return(&models.ActionResult{Success: true, Message: "Mentor application rejected"}, nil)

	rec := s.do(http.MethodDelete, "/mentor/reject?id="+mentorID, "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ModerationHandlerSuite) TestRejectMentorNotificationFailureIs500() {
	mentorID := uuid.NewString()
	s.service.EXPECT().RejectMentor(gomock.Any(), mentorID).
		Return(nil, dErrors.New(dErrors.CodeNotificationFailed,
			"The change was applied but the notification email could not be sent"))

	rec := s.do(http.MethodDelete, "/mentor/reject?id="+mentorID, "")

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(dErrors.CodeNotificationFailed), s.decodeError(rec)["error"])
}

func (s *ModerationHandlerSuite) TestDeleteUserReadsPathParam() {
	userID := uuid.NewString()
	s.service.EXPECT().DeleteUser(gomock.Any(), userID).
		Return(&models.ActionResult{Success: true, Message: "User deleted"}, nil)

	rec := s.do(http.MethodDelete, "/user/"+userID, "")

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ModerationHandlerSuite) TestTopMentorSuccess() {
	mentorID := uuid.NewString()
	s.service.EXPECT().ChangeTopMentorStatus(gomock.Any(), mentorID).
		Return(&models.ActionResult{Success: true, Message: "Top mentor status enabled"}, nil)

	rec := s.do(http.MethodPost, "/mentor/top", `{"id":"`+mentorID+`"}`)

	s.Equal(http.StatusOK, rec.Code)
}

func (s *ModerationHandlerSuite) TestBannerReplace() {
	s.service.EXPECT().ModifyBanner(gomock.Any(), &models.BannerRequest{Title: "Welcome", Body: "Hello"}).
		Return(&models.BannerResult{
			Success: true,
			Banner:  &models.Banner{ID: uuid.New(), Title: "Welcome", Body: "Hello"},
		}, nil)

	rec := s.do(http.MethodPut, "/banner", `{"title":"Welcome","body":"Hello"}`)

	s.Equal(http.StatusOK, rec.Code)
	var res models.BannerResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &res))
	s.True(res.Success)
	s.Equal("Welcome", res.Banner.Title)
}

func (s *ModerationHandlerSuite) TestBannerValidationRejectsBlankTitle() {
	s.service.EXPECT().ModifyBanner(gomock.Any(), gomock.Any()).Times(0)

	rec := s.do(http.MethodPut, "/banner", `{"title":"","body":"Hello"}`)

	s.Equal(http.StatusBadRequest, rec.Code)
}
