package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"mentorhub/internal/moderation/models"
	bannerStore "mentorhub/internal/moderation/store/banner"
	mentorStore "mentorhub/internal/moderation/store/mentor"
	userStore "mentorhub/internal/moderation/store/user"
	"mentorhub/internal/notifier"
	"mentorhub/internal/sentinel"
	dErrors "mentorhub/pkg/domain-errors"
)

// stubNotifier records sends and can be forced to fail.
type stubNotifier struct {
	sent []notifier.Message
	err  error
}

func (n *stubNotifier) Send(_ context.Context, msg notifier.Message) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

// failingMentorStore rejects writes so mutation-failure paths can be tested.
type failingMentorStore struct {
	*mentorStore.InMemoryStore
}

func (s *failingMentorStore) Save(context.Context, *models.Mentor) error {
	return errors.New("disk on fire")
}

type ModerationSuite struct {
	suite.Suite
	ctx      context.Context
	users    *userStore.InMemoryStore
	mentors  *mentorStore.InMemoryStore
	banners  *bannerStore.InMemoryStore
	notifier *stubNotifier
	svc      *Service
}

func (s *ModerationSuite) SetupTest() {
	s.ctx = context.Background()
	s.users = userStore.New()
	s.mentors = mentorStore.New()
	s.banners = bannerStore.New()
	s.notifier = &stubNotifier{}
	s.svc = NewService(s.users, s.mentors, s.banners, s.notifier,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestModerationSuite(t *testing.T) {
	suite.Run(t, new(ModerationSuite))
}

// seedMentor creates a linked user and mentor profile.
func (s *ModerationSuite) seedMentor() *models.Mentor {
	user := &models.User{ID: uuid.New(), Email: "ada@example.com", Name: "Ada"}
	s.Require().NoError(s.users.Create(s.ctx, user))

	mentor := &models.Mentor{
		ID:     uuid.New(),
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
	}
	s.Require().NoError(s.mentors.Create(s.ctx, mentor))
	return mentor
}

func (s *ModerationSuite) TestApproveMentorSetsFlagAndNotifies() {
	mentor := s.seedMentor()

	res, err := s.svc.ApproveMentor(s.ctx, mentor.ID.String())
	s.Require().NoError(err)
	s.True(res.Success)

	stored, err := s.mentors.FindByID(s.ctx, mentor.ID)
	s.Require().NoError(err)
	s.True(stored.Approved)

	s.Require().Len(s.notifier.sent, 1)
	s.Equal(notifier.TemplateMentorApproved, s.notifier.sent[0].Template)
	s.Equal(mentor.Email, s.notifier.sent[0].To)
}

func (s *ModerationSuite) TestApproveMentorUnknownIDIsNotFound() {
	_, err := s.svc.ApproveMentor(s.ctx, uuid.NewString())
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	s.Empty(s.notifier.sent)
}

func (s *ModerationSuite) TestMalformedIDTreatedAsNotFound() {
	_, err := s.svc.ApproveMentor(s.ctx, "not-a-uuid")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	_, err = s.svc.DeleteUser(s.ctx, "'; DROP TABLE users;--")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ModerationSuite) TestRejectMentorRemovesBothRecords() {
	mentor := s.seedMentor()

	res, err := s.svc.RejectMentor(s.ctx, mentor.ID.String())
	s.Require().NoError(err)
	s.True(res.Success)

	_, err = s.mentors.FindByID(s.ctx, mentor.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.users.FindByID(s.ctx, mentor.UserID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().Len(s.notifier.sent, 1)
	s.Equal(notifier.TemplateMentorRejected, s.notifier.sent[0].Template)
}

func (s *ModerationSuite) TestRejectMentorDeletionSurvivesNotifierFailure() {
	mentor := s.seedMentor()
	s.notifier.err = errors.New("relay down")

	_, err := s.svc.RejectMentor(s.ctx, mentor.ID.String())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotificationFailed))

	// Mutation committed despite the failed email.
	_, err = s.mentors.FindByID(s.ctx, mentor.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.users.FindByID(s.ctx, mentor.UserID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ModerationSuite) TestDeleteUserCascadesToMentorProfile() {
	mentor := s.seedMentor()

	res, err := s.svc.DeleteUser(s.ctx, mentor.UserID.String())
	s.Require().NoError(err)
	s.True(res.Success)

	_, err = s.users.FindByID(s.ctx, mentor.UserID)
	s.ErrorIs(err, sentinel.ErrNotFound)
	_, err = s.mentors.FindByID(s.ctx, mentor.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().Len(s.notifier.sent, 1)
	s.Equal(notifier.TemplateAccountDeleted, s.notifier.sent[0].Template)
}

func (s *ModerationSuite) TestDeleteUserWithoutMentorProfile() {
	user := &models.User{ID: uuid.New(), Email: "plain@example.com", Name: "Sam"}
	s.Require().NoError(s.users.Create(s.ctx, user))

	res, err := s.svc.DeleteUser(s.ctx, user.ID.String())
	s.Require().NoError(err)
	s.True(res.Success)

	_, err = s.users.FindByID(s.ctx, user.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ModerationSuite) TestDeleteUserNotificationFailureKeepsDeletion() {
	user := &models.User{ID: uuid.New(), Email: "plain@example.com", Name: "Sam"}
	s.Require().NoError(s.users.Create(s.ctx, user))
	s.notifier.err = errors.New("relay down")

	_, err := s.svc.DeleteUser(s.ctx, user.ID.String())
	s.True(dErrors.HasCode(err, dErrors.CodeNotificationFailed))

	_, err = s.users.FindByID(s.ctx, user.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *ModerationSuite) TestTopMentorToggleIsItsOwnInverse() {
	mentor := s.seedMentor()

	_, err := s.svc.ChangeTopMentorStatus(s.ctx, mentor.ID.String())
	s.Require().NoError(err)
	stored, err := s.mentors.FindByID(s.ctx, mentor.ID)
	s.Require().NoError(err)
	s.True(stored.TopMentor)

	_, err = s.svc.ChangeTopMentorStatus(s.ctx, mentor.ID.String())
	s.Require().NoError(err)
	stored, err = s.mentors.FindByID(s.ctx, mentor.ID)
	s.Require().NoError(err)
	s.False(stored.TopMentor)

	s.Len(s.notifier.sent, 2)
	s.Equal("enabled", s.notifier.sent[0].Vars["status"])
	s.Equal("disabled", s.notifier.sent[1].Vars["status"])
}

func (s *ModerationSuite) TestMutationFailureSkipsNotification() {
	mentor := s.seedMentor()
	svc := NewService(s.users, &failingMentorStore{s.mentors}, s.banners, s.notifier,
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	_, err := svc.ApproveMentor(s.ctx, mentor.ID.String())
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.Empty(s.notifier.sent)
}

func (s *ModerationSuite) TestModifyBannerReplacesPrevious() {
	first, err := s.svc.ModifyBanner(s.ctx, &models.BannerRequest{Title: "Welcome", Body: "Hello"})
	s.Require().NoError(err)
	s.True(first.Success)

	second, err := s.svc.ModifyBanner(s.ctx, &models.BannerRequest{Title: "Maintenance", Body: "Back soon"})
	s.Require().NoError(err)

	active, err := s.banners.Active(s.ctx)
	s.Require().NoError(err)
	s.Equal(second.Banner.ID, active.ID)
	s.Equal("Maintenance", active.Title)
	s.NotEqual(first.Banner.ID, active.ID)
	s.Empty(s.notifier.sent)
}
