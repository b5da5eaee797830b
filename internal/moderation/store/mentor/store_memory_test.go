package mentor

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"mentorhub/internal/moderation/models"
	"mentorhub/internal/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemoryStore
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = New()
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) seed() *models.Mentor {
	mentor := &models.Mentor{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Email:  "mentor@example.com",
		Name:   "Ada",
	}
	s.Require().NoError(s.store.Create(s.ctx, mentor))
	return mentor
}

func (s *MemoryStoreSuite) TestFindByIDReturnsClone() {
	mentor := s.seed()

	found, err := s.store.FindByID(s.ctx, mentor.ID)
	s.Require().NoError(err)

	found.Approved = true
	again, err := s.store.FindByID(s.ctx, mentor.ID)
	s.Require().NoError(err)
	s.False(again.Approved)
}

func (s *MemoryStoreSuite) TestFindByUserID() {
	mentor := s.seed()

	found, err := s.store.FindByUserID(s.ctx, mentor.UserID)
	s.Require().NoError(err)
	s.Equal(mentor.ID, found.ID)
}

func (s *MemoryStoreSuite) TestSaveUnknownMentorFails() {
	err := s.store.Save(s.ctx, &models.Mentor{ID: uuid.New()})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestDeleteRemovesRecord() {
	mentor := s.seed()

	s.Require().NoError(s.store.Delete(s.ctx, mentor.ID))
	_, err := s.store.FindByID(s.ctx, mentor.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.ErrorIs(s.store.Delete(s.ctx, mentor.ID), sentinel.ErrNotFound)
}
