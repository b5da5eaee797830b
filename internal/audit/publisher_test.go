package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

// recordingSink captures published events and can be forced to fail.
type recordingSink struct {
	events []Event
	err    error
}

func (s *recordingSink) Publish(_ context.Context, event Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

type PublisherSuite struct {
	suite.Suite
	ctx   context.Context
	store *InMemoryStore
}

func (s *PublisherSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = NewInMemoryStore()
}

func TestPublisherSuite(t *testing.T) {
	suite.Run(t, new(PublisherSuite))
}

func (s *PublisherSuite) TestSyncEmitPersistsWithTimestamp() {
	p := NewPublisher(s.store)

	err := p.Emit(s.ctx, Event{Subject: "mentor-1", Action: string(EventMentorApproved)})
	s.Require().NoError(err)

	events, err := s.store.ListBySubject(s.ctx, "mentor-1")
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.False(events[0].Timestamp.IsZero())
}

func (s *PublisherSuite) TestAsyncEmitDrainsOnClose() {
	p := NewPublisher(s.store, WithAsyncBuffer(16))

	for range 5 {
		s.Require().NoError(p.Emit(s.ctx, Event{Subject: "admin-1", Action: string(EventOTPIssued)}))
	}
	p.Close()

	events, err := s.store.ListBySubject(s.ctx, "admin-1")
	s.Require().NoError(err)
	s.Len(events, 5)
}

func (s *PublisherSuite) TestSinkReceivesEvents() {
	sink := &recordingSink{}
	p := NewPublisher(s.store, WithSink(sink))

	s.Require().NoError(p.Emit(s.ctx, Event{Subject: "user-1", Action: string(EventUserDeleted)}))

	s.Require().Len(sink.events, 1)
	s.Equal(string(EventUserDeleted), sink.events[0].Action)
}

func (s *PublisherSuite) TestSinkFailureStillPersists() {
	sink := &recordingSink{err: errors.New("broker down")}
	p := NewPublisher(s.store, WithSink(sink))

	s.Require().NoError(p.Emit(s.ctx, Event{Subject: "user-1", Action: string(EventUserDeleted)}))

	events, err := s.store.ListBySubject(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Len(events, 1)
}
