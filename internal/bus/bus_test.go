package bus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/kiliclub/clubdesk/internal/model"
	"github.com/kiliclub/clubdesk/internal/testutil"
)

type BusSuite struct {
	suite.Suite
	bus *Bus
}

func TestBusSuite(t *testing.T) {
	suite.Run(t, new(BusSuite))
}

func (s *BusSuite) SetupTest() {
	s.bus = New(testutil.NopLogger())
}

func (s *BusSuite) TearDownTest() {
	s.bus.Close()
}

func (s *BusSuite) receive(sub *Subscription) (model.Topic, bool) {
	select {
	case topic, ok := <-sub.C:
		return topic, ok
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for signal")
		return "", false
	}
}

func (s *BusSuite) TestPublishReachesSubscriber() {
	sub := s.bus.Subscribe(model.TopicPayments)
	defer sub.Close()

	s.bus.Publish(model.TopicPayments)

	topic, ok := s.receive(sub)
	s.True(ok)
	s.Equal(model.TopicPayments, topic)
}

func (s *BusSuite) TestTopicFiltering() {
	sub := s.bus.Subscribe(model.TopicPlayers)
	defer sub.Close()

	s.bus.Publish(model.TopicPayments)
	s.bus.Publish(model.TopicPlayers)

	topic, ok := s.receive(sub)
	s.True(ok)
	s.Equal(model.TopicPlayers, topic)

	select {
	case extra := <-sub.C:
		s.Failf("unexpected signal", "got %s", extra)
	default:
	}
}

func (s *BusSuite) TestSubscribeAllTopics() {
	sub := s.bus.Subscribe()
	defer sub.Close()

	for _, topic := range model.Topics() {
		s.bus.Publish(topic)
	}

	for _, want := range model.Topics() {
		got, ok := s.receive(sub)
		s.True(ok)
		s.Equal(want, got)
	}
}

func (s *BusSuite) TestPublishNeverBlocks() {
	sub := s.bus.Subscribe(model.TopicPayments)
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		// Nobody drains sub; publishing past the buffer must still return
		for i := 0; i < subscriptionBuffer*2; i++ {
			s.bus.Publish(model.TopicPayments)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.FailNow("publish blocked on a full subscriber")
	}
}

func (s *BusSuite) TestCloseSubscription() {
	sub := s.bus.Subscribe(model.TopicRoles)
	sub.Close()
	sub.Close() // safe to close twice

	_, ok := <-sub.C
	s.False(ok)

	// Publishing after unsubscribe must not panic
	s.bus.Publish(model.TopicRoles)
}

func (s *BusSuite) TestBusClose() {
	sub := s.bus.Subscribe()
	s.bus.Close()

	_, ok := <-sub.C
	s.False(ok)

	// Operations on a closed bus are no-ops
	s.bus.Publish(model.TopicPlayers)
	late := s.bus.Subscribe(model.TopicPlayers)
	_, ok = <-late.C
	s.False(ok)
}
