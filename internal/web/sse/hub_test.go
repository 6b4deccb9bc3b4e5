package sse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mribera/penjat3d/internal/testutil"
)

type HubSuite struct {
	suite.Suite
	hub *Hub
}

func TestHubSuite(t *testing.T) {
	suite.Run(t, new(HubSuite))
}

func (s *HubSuite) SetupTest() {
	s.hub = NewHub("SESH12345678", testutil.NopLogger())
	go s.hub.Run()
}

func (s *HubSuite) TearDownTest() {
	s.hub.Close()
}

// receive reads one message from the client with a timeout
func (s *HubSuite) receive(client *Client) string {
	select {
	case msg, ok := <-client.send:
		s.Require().True(ok, "send channel closed")
		return string(msg)
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for message")
		return ""
	}
}

func (s *HubSuite) TestRegisterAndBroadcast() {
	client := NewClient(s.hub)
	s.hub.Register(client)

	s.hub.Broadcast([]byte("hello"))
	s.Equal("hello", s.receive(client))
}

func (s *HubSuite) TestBroadcastEventFormatsSSE() {
	client := NewClient(s.hub)
	s.hub.Register(client)

	s.hub.BroadcastEvent("guess-correct", "<div>fragment</div>")
	s.Equal("event: guess-correct\ndata: <div>fragment</div>\n\n", s.receive(client))
}

func (s *HubSuite) TestBroadcastReachesAllClients() {
	first := NewClient(s.hub)
	second := NewClient(s.hub)
	s.hub.Register(first)
	s.hub.Register(second)

	s.hub.Broadcast([]byte("both"))
	s.Equal("both", s.receive(first))
	s.Equal("both", s.receive(second))
}

func (s *HubSuite) TestUnregisterClosesClient() {
	client := NewClient(s.hub)
	s.hub.Register(client)
	s.hub.Unregister(client)

	select {
	case _, ok := <-client.send:
		s.False(ok, "send channel should be closed")
	case <-time.After(time.Second):
		s.FailNow("timed out waiting for channel close")
	}
	s.Equal(0, s.hub.ClientCount())
}

type HubManagerSuite struct {
	suite.Suite
	manager *HubManager
}

func TestHubManagerSuite(t *testing.T) {
	suite.Run(t, new(HubManagerSuite))
}

func (s *HubManagerSuite) SetupTest() {
	s.manager = NewHubManager(testutil.NopLogger())
}

func (s *HubManagerSuite) TestGetOrCreateHubReusesExisting() {
	first := s.manager.GetOrCreateHub("SESH12345678")
	second := s.manager.GetOrCreateHub("SESH12345678")
	s.Same(first, second)

	other := s.manager.GetOrCreateHub("SESH87654321")
	s.NotSame(first, other)
}

func (s *HubManagerSuite) TestGetHubReturnsNilWhenMissing() {
	s.Nil(s.manager.GetHub("MISSING"))
}

func (s *HubManagerSuite) TestRemoveHub() {
	s.manager.GetOrCreateHub("SESH12345678")
	s.manager.RemoveHub("SESH12345678")
	s.Nil(s.manager.GetHub("SESH12345678"))
}

func (s *HubManagerSuite) TestCleanupEmptyHubs() {
	s.manager.GetOrCreateHub("SESH12345678")
	s.manager.CleanupEmptyHubs()
	s.Nil(s.manager.GetHub("SESH12345678"))
}
