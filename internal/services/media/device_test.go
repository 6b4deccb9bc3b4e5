package media

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DeviceSuite struct {
	suite.Suite
	device *Device
}

func TestDeviceSuite(t *testing.T) {
	suite.Run(t, new(DeviceSuite))
}

func (s *DeviceSuite) SetupTest() {
	s.device = NewDevice()
}

func (s *DeviceSuite) TestStartsStoppedAndUnmuted() {
	s.False(s.device.Started())
	s.False(s.device.Muted())
}

func (s *DeviceSuite) TestEnsureStartedIsIdempotent() {
	s.device.EnsureStarted()
	s.True(s.device.Started())

	s.device.EnsureStarted()
	s.True(s.device.Started())
}

func (s *DeviceSuite) TestToggleMuted() {
	s.True(s.device.ToggleMuted())
	s.True(s.device.Muted())

	s.False(s.device.ToggleMuted())
	s.False(s.device.Muted())
}

func (s *DeviceSuite) TestSetMuted() {
	s.device.SetMuted(true)
	s.True(s.device.Muted())

	s.device.SetMuted(false)
	s.False(s.device.Muted())
}

func (s *DeviceSuite) TestConcurrentEnsureStarted() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.device.EnsureStarted()
		}()
	}
	wg.Wait()

	s.True(s.device.Started())
}
