package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mribera/penjat3d/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	session := model.NewSession("SESH12345678", time.Now())

	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	got, err := s.storage.GetSession(s.ctx, "SESH12345678")
	s.Require().NoError(err)
	s.Equal(session.ID, got.ID)
}

func (s *StorageSuite) TestGetSessionMissing() {
	_, err := s.storage.GetSession(s.ctx, "MISSING")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteSession() {
	session := model.NewSession("SESH12345678", time.Now())
	s.Require().NoError(s.storage.SaveSession(s.ctx, session))

	s.Require().NoError(s.storage.DeleteSession(s.ctx, session.ID))

	_, err := s.storage.GetSession(s.ctx, session.ID)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteMissingSessionIsNoop() {
	s.NoError(s.storage.DeleteSession(s.ctx, "MISSING"))
}

// Grid tests

func (s *StorageSuite) TestSaveAndGetGrid() {
	grid := model.NewTileGrid("SESH12345678", 5, 1)
	grid.Order = []model.TileID{0, 1, 2}

	s.Require().NoError(s.storage.SaveGrid(s.ctx, grid))

	got, err := s.storage.GetGrid(s.ctx, "SESH12345678")
	s.Require().NoError(err)
	s.Equal(grid.Order, got.Order)
	s.Equal(5, got.Size)
}

func (s *StorageSuite) TestGetGridMissing() {
	_, err := s.storage.GetGrid(s.ctx, "MISSING")
	s.ErrorIs(err, model.ErrGridNotFound)
}

func (s *StorageSuite) TestSaveGridReplacesExisting() {
	first := model.NewTileGrid("SESH12345678", 3, 1)
	second := model.NewTileGrid("SESH12345678", 3, 2)

	s.Require().NoError(s.storage.SaveGrid(s.ctx, first))
	s.Require().NoError(s.storage.SaveGrid(s.ctx, second))

	got, err := s.storage.GetGrid(s.ctx, "SESH12345678")
	s.Require().NoError(err)
	s.Equal(2, got.Generation)
}

func (s *StorageSuite) TestDeleteGrid() {
	grid := model.NewTileGrid("SESH12345678", 3, 1)
	s.Require().NoError(s.storage.SaveGrid(s.ctx, grid))

	s.Require().NoError(s.storage.DeleteGrid(s.ctx, "SESH12345678"))

	_, err := s.storage.GetGrid(s.ctx, "SESH12345678")
	s.ErrorIs(err, model.ErrGridNotFound)
}

// Recent word tests

func (s *StorageSuite) TestRecentWordsNewestFirst() {
	s.Require().NoError(s.storage.PushRecentWord(s.ctx, "GAT", 10))
	s.Require().NoError(s.storage.PushRecentWord(s.ctx, "DRAC", 10))

	words, err := s.storage.GetRecentWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"DRAC", "GAT"}, words)
}

func (s *StorageSuite) TestRecentWordsTrimmedToLimit() {
	for _, w := range []string{"UN", "DOS", "TRES", "QUATRE"} {
		s.Require().NoError(s.storage.PushRecentWord(s.ctx, w, 3))
	}

	words, err := s.storage.GetRecentWords(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"QUATRE", "TRES", "DOS"}, words)
}

func (s *StorageSuite) TestGetRecentWordsEmpty() {
	words, err := s.storage.GetRecentWords(s.ctx)
	s.Require().NoError(err)
	s.Empty(words)
}
