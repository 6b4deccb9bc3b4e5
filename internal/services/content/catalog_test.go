package content

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mribera/penjat3d/internal/dependencies/mocks"
)

type CatalogSuite struct {
	suite.Suite
	random   *mocks.MockRandom
	provider *CatalogProvider
	ctx      context.Context
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.provider = NewCatalogProvider(s.random)
	s.ctx = context.Background()
}

func (s *CatalogSuite) TestGenerateWordReturnsNormalizedContent() {
	// Exhausted Intn queue picks index 0: "gat"
	content, err := s.provider.GenerateWord(s.ctx, nil)
	s.Require().NoError(err)

	s.Equal("GAT", content.Word)
	s.NotEmpty(content.Hint)
	s.NotEmpty(content.ImageDescription)
}

func (s *CatalogSuite) TestGenerateWordSkipsExcluded() {
	content, err := s.provider.GenerateWord(s.ctx, []string{"GAT"})
	s.Require().NoError(err)
	s.Equal("DRAC", content.Word)
}

func (s *CatalogSuite) TestGenerateWordIgnoresExclusionWhenExhausted() {
	var all []string
	for _, e := range catalog {
		if w, err := Normalize(e.word); err == nil {
			all = append(all, w)
		}
	}

	content, err := s.provider.GenerateWord(s.ctx, all)
	s.Require().NoError(err)
	s.NotEmpty(content.Word)
}

func (s *CatalogSuite) TestEveryCatalogWordFitsAlphabetOrIsSkipped() {
	usable := 0
	for _, e := range catalog {
		if _, err := Normalize(e.word); err == nil {
			usable++
		}
	}
	s.Greater(usable, 10, "catalogue must keep a healthy pool of playable words")
}

func (s *CatalogSuite) TestGenerateHiddenImageIsSVGDataURI() {
	uri, err := s.provider.GenerateHiddenImage(s.ctx, "GAT", "un gat taronja")
	s.Require().NoError(err)

	const prefix = "data:image/svg+xml;base64,"
	s.True(strings.HasPrefix(uri, prefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	s.Require().NoError(err)
	s.Contains(string(raw), "<svg")
	s.Contains(string(raw), "G")
}
