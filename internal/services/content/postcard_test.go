package content

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mribera/penjat3d/internal/model"
)

type PostcardSuite struct {
	suite.Suite
}

func TestPostcardSuite(t *testing.T) {
	suite.Run(t, new(PostcardSuite))
}

func decodeSVG(s *PostcardSuite, uri string) string {
	const prefix = "data:image/svg+xml;base64,"
	s.Require().True(strings.HasPrefix(uri, prefix))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, prefix))
	s.Require().NoError(err)
	return string(raw)
}

func (s *PostcardSuite) TestWonPostcard() {
	svg := decodeSVG(s, ResultPostcard(model.OutcomeWon, "GAT"))
	s.Contains(svg, "Has guanyat!")
	s.Contains(svg, "GAT")
}

func (s *PostcardSuite) TestLostPostcardShowsWord() {
	svg := decodeSVG(s, ResultPostcard(model.OutcomeLost, "DRAC"))
	s.Contains(svg, "Has perdut...")
	s.Contains(svg, "DRAC")
}

func (s *PostcardSuite) TestPlaceholderImage() {
	svg := decodeSVG(s, PlaceholderImage())
	s.Contains(svg, "<svg")
}
