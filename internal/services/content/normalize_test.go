package content

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mribera/penjat3d/internal/model"
)

type NormalizeSuite struct {
	suite.Suite
}

func TestNormalizeSuite(t *testing.T) {
	suite.Run(t, new(NormalizeSuite))
}

func (s *NormalizeSuite) TestUppercases() {
	word, err := Normalize("gat")
	s.Require().NoError(err)
	s.Equal("GAT", word)
}

func (s *NormalizeSuite) TestStripsAccents() {
	cases := map[string]string{
		"camió":    "CAMIO",
		"ratolí":   "RATOLI",
		"petó":     "PETO",
		"història": "HISTORIA",
		"füm":      "FUM",
		"cançó":    "CANÇO",
	}
	for in, want := range cases {
		got, err := Normalize(in)
		s.Require().NoError(err, in)
		s.Equal(want, got, in)
	}
}

func (s *NormalizeSuite) TestCedillaSurvives() {
	word, err := Normalize("força")
	s.Require().NoError(err)
	s.Equal("FORÇA", word)
}

func (s *NormalizeSuite) TestDropsSpaces() {
	word, err := Normalize("  cap de creus ")
	s.Require().NoError(err)
	s.Equal("CAPDECREUS", word)
}

func (s *NormalizeSuite) TestRejectsNonAlphabetCharacters() {
	for _, in := range []string{"penya-segat", "l'hora", "word123"} {
		_, err := Normalize(in)
		s.ErrorIs(err, model.ErrInvalidLetter, in)
	}
}

func (s *NormalizeSuite) TestRejectsEmptyResult() {
	for _, in := range []string{"", "   "} {
		_, err := Normalize(in)
		s.ErrorIs(err, model.ErrEmptyWord, in)
	}
}
