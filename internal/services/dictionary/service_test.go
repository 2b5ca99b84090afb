package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/playhub/portal/internal/dependencies/mocks"
	"github.com/playhub/portal/internal/model"
)

type DictionarySuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func (s *DictionarySuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random)
}

func (s *DictionarySuite) TestNewSeedsDefaultCorpus() {
	s.Greater(s.service.WordCount(), 0)
	s.True(s.service.IsAllowed("about"))
}

func (s *DictionarySuite) TestLoadWordsNormalizes() {
	err := s.service.LoadWords([]string{" crane ", "racer", "CRANE", "cat", "toolong", ""})
	s.Require().NoError(err)

	s.Equal(2, s.service.WordCount())
	s.True(s.service.IsAllowed("CRANE"))
	s.True(s.service.IsAllowed("racer"))
	s.False(s.service.IsAllowed("cat"))
}

func (s *DictionarySuite) TestLoadWordsEmptyCorpus() {
	err := s.service.LoadWords([]string{"cat", "toolong"})
	s.Require().ErrorIs(err, model.ErrDictionaryNotLoaded)

	// The previous corpus survives a failed load.
	s.Greater(s.service.WordCount(), 0)
}

func (s *DictionarySuite) TestPickAnswerUsesRandomIndex() {
	s.Require().NoError(s.service.LoadWords([]string{"crane", "racer", "about"}))

	s.random.QueueIntn(1, 0, 2)
	s.Equal("RACER", s.service.PickAnswer())
	s.Equal("CRANE", s.service.PickAnswer())
	s.Equal("ABOUT", s.service.PickAnswer())
}

func (s *DictionarySuite) TestIsAllowedIsCaseInsensitive() {
	s.Require().NoError(s.service.LoadWords([]string{"crane"}))

	s.True(s.service.IsAllowed("crane"))
	s.True(s.service.IsAllowed("Crane"))
	s.True(s.service.IsAllowed("CRANE"))
	s.False(s.service.IsAllowed("cranes"))
}

func (s *DictionarySuite) TestLoadFromFile() {
	path := filepath.Join(s.T().TempDir(), "words.txt")
	content := "crane\n racer \n\ncat\nspeed\n"
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))

	s.Require().NoError(s.service.LoadFromFile(path))

	s.Equal(3, s.service.WordCount())
	s.True(s.service.IsAllowed("speed"))
	s.False(s.service.IsAllowed("cat"))
}

func (s *DictionarySuite) TestLoadFromMissingFile() {
	err := s.service.LoadFromFile(filepath.Join(s.T().TempDir(), "missing.txt"))
	s.Require().Error(err)
}

func TestDictionarySuite(t *testing.T) {
	suite.Run(t, new(DictionarySuite))
}
