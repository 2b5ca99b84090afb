package dictionary

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/playhub/portal/internal/dependencies/random"
	"github.com/playhub/portal/internal/model"
)

// WordLength is the fixed answer length for the word-guess game.
const WordLength = 5

// Service provides the word-guess answer corpus and guess validation. Every
// answer is also an accepted guess; there is a single corpus, matching the
// original game's word list.
type Service struct {
	random random.Random

	mu      sync.RWMutex
	answers []string
	allowed map[string]struct{}
}

// New creates a dictionary service seeded with the default corpus.
func New(rnd random.Random) *Service {
	s := &Service{
		random:  rnd,
		allowed: make(map[string]struct{}),
	}
	_ = s.LoadWords(defaultCorpus)
	return s
}

// LoadWords replaces the corpus with the given words. Words of the wrong
// length are skipped; matching is case-insensitive.
func (s *Service) LoadWords(words []string) error {
	answers := make([]string, 0, len(words))
	allowed := make(map[string]struct{}, len(words))

	for _, word := range words {
		word = strings.ToUpper(strings.TrimSpace(word))
		if len(word) != WordLength {
			continue
		}
		if _, dup := allowed[word]; dup {
			continue
		}
		answers = append(answers, word)
		allowed[word] = struct{}{}
	}

	if len(answers) == 0 {
		return model.ErrDictionaryNotLoaded
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = answers
	s.allowed = allowed
	return nil
}

// LoadFromFile replaces the corpus from a file with one word per line.
func (s *Service) LoadFromFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return s.LoadWords(words)
}

// PickAnswer draws a uniformly random answer from the corpus.
func (s *Service) PickAnswer() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.answers) == 0 {
		return ""
	}
	return s.answers[s.random.Intn(len(s.answers))]
}

// IsAllowed reports whether word is an accepted guess.
func (s *Service) IsAllowed(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.allowed[strings.ToUpper(word)]
	return ok
}

// WordCount returns the corpus size.
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.answers)
}
