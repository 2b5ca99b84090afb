package words

import "github.com/playhub/portal/internal/model"

// Evaluate marks a guess against the answer using the standard two-pass
// rule. The first pass fixes correct positions and counts the remaining
// answer letters; the second pass hands out present marks from that pool,
// so a letter is never marked present more times than it appears in the
// answer beyond its correct placements.
func Evaluate(guess, answer string) []model.Mark {
	n := len(answer)
	marks := make([]model.Mark, n)

	remaining := make(map[byte]int, n)
	for i := 0; i < n; i++ {
		if guess[i] == answer[i] {
			marks[i] = model.MarkCorrect
		} else {
			remaining[answer[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if marks[i] == model.MarkCorrect {
			continue
		}
		if remaining[guess[i]] > 0 {
			marks[i] = model.MarkPresent
			remaining[guess[i]]--
		} else {
			marks[i] = model.MarkAbsent
		}
	}

	return marks
}
