package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case HealthResult:
		fmt.Printf("Status: %s\n", v.Status)
	case AuthResult:
		o.printAuthResult(v)
	case User:
		o.printUser(v)
	case RenameResult:
		o.printRenameResult(v)
	case StrengthResult:
		o.printStrengthResult(v)
	case ProfileSummary:
		o.printProfileSummary(v)
	case []LeaderboardRow:
		o.printLeaderboard(v)
	case []ScoreRecord:
		o.printScoreRecords(v)
	case []RecentResult:
		o.printRecentResults(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printAuthResult(v AuthResult) {
	fmt.Printf("Logged in as: %s\n", v.Username)
	fmt.Printf("Session expires: %s\n", v.ExpiresAt.Format(time.RFC3339))
	if o.format == "text" {
		fmt.Println("Token saved.")
	}
}

func (o *Output) printUser(v User) {
	fmt.Printf("Username:    %s\n", v.Username)
	fmt.Printf("Email:       %s\n", v.Email)
	fmt.Printf("Registered:  %s\n", v.RegisteredAt.Format(time.RFC3339))
	if !v.LastLogin.IsZero() {
		fmt.Printf("Last login:  %s\n", v.LastLogin.Format(time.RFC3339))
	}
	fmt.Printf("Logins:      %d\n", v.TotalLogins)
}

func (o *Output) printRenameResult(v RenameResult) {
	if v.Success {
		fmt.Printf("%s (now %s)\n", v.Message, v.Username)
	} else {
		fmt.Printf("Rename failed: %s\n", v.Message)
	}
}

func (o *Output) printStrengthResult(v StrengthResult) {
	check := func(ok bool) string {
		if ok {
			return "yes"
		}
		return "no"
	}
	fmt.Printf("Strength: %s (%d/5)\n", v.Label, v.Passed)
	fmt.Printf("  length: %s  upper: %s  lower: %s  digit: %s  symbol: %s\n",
		check(v.Length), check(v.Upper), check(v.Lower), check(v.Digit), check(v.Symbol))
}

func (o *Output) printProfileSummary(v ProfileSummary) {
	fmt.Printf("%s (%s)\n", v.DisplayName, v.Username)
	fmt.Printf("Member since: %s\n", v.MemberSince.Format("2006-01-02"))
	fmt.Printf("Logins: %d\n", v.TotalLogins)

	fmt.Println("\nSnake:")
	o.printGameStats(v.Snake)
	fmt.Println("\nWordle:")
	o.printGameStats(v.Words)
}

func (o *Output) printGameStats(v GameStats) {
	fmt.Printf("  best %d, total %d, played %d, sessions %d\n",
		v.BestScore, v.TotalPoints, v.GamesPlayed, v.Sessions)
	if v.Wins > 0 || v.BestStreak > 0 {
		fmt.Printf("  wins %d, streak %d (best %d)\n", v.Wins, v.CurrentStreak, v.BestStreak)
	}
	if v.LastDifficulty != "" {
		fmt.Printf("  last difficulty: %s\n", v.LastDifficulty)
	}
	for _, r := range v.Recent {
		fmt.Printf("  %s  %s %d\n", r.Date.Format("2006-01-02 15:04"), r.Game, r.Score)
	}
}

func (o *Output) printLeaderboard(rows []LeaderboardRow) {
	if len(rows) == 0 {
		fmt.Println("No entries.")
		return
	}
	for i, row := range rows {
		line := fmt.Sprintf("%2d. %-20s best %5d  total %6d  played %4d",
			i+1, row.Username, row.BestScore, row.TotalPoints, row.GamesPlayed)
		if row.Wins > 0 {
			line += fmt.Sprintf("  wins %3d", row.Wins)
		}
		fmt.Println(line)
	}
}

func (o *Output) printScoreRecords(records []ScoreRecord) {
	if len(records) == 0 {
		fmt.Println("No scores.")
		return
	}
	for _, r := range records {
		extra := ""
		if r.Game == "Wordle" {
			outcome := "X"
			if r.Won {
				outcome = fmt.Sprintf("%d", r.Attempts)
			}
			extra = fmt.Sprintf("  (%s/6)", outcome)
		}
		fmt.Printf("%s  %-8s %-10s %5d%s\n",
			r.Timestamp.Format("2006-01-02 15:04"), r.Username, r.Game, r.Score, extra)
	}
}

func (o *Output) printRecentResults(results []RecentResult) {
	if len(results) == 0 {
		fmt.Println("No recent games.")
		return
	}
	for _, r := range results {
		detail := strings.TrimSpace(r.Difficulty)
		if r.Attempts > 0 {
			detail = fmt.Sprintf("%d/6", r.Attempts)
		}
		if detail != "" {
			detail = "  " + detail
		}
		fmt.Printf("%s  %-10s %5d%s\n", r.Date.Format("2006-01-02 15:04"), r.Game, r.Score, detail)
	}
}
