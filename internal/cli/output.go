package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
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
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case Profile:
		o.printProfile(v)
	case []GameSummary:
		o.printHistory(v)
	case GameSummary:
		o.printSummary(v)
	case Snapshot:
		o.printSnapshot(v)
	case []HighScore:
		o.printScores(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Profile response type
type Profile struct {
	PlayerID    string    `json:"player_id"`
	DisplayName string    `json:"display_name"`
	LastTrack   int       `json:"last_track"`
	HighScore   int       `json:"high_score"`
	LineCount   int       `json:"line_count"`
	GameMode    string    `json:"game_mode"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GameSummary response type
type GameSummary struct {
	SessionID   string         `json:"session_id"`
	PlayerID    string         `json:"player_id"`
	Score       int            `json:"score"`
	Lines       int            `json:"lines"`
	Difficulty  string         `json:"difficulty"`
	GameMode    string         `json:"game_mode"`
	SpawnCounts map[string]int `json:"spawn_counts,omitempty"`
	EndedAt     time.Time      `json:"ended_at"`
}

// HighScore response type
type HighScore struct {
	Rank        int       `json:"rank"`
	PlayerID    string    `json:"player_id"`
	DisplayName string    `json:"display_name"`
	Score       int       `json:"score"`
	Lines       int       `json:"lines"`
	GameMode    string    `json:"game_mode"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// Offset response type
type Offset struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Piece response type
type Piece struct {
	Shape [4]Offset `json:"shape"`
	Pos   Offset    `json:"pos"`
	Kind  int       `json:"kind"`
}

// Cell response type
type Cell struct {
	Kind int `json:"kind"`
}

// Board response type
type Board struct {
	Cells [][]*Cell `json:"cells"`
}

// SessionOptions response type
type SessionOptions struct {
	Difficulty string `json:"difficulty"`
	GameMode   string `json:"game_mode"`
	Track      int    `json:"track"`
}

// Snapshot response type
type Snapshot struct {
	SessionID    string         `json:"session_id"`
	PlayerID     string         `json:"player_id"`
	Options      SessionOptions `json:"options"`
	Board        *Board         `json:"board"`
	Active       *Piece         `json:"active,omitempty"`
	Next         *Piece         `json:"next,omitempty"`
	Held         *Piece         `json:"held,omitempty"`
	HoldUsed     bool           `json:"hold_used"`
	Score        int            `json:"score"`
	Lines        int            `json:"lines"`
	Paused       bool           `json:"paused"`
	Panic        bool           `json:"panic"`
	GameOver     bool           `json:"game_over"`
	ClearingRows []int          `json:"clearing_rows,omitempty"`
	Track        int            `json:"track"`
	Muted        bool           `json:"muted"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

const kindLetters = "IOTSZJL"

func kindLetter(kind int) string {
	if kind < 0 || kind >= len(kindLetters) {
		return "?"
	}
	return string(kindLetters[kind])
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printProfile(p Profile) {
	fmt.Printf("Profile: %s (%s)\n", p.DisplayName, p.PlayerID)
	fmt.Printf("High Score: %d\n", p.HighScore)
	fmt.Printf("Lines Cleared: %d\n", p.LineCount)
	fmt.Printf("Preferred Mode: %s\n", p.GameMode)
	fmt.Printf("Last Track: %d\n", p.LastTrack)
	if !p.UpdatedAt.IsZero() {
		fmt.Printf("Updated: %s\n", p.UpdatedAt.Format("2006-01-02 15:04:05"))
	}
}

func (o *Output) printHistory(games []GameSummary) {
	if len(games) == 0 {
		fmt.Println("No games played yet")
		return
	}
	fmt.Printf("History (%d games):\n", len(games))
	for _, g := range games {
		fmt.Printf("  %s  %6d pts  %3d lines  %s/%s\n",
			g.EndedAt.Format("2006-01-02 15:04"), g.Score, g.Lines, g.Difficulty, g.GameMode)
	}
}

func (o *Output) printSummary(g GameSummary) {
	fmt.Printf("Session: %s\n", g.SessionID)
	fmt.Printf("Score: %d\n", g.Score)
	fmt.Printf("Lines: %d\n", g.Lines)
	fmt.Printf("Difficulty: %s\n", g.Difficulty)
	fmt.Printf("Mode: %s\n", g.GameMode)
	if len(g.SpawnCounts) > 0 {
		kinds := make([]string, 0, len(g.SpawnCounts))
		for k := range g.SpawnCounts {
			kinds = append(kinds, k)
		}
		sort.Strings(kinds)
		parts := make([]string, 0, len(kinds))
		for _, k := range kinds {
			parts = append(parts, fmt.Sprintf("%s=%d", k, g.SpawnCounts[k]))
		}
		fmt.Printf("Pieces: %s\n", strings.Join(parts, " "))
	}
	fmt.Printf("Ended: %s\n", g.EndedAt.Format("2006-01-02 15:04:05"))
}

func (o *Output) printSnapshot(s Snapshot) {
	fmt.Printf("Session: %s (player %s)\n", s.SessionID, s.PlayerID)
	fmt.Printf("Difficulty: %s  Mode: %s  Track: %d\n", s.Options.Difficulty, s.Options.GameMode, s.Track)
	fmt.Printf("Score: %d  Lines: %d\n", s.Score, s.Lines)

	var flags []string
	if s.Paused {
		flags = append(flags, "paused")
	}
	if s.Panic {
		flags = append(flags, "panic")
	}
	if s.GameOver {
		flags = append(flags, "game over")
	}
	if s.Muted {
		flags = append(flags, "muted")
	}
	if len(flags) > 0 {
		fmt.Printf("Status: %s\n", strings.Join(flags, ", "))
	}

	if s.Next != nil {
		fmt.Printf("Next: %s\n", kindLetter(s.Next.Kind))
	}
	if s.Held != nil {
		fmt.Printf("Held: %s\n", kindLetter(s.Held.Kind))
	}

	o.printBoard(s.Board, s.Active)
}

func (o *Output) printBoard(b *Board, active *Piece) {
	if b == nil || len(b.Cells) == 0 {
		return
	}

	height := len(b.Cells)
	width := len(b.Cells[0])

	// Overlay the falling piece on top of locked cells
	overlay := map[[2]int]string{}
	if active != nil {
		for _, off := range active.Shape {
			x := active.Pos.X + off.X
			y := active.Pos.Y + off.Y
			if x >= 0 && x < width && y >= 0 && y < height {
				overlay[[2]int{x, y}] = kindLetter(active.Kind)
			}
		}
	}

	fmt.Print("+")
	fmt.Print(strings.Repeat("-", width*2))
	fmt.Println("+")

	for row := 0; row < height; row++ {
		fmt.Print("|")
		for col := 0; col < width; col++ {
			if letter, ok := overlay[[2]int{col, row}]; ok {
				fmt.Printf("%s ", letter)
			} else if cell := b.Cells[row][col]; cell != nil {
				fmt.Printf("%s ", kindLetter(cell.Kind))
			} else {
				fmt.Print(". ")
			}
		}
		fmt.Println("|")
	}

	fmt.Print("+")
	fmt.Print(strings.Repeat("-", width*2))
	fmt.Println("+")
}

func (o *Output) printScores(scores []HighScore) {
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet")
		return
	}
	fmt.Printf("Leaderboard (%d entries):\n", len(scores))
	for _, s := range scores {
		fmt.Printf("  %2d. %-20s %6d pts  %3d lines  %s\n",
			s.Rank, s.DisplayName, s.Score, s.Lines, s.GameMode)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
