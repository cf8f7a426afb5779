package state

// Mode is the current mode of a match, derived from the game state flags
type Mode int

const (
	ModeMainMenu Mode = iota
	ModePlaying
	ModePaused
	ModeRoundOver
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeMainMenu:
		return "MainMenu"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeRoundOver:
		return "RoundOver"
	default:
		return "Unknown"
	}
}

// Difficulty selects ball and paddle speeds for a round
type Difficulty int

const (
	DifficultyNormal Difficulty = iota
	DifficultyHard
)

// String returns the string representation of the difficulty
func (d Difficulty) String() string {
	switch d {
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	default:
		return "Unknown"
	}
}
