// Package replay records and plays back the keyboard input of a session.
package replay

import "github.com/younwookim/pong/internal/application/system"

// Version is written into every recording
const Version = "1.0"

// FrameInput records input state for a single host tick
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	W  bool `json:"w,omitempty"`  // Player 1 up held
	S  bool `json:"s,omitempty"`  // Player 1 down held
	U  bool `json:"u,omitempty"`  // Player 2 up held
	D  bool `json:"d,omitempty"`  // Player 2 down held
	P  bool `json:"p,omitempty"`  // Pause pressed
	N  bool `json:"n,omitempty"`  // Start normal pressed
	H  bool `json:"h,omitempty"`  // Start hard pressed
	BS bool `json:"bs,omitempty"` // Main menu pressed
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput captures in as frame f. Quit is not recorded; a replay
// quits when it runs out of frames.
func NewFrameInput(f int, in system.InputState) FrameInput {
	return FrameInput{
		F:  f,
		W:  in.P1Up,
		S:  in.P1Down,
		U:  in.P2Up,
		D:  in.P2Down,
		P:  in.Pause,
		N:  in.StartNormal,
		H:  in.StartHard,
		BS: in.Menu,
	}
}

// Input converts the frame back to an input state
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		P1Up:        fi.W,
		P1Down:      fi.S,
		P2Up:        fi.U,
		P2Down:      fi.D,
		Pause:       fi.P,
		StartNormal: fi.N,
		StartHard:   fi.H,
		Menu:        fi.BS,
	}
}
