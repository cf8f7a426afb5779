package system

// Event is a discrete input event delivered to the game state,
// as opposed to keys held down, which are polled every frame.
type Event interface {
	isEvent()
}

// KeyPressed is sent once when a key goes down
type KeyPressed struct {
	Key Key
}

func (KeyPressed) isEvent() {}
