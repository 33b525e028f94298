package component

// DogState is the dog agent's behavior mode
type DogState uint8

const (
	DogIdle DogState = iota
	DogChasingBall
	DogReturningToPlayer
	DogBackingOff
)

func (s DogState) String() string {
	switch s {
	case DogIdle:
		return "idle"
	case DogChasingBall:
		return "chasing_ball"
	case DogReturningToPlayer:
		return "returning_to_player"
	case DogBackingOff:
		return "backing_off"
	}
	return "unknown"
}

// DogAIComponent drives one dog agent's state machine
// Excited is a global broadcast flag set while the player is winding up a
// throw; WaitX/WaitY is the backoff target computed on delivery
type DogAIComponent struct {
	State        DogState
	Speed        float64
	Excited      bool
	WaitX, WaitY float64
}
