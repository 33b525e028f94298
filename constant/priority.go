package constant

// System priorities, lower runs first
// The tick order is a correctness requirement: throw must see the
// just-updated player position, ball physics must run after a release,
// dog AI must observe the ball state as physics left it
const (
	PriorityMovement    = 10
	PriorityThrow       = 20
	PriorityBallPhysics = 30
	PriorityDogAI       = 40
)
