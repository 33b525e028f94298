package constant

// Throw tuning
const (
	// ChargeRate gives full charge in ~0.67s of held input
	ChargeRate = 1.5

	MinThrowSpeed = 150.0
	MaxThrowSpeed = 600.0

	// Carried-ball pin offsets, applied every tick while held
	PlayerHoldOffsetX = 14.0
	PlayerHoldOffsetY = -6.0
	DogHoldOffsetX    = 10.0
	DogHoldOffsetY    = -4.0
)

// Dog behavior tuning
const (
	// DogPickupRadius is the distance at which a loose ball is grabbed
	DogPickupRadius = 12.0

	// DogDeliverRadius is the distance to the player at which the ball
	// is handed over
	DogDeliverRadius = 24.0

	// DogWaitArriveRadius ends the backoff walk
	DogWaitArriveRadius = 6.0

	// DogBackoffDistance is how far from the player the dog waits
	DogBackoffDistance = 120.0

	// DogBackoffSpeedFactor slows the dog while backing off
	DogBackoffSpeedFactor = 0.7
)
