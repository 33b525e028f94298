package constant

// Bootstrap defaults for the three world entities
const (
	PlayerSpeed  = 220.0
	PlayerRadius = 8.0
	PlayerColor  = 0x4FC3F7 // light blue

	DogSpeed  = 260.0
	DogRadius = 6.0
	DogColor  = 0xC8A165 // tan

	BallRadius = 3.0
	BallColor  = 0xFFD54F // yellow

	PlayerStartX = 400.0
	PlayerStartY = 300.0
	DogStartX    = 300.0
	DogStartY    = 350.0
)
