package testutil

// File names used when fixtures are written to a temporary directory.
const (
	// FixtureName is the container file name written by WriteFixture.
	FixtureName = "level.epc"

	// EmptyName is an all-binary container with no strings at all.
	EmptyName = "empty.epc"
)
