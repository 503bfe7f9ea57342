package valueobjects

// Platform is the game edition an applicant plays on.
type Platform string

const (
	PlatformJava    Platform = "java"
	PlatformBedrock Platform = "bedrock"
	PlatformBoth    Platform = "both"
)

var validPlatforms = map[Platform]bool{
	PlatformJava:    true,
	PlatformBedrock: true,
	PlatformBoth:    true,
}

func (p Platform) IsValid() bool {
	return validPlatforms[p]
}

func (p Platform) IncludesJava() bool {
	return p == PlatformJava || p == PlatformBoth
}

func (p Platform) IncludesBedrock() bool {
	return p == PlatformBedrock || p == PlatformBoth
}

func (p Platform) String() string {
	return string(p)
}
