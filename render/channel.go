package render

// Channel names an on-screen text slot
type Channel uint8

const (
	ChannelScore   Channel = iota // HUD row 0
	ChannelLives                  // HUD row 1
	ChannelMessage                // Centered over the arena, may span lines
	channelCount
)

var channelNames = [channelCount]string{"score", "lives", "message"}

func (c Channel) String() string {
	if c >= channelCount {
		return "unknown"
	}
	return channelNames[c]
}
