// Package trigger decides whether an incoming message deserves a reply.
package trigger

import "regexp"

// Origin says where a message was posted.
type Origin int

const (
	// OriginDirect is a private one-to-one chat with the bot.
	OriginDirect Origin = iota
	// OriginGroup is any shared chat: group, supergroup or forum topic.
	OriginGroup
)

func (o Origin) String() string {
	switch o {
	case OriginDirect:
		return "direct"
	case OriginGroup:
		return "group"
	default:
		return "unknown"
	}
}

// IncomingMessage is the part of a chat message the trigger looks at.
type IncomingMessage struct {
	Text   string
	Origin Origin
}

// mention matches "creature" or "the creature" as a whole word in any case.
// A word is a run of Unicode letters, digits and underscores, so
// "creatures", "écreature" and "_creature" do not match while "Creature,"
// and "creature's" do.
var mention = regexp.MustCompile(`(?i)(?:^|[^\p{L}\p{N}_])(?:the\s+)?creature(?:[^\p{L}\p{N}_]|$)`)

// ShouldRespond reports whether the bot should answer msg. Direct messages
// with any text are always answered; group messages only when they mention
// the creature. Empty text is never answered.
func ShouldRespond(msg IncomingMessage) bool {
	if msg.Text == "" {
		return false
	}
	if msg.Origin == OriginDirect {
		return true
	}
	return mention.MatchString(msg.Text)
}
