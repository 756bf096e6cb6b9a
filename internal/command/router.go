// Package command classifies incoming chat messages against the bot's
// trigger phrases.
package command

import "strings"

// The routed command types. They carry no arguments; the trigger phrase
// is the whole command.
type (
	// Leaderboard requests the commit-streak leaderboard.
	Leaderboard struct{}
	// Dice requests a dice animation.
	Dice struct{}
	// Subscribers requests the channel subscriber-count commentary.
	Subscribers struct{}
	// Players requests the MakerKing online-player commentary.
	Players struct{}
	// Fallback is every addressed message that matched nothing else.
	Fallback struct{}
)

// A rule fires when every one of its trigger substrings is present.
type rule struct {
	command  interface{}
	triggers []string
}

// Router routes a message to at most one command. Messages that do not
// mention the bot are not commands at all. Rules are checked in order,
// first match wins, so the priority between overlapping triggers is the
// order of the rules slice.
type Router struct {
	mention string
	rules   []rule
}

func NewRouter(botName string) *Router {
	return &Router{
		mention: "@" + botName,
		rules: []rule{
			{command: Leaderboard{}, triggers: []string{"commit streak"}},
			{command: Dice{}, triggers: []string{"a dice"}},
			{command: Subscribers{}, triggers: []string{"cedric", "subscribers"}},
			{command: Players{}, triggers: []string{"makerking", "players"}},
		},
	}
}

// Route returns the command the message triggers, or nil when the
// message does not mention the bot. Trigger matching is case-insensitive;
// the mention is not.
func (r *Router) Route(text string) interface{} {
	if !strings.Contains(text, r.mention) {
		return nil
	}

	lowered := strings.ToLower(text)
	for _, rule := range r.rules {
		if containsAll(lowered, rule.triggers) {
			return rule.command
		}
	}

	return Fallback{}
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
