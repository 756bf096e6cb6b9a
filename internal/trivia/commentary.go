package trivia

type subscriberBand struct {
	min  int64
	text string
}

// subscriberBands partitions the non-negative subscriber counts into
// ten bands, highest minimum first; the first band whose minimum the
// count reaches wins.
var subscriberBands = []subscriberBand{
	{1000000, "A MILLION. The boy has made it."},
	{500000, "Halfway to a million, the gold plaque is practically printing."},
	{200000, "That's a small city tuning in."},
	{100000, "Six figures! Silver play button territory."},
	{50000, "Big league numbers now."},
	{10000, "Five digits, the algorithm has taken notice."},
	{2000, "A solid little community."},
	{1500, "Momentum is building."},
	{1000, "Four digits! It's happening."},
	{0, "Everyone starts somewhere. Go subscribe!"},
}

// SubscriberCommentary maps a subscriber count to its band's commentary.
func SubscriberCommentary(count int64) string {
	for _, band := range subscriberBands {
		if count >= band.min {
			return band.text
		}
	}
	return subscriberBands[len(subscriberBands)-1].text
}

// playerBands maps exact online player counts 0 through 7 to their
// commentary; anything higher lands in playerBandOverflow.
var playerBands = []string{
	"Nobody online. The kingdom sleeps.",
	"One lonely soul jumping around.",
	"Two players. A duel!",
	"Three players, that's a party.",
	"Four players online. Getting busy in there.",
	"Five players! Prime time.",
	"Six players deep.",
	"Seven players, nearly a full lobby.",
}

const playerBandOverflow = "Eight or more players. MakerKing is popping off!"

// PlayerCommentary maps an online player count to its band's commentary.
func PlayerCommentary(count int) string {
	if count < 0 {
		count = 0
	}
	if count >= len(playerBands) {
		return playerBandOverflow
	}
	return playerBands[count]
}
