package content

// CopingCard is one strategy for riding out a craving.
type CopingCard struct {
	Title       string
	Description string
	Category    string
}

var CopingCards = []CopingCard{
	{Title: "Deep Breathing", Description: "Inhale for 4s, hold for 7s, exhale for 8s. Repeat 3-5 times.", Category: "Grounding"},
	{Title: "5-4-3-2-1 Method", Description: "Name: 5 things you see, 4 you feel, 3 you hear, 2 you smell, 1 you taste.", Category: "Grounding"},
	{Title: "Go for a Walk", Description: "A 10-15 minute walk can change your scenery and mindset.", Category: "Action"},
	{Title: "Play the Tape Through", Description: "Think about the full consequences of giving in to a craving.", Category: "Cognitive"},
	{Title: "Call a Friend", Description: "Talk about what you're feeling with your support network.", Category: "Connection"},
	{Title: "Delay and Distract", Description: "Wait 15 minutes. Do something to distract yourself in that time.", Category: "Cognitive"},
}

// FindCopingCard matches a card by exact title.
func FindCopingCard(title string) (CopingCard, bool) {
	for _, card := range CopingCards {
		if card.Title == title {
			return card, true
		}
	}
	return CopingCard{}, false
}
