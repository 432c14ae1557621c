// Package content holds the app's read-only tables: recovery facts, journal
// templates, coping cards, literature excerpts, and meeting links. The core
// never validates or mutates any of it.
package content

import "math/rand"

// RecoveryFacts are short insights surfaced one at a time on the dashboard.
var RecoveryFacts = []string{
	"The Serenity Prayer was popularized by AA, but was originally written by theologian Reinhold Niebuhr.",
	"AA's Big Book was first published in 1939 and its core text (first 164 pages) remains unchanged.",
	"The 12 Traditions were developed to guide AA groups in their relationships with the world, not just to guide the individual.",
	"The motto 'Just for Today' is commonly used across many 12-Step fellowships to emphasize living in the present moment.",
	"The first Narcotics Anonymous meeting was held in Southern California in 1953.",
	"The concept of 'Higher Power' is intentionally non-religious and can be defined as 'God as we understood Him'.",
	"The opposite of addiction is often cited as connection, emphasizing the importance of fellowship.",
	"The 'HALT' acronym (Hungry, Angry, Lonely, Tired) is a fundamental tool for recognizing relapse triggers.",
	"The Step 4 inventory is 'searching and fearless' because admitting the 'exact nature' of wrongs releases their power.",
	"CA (Cocaine Anonymous) uses the same 12 Steps and 12 Traditions as AA.",
}

// RandomFact picks one insight at random.
func RandomFact() string {
	return RecoveryFacts[rand.Intn(len(RecoveryFacts))]
}

// WelcomeTip greets first-run users until they dismiss it.
const WelcomeTip = "Welcome. One day at a time: log how you feel with the journal, " +
	"set one small goal, and visit the workbook when you are ready to dig deeper."
