package coach

import "strings"

// Quote is one entry of daily motivational content.
type Quote struct {
	Quote      string
	Philosophy string
	Tradition  string

	context string
}

// quoteCatalog holds the compiled-in wisdom library, keyed by tradition.
var quoteCatalog = map[string][]Quote{
	"esoteric": {
		{
			Quote:      "As above, so below; as within, so without. The microcosm reflects the macrocosm, and your daily rituals echo the movements of celestial spheres.",
			Philosophy: "The Hermetic axiom reveals that your personal practices are not isolated events but participations in universal law. When you complete your habits with awareness, you align your small orbit with the great cosmic cycles.",
			context:    "correspondence and cosmic alignment",
		},
		{
			Quote:      "The alchemist knows: it is not lead that becomes gold, but the alchemist who is transformed through the work.",
			Philosophy: "The Great Work is not about changing external matter but transmuting the self. Your habits are alchemical operations, each one refining the prima materia of your base nature into the philosophical gold of your higher self.",
			context:    "alchemical transformation",
		},
		{
			Quote:      "The fool sees obstacles; the initiate sees initiations. Every resistance in your path is a secret teaching veiled in difficulty.",
			Philosophy: "Esoteric tradition holds that challenges are intentional tests designed by the universe to catalyze growth. Your hardest habits are your greatest teachers; lean into the difficulty and extract the hidden wisdom.",
			context:    "obstacles as initiations",
		},
		{
			Quote:      "The lotus grows in mud. Darkness is not the absence of light but the womb from which illumination is born.",
			Philosophy: "Eastern esotericism reveals that purity emerges from impurity, enlightenment from ignorance. Your struggles and failures are not setbacks; they are the fertile soil from which your transcendence blooms.",
			context:    "growth through adversity",
		},
	},
	"stoic": {
		{
			Quote:      "The impediment to action advances action. What stands in the way becomes the way. - Marcus Aurelius",
			Philosophy: "Obstacles are not barriers to your path; they are the path itself. Your difficult habits teach more than easy ones. Resistance is the forge where character is tempered into steel.",
			context:    "obstacles as opportunities",
		},
		{
			Quote:      "You have power over your mind—not outside events. Realize this, and you will find strength. - Marcus Aurelius",
			Philosophy: "External circumstances are indifferent. Your habits cultivate the only thing truly in your control: your reasoned choice. Each practice session is sovereignty exercised, autonomy claimed.",
			context:    "internal control",
		},
		{
			Quote:      "Waste no more time arguing what a good man should be. Be one. - Marcus Aurelius",
			Philosophy: "Virtue is action, not theory. Your habits are philosophy made flesh. Stop deliberating about who you should become; become that person through what you do today.",
			context:    "action over contemplation",
		},
		{
			Quote:      "The whole future lies in uncertainty: live immediately. - Seneca",
			Philosophy: "Tomorrow is not promised. Your habit completed today is worth more than ten planned for tomorrow. Seize the present moment; it is the only time that truly exists.",
			context:    "present action",
		},
	},
	"samurai": {
		{
			Quote:      "The sword is sharpened through ten thousand repetitions. Mastery is not the absence of struggle, but its embrace through ceaseless refinement.",
			Philosophy: "A samurai's sword reflects their soul; both require constant polishing. Your habits are the whetstone against which your character is sharpened. Excellence emerges not from grand gestures but from the disciplined repetition of fundamentals.",
			context:    "mastery through repetition",
		},
		{
			Quote:      "There is nothing outside of yourself that can ever enable you to get better, stronger, richer, quicker, or smarter. Everything is within.",
			Philosophy: "This teaching from Miyamoto Musashi's Dokkōdō reveals the warrior's self-reliance. External tools and conditions are secondary to the cultivation of inner strength. Your discipline is not dependent on perfect circumstances; it creates them.",
			context:    "self-reliance and inner strength",
		},
		{
			Quote:      "Fall seven times, stand eight times. (七転び八起き) The samurai measures strength not by victories but by the will to rise.",
			Philosophy: "Resilience defines the warrior more than prowess. Your streak may break, your resolve may falter, but the true test is whether you return. Each return is a victory over the lesser self.",
			context:    "resilience and recovery",
		},
	},
	"eastern": {
		{
			Quote:      "Before enlightenment, chop wood, carry water. After enlightenment, chop wood, carry water.",
			Philosophy: "Spiritual attainment does not exempt you from daily practice; it transforms your relationship to it. Your mundane habits become sacred when performed with full presence.",
			context:    "sacred mundane",
		},
		{
			Quote:      "Sitting quietly, doing nothing, spring comes and the grass grows by itself. - Zen proverb",
			Philosophy: "Paradoxically, effortless achievement requires disciplined preparation. Your habits create the conditions for spontaneous growth. Master the fundamentals, then let nature take its course.",
			context:    "effortless action through preparation",
		},
		{
			Quote:      "The bamboo that bends is stronger than the oak that resists. Flexibility in your practice ensures its longevity.",
			Philosophy: "Rigid systems break. Your habit practice should be disciplined yet adaptable. Missing one day is not failure; refusing to return is. Bend with circumstances, then resume your true north.",
			context:    "adaptive resilience",
		},
	},
}

// DailyQuote picks a quote for the tradition, preferring one whose context
// matches the habit context when given. Unknown traditions fall back to the
// esoteric set.
func (f *Fallback) DailyQuote(tradition, habitContext, userName string) Quote {
	quotes, ok := quoteCatalog[tradition]
	if !ok {
		tradition = "esoteric"
		quotes = quoteCatalog[tradition]
	}

	pool := quotes
	if habitContext != "" {
		var matching []Quote
		for _, q := range quotes {
			if strings.Contains(q.context, strings.ToLower(habitContext)) {
				matching = append(matching, q)
			}
		}
		if len(matching) > 0 {
			pool = matching
		}
	}

	q := pool[f.rng.Intn(len(pool))]
	q.Tradition = tradition
	if userName != "" && userName != "Hunter" {
		q.Philosophy = userName + ", " + strings.ToLower(q.Philosophy[:1]) + q.Philosophy[1:]
	}
	return q
}
