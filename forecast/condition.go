package forecast

// Condition is a weather condition family with its display glyph
type Condition struct {
	Name  string
	Glyph string
}

var (
	Thunderstorm = Condition{Name: "thunderstorm", Glyph: "⚡"}
	Drizzle      = Condition{Name: "drizzle", Glyph: "🌦️"}
	Rain         = Condition{Name: "rain", Glyph: "🌨️"}
	Snow         = Condition{Name: "snow", Glyph: "❄️"}
	Atmosphere   = Condition{Name: "atmosphere", Glyph: "🌁"}
	Clear        = Condition{Name: "clear", Glyph: "☀️"}
	Clouds       = Condition{Name: "clouds", Glyph: "🌤️"}
	Unknown      = Condition{Name: "unknown", Glyph: "❔"}
)

type conditionRule struct {
	matches   func(id int) bool
	condition Condition
}

// between matches condition codes in [low, high]
func between(low, high int) func(int) bool {
	return func(id int) bool {
		return id >= low && id <= high
	}
}

func exactly(code int) func(int) bool {
	return func(id int) bool {
		return id == code
	}
}

// conditionRules is evaluated top to bottom and the first match wins.
// 800 must be tested before the 801-809 clouds family.
var conditionRules = []conditionRule{
	{between(200, 299), Thunderstorm},
	{between(300, 399), Drizzle},
	{between(500, 599), Rain},
	{between(600, 699), Snow},
	{between(700, 799), Atmosphere},
	{exactly(800), Clear},
	{between(801, 809), Clouds},
}

// Classify returns the condition family for an upstream condition code
func Classify(conditionID int) Condition {
	for _, rule := range conditionRules {
		if rule.matches(conditionID) {
			return rule.condition
		}
	}
	return Unknown
}

// Glyph returns the display glyph for an upstream condition code
func Glyph(conditionID int) string {
	return Classify(conditionID).Glyph
}
