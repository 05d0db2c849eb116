// Package almanac resolves the ayurvedic temporal context: the seasonal
// cycle (ritucharya) from the calendar month and the daily cycle
// (dinacharya) from the hour. All lookups are pure functions of the
// passed time, callers inject time.Now() at the edge.
package almanac

import "time"

// Ritu is one of the six ayurvedic seasons with its regimen
type Ritu struct {
	Name        string
	Months      [2]time.Month
	Dosha       string
	Qualities   string
	Description string
	Advice      string
	Foods       string
	Lifestyle   string
	Tips        string
}

// DayPart is one of the six four-hour segments of the daily dosha clock
type DayPart struct {
	Period string
	Dosha  string
	Advice string
}

var ritus = []Ritu{
	{
		Name:        "Shishira (Late Winter)",
		Months:      [2]time.Month{time.January, time.February},
		Dosha:       "Vata and Kapha",
		Qualities:   "Very cold, dry, harsh winds",
		Description: "Late winter peak cold aggravates Vata with dryness and Kapha with cold",
		Advice:      "Warm oils; sweet, sour tastes; protect from cold; maintain body heat",
		Foods:       "Favor: Warm soups, ghee, oils, hot spices, jaggery, dates. Avoid: Cold, raw, light foods",
		Lifestyle:   "Heavy oil massage, warm clothing, avoid cold wind, hot water baths, warm drinks all day",
		Tips:        "Protect from cold, use warm oils, drink hot beverages throughout the day",
	},
	{
		Name:        "Vasanta (Spring)",
		Months:      [2]time.Month{time.March, time.April},
		Dosha:       "Kapha",
		Qualities:   "Warm, moist, accumulation of Kapha",
		Description: "Spring melts accumulated Kapha from winter, causing congestion and sluggishness",
		Advice:      "Light, dry foods; bitter and astringent tastes; increase exercise; detox practices",
		Foods:       "Favor: Barley, honey, ginger, bitter greens, legumes. Avoid: Heavy, oily, sweet, dairy",
		Lifestyle:   "Wake early, increase physical activity, dry massage (no oil), use warming spices",
		Tips:        "Avoid spicy foods, increase hydration, prefer moonlight walks",
	},
	{
		Name:        "Grishma (Summer)",
		Months:      [2]time.Month{time.May, time.June},
		Dosha:       "Pitta",
		Qualities:   "Hot, dry, intense sun depletes body fluids",
		Description: "Summer heat aggravates Pitta, causing inflammation and dehydration",
		Advice:      "Cooling foods; sweet, bitter tastes; avoid spicy; moonlight walks; afternoon rest",
		Foods:       "Favor: Coconut, cucumber, watermelon, rice, ghee, sweet fruits. Avoid: Chilies, sour, alcohol",
		Lifestyle:   "Stay hydrated, wear light clothes, swim, avoid midday sun, use cooling oils like coconut",
		Tips:        "Avoid spicy foods, increase hydration, prefer moonlight walks",
	},
	{
		Name:        "Varsha (Monsoon)",
		Months:      [2]time.Month{time.July, time.August},
		Dosha:       "Vata",
		Qualities:   "Humid, cloudy, weakens digestion",
		Description: "Monsoon dampness weakens Agni and aggravates Vata, causing digestive issues",
		Advice:      "Warm, easily digestible foods; boost Agni; avoid raw foods; stay dry",
		Foods:       "Favor: Soups, ginger tea, cooked grains, ghee, warming spices. Avoid: Raw salads, cold drinks",
		Lifestyle:   "Keep warm, daily oil massage, avoid dampness, drink warm water, eat only warm meals",
		Tips:        "Keep digestive fire strong, avoid cold foods, stay warm and dry",
	},
	{
		Name:        "Sharad (Autumn)",
		Months:      [2]time.Month{time.September, time.October},
		Dosha:       "Pitta",
		Qualities:   "Transition season, accumulated Pitta releases",
		Description: "Autumn's sudden heat after monsoon releases accumulated Pitta, causing inflammation",
		Advice:      "Bitter herbs; cooling regimen; avoid heating foods; ghee therapy",
		Foods:       "Favor: Sweet fruits, rice, milk, ghee, bitter vegetables. Avoid: Spicy, fermented, fried",
		Lifestyle:   "Purgation therapy (if needed), cooling pranayama, avoid excessive heat, evening walks",
		Tips:        "Cool down Pitta, avoid heating foods, practice calming routines",
	},
	{
		Name:        "Hemanta (Early Winter)",
		Months:      [2]time.Month{time.November, time.December},
		Dosha:       "Kapha building",
		Qualities:   "Cold, dry, strong digestive fire",
		Description: "Early winter strengthens Agni, body needs nourishment to build immunity",
		Advice:      "Nourishing, heavier foods; build strength; sweet, sour, salty tastes",
		Foods:       "Favor: Nuts, sesame, jaggery, root vegetables, warm milk, ghee. Avoid: Light, cold, dry",
		Lifestyle:   "Oil massage, warm baths, moderate exercise, nourishing diet, build Ojas",
		Tips:        "Build strength and immunity, eat nourishing foods, keep warm",
	},
}

// CurrentRitu maps the month of t to its season. Every month belongs to
// exactly one ritu so the lookup cannot fail.
func CurrentRitu(t time.Time) Ritu {
	month := t.Month()
	for _, r := range ritus {
		if r.Months[0] == month || r.Months[1] == month {
			return r
		}
	}
	return ritus[0] // unreachable, all 12 months are covered
}

// CurrentDayPart maps the hour of t to its segment of the dosha clock.
// The night segment spans midnight (22:00 to 02:00).
func CurrentDayPart(t time.Time) DayPart {
	hour := t.Hour()
	switch {
	case hour >= 6 && hour < 10:
		return DayPart{
			Period: "Kapha time (Morning)",
			Dosha:  "Kapha",
			Advice: "Best time for exercise, yoga, meditation. Avoid heavy breakfast.",
		}
	case hour >= 10 && hour < 14:
		return DayPart{
			Period: "Pitta time (Midday)",
			Dosha:  "Pitta",
			Advice: "Peak digestive fire. Eat your largest meal now. Good for mental work.",
		}
	case hour >= 14 && hour < 18:
		return DayPart{
			Period: "Vata time (Afternoon)",
			Dosha:  "Vata",
			Advice: "Creativity peaks. Light snack if needed. Good for communication.",
		}
	case hour >= 18 && hour < 22:
		return DayPart{
			Period: "Kapha time (Evening)",
			Dosha:  "Kapha",
			Advice: "Wind down. Light dinner before sunset. Gentle activities. Prepare for sleep.",
		}
	case hour >= 22 || hour < 2:
		return DayPart{
			Period: "Pitta time (Night)",
			Dosha:  "Pitta",
			Advice: "Body's repair time. Should be asleep. Liver detoxification occurs.",
		}
	default:
		return DayPart{
			Period: "Vata time (Pre-dawn)",
			Dosha:  "Vata",
			Advice: "Best time to wake (Brahma Muhurta). Meditation, spiritual practices.",
		}
	}
}
