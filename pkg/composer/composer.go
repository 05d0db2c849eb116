// Package composer assembles the personalized context block and the
// role-tagged message list sent to the language model. It renders what
// it is given and never reaches for storage or the clock itself.
package composer

import (
	"fmt"
	"strings"
	"time"

	"github.com/ayurscope/ayurscope/pkg/almanac"
	"github.com/ayurscope/ayurscope/pkg/domain"
	"github.com/ayurscope/ayurscope/pkg/guidance"
)

// historyLimit bounds how many prior exchanges are carried into the
// prompt, older ones are dropped, not summarized
const historyLimit = 5

// Input carries everything the composer may render. Optional fields are
// nil or empty and their sections are omitted.
type Input struct {
	Profile      domain.Profile
	SystemPrompt string // replaces the built-in system prompt when set
	Message      string
	Ritu         almanac.Ritu
	DayPart      almanac.DayPart
	Diet         *guidance.DietPlan
	Lifestyle    *guidance.LifestylePlan
	Traits       *guidance.Traits
	Signs        []guidance.SignMatch
	Symptoms     []domain.Symptom
	Vitals       *domain.Vitals
	History      []domain.Exchange
	Advisory     string // caution text, appended to the user turn only
	Articles     []domain.Article
	Now          time.Time
}

// ContextBlock renders the ordered context text. Missing optional
// sections are skipped, the numbered instruction list always closes
// the block.
func ContextBlock(in Input) string {
	var sb strings.Builder

	sb.WriteString("**Current Context:**\n\n")
	sb.WriteString(fmt.Sprintf("- Ritu (Season): %s\n", in.Ritu.Name))
	sb.WriteString(fmt.Sprintf("- Dominant Dosha This Season: %s\n", in.Ritu.Dosha))
	sb.WriteString(fmt.Sprintf("- Seasonal Advice: %s\n", in.Ritu.Advice))
	sb.WriteString(fmt.Sprintf("- Time of Day: %s - %s\n", in.DayPart.Period, in.DayPart.Advice))

	sb.WriteString("\n=== USER PROFILE ===\n")
	sb.WriteString(fmt.Sprintf("Name: %s\n", in.Profile.Name))
	if age := in.Profile.Age(in.Now); age > 0 {
		sb.WriteString(fmt.Sprintf("Age: %d years\n", age))
	}

	sb.WriteString("\nCONSTITUTION (Prakriti):\n")
	if in.Profile.Assessed {
		sb.WriteString(fmt.Sprintf("- Vata: %d%%\n", in.Profile.Scores.Vata))
		sb.WriteString(fmt.Sprintf("- Pitta: %d%%\n", in.Profile.Scores.Pitta))
		sb.WriteString(fmt.Sprintf("- Kapha: %d%%\n", in.Profile.Scores.Kapha))
		sb.WriteString(fmt.Sprintf("- Dominant Dosha: %s\n", in.Profile.Dominant))
	} else {
		sb.WriteString("- Status: Not yet assessed\n")
		sb.WriteString("IMPORTANT: User hasn't completed the constitution assessment. Provide general advice.\n")
		sb.WriteString("You can still help them, but personalized dosha-specific recommendations require the quiz.\n")
		sb.WriteString("Gently suggest they complete the assessment in their profile page.\n")
	}

	if in.Traits != nil {
		sb.WriteString(fmt.Sprintf("\nDOSHA CHARACTERISTICS (%s):\n", in.Profile.Dominant))
		sb.WriteString(fmt.Sprintf("- Elements: %s\n", strings.Join(in.Traits.Elements, " + ")))
		sb.WriteString(fmt.Sprintf("- Qualities: %s\n", in.Traits.Qualities))
		sb.WriteString(fmt.Sprintf("- Typical Traits: %s\n", strings.Join(firstN(in.Traits.PersonalityTraits, 3), ", ")))
	}

	if len(in.Signs) > 0 {
		sb.WriteString("\nDETECTED IMBALANCE SIGNS:\n")
		sb.WriteString(fmt.Sprintf("The user's message indicates potential %s imbalance:\n", in.Profile.Dominant))
		for _, s := range in.Signs {
			sb.WriteString(fmt.Sprintf("- %s (%s)\n", s.Sign, s.Type))
		}
		sb.WriteString("Consider addressing these in your response.\n")
	}

	if in.Diet != nil {
		sb.WriteString(fmt.Sprintf("\nDIETARY RECOMMENDATIONS FOR %s:\n", in.Profile.Dominant))
		sb.WriteString(fmt.Sprintf("Foods to Favor (%s):\n", in.Diet.Eat.Description))
		sb.WriteString(fmt.Sprintf("- Examples: %s\n", strings.Join(firstN(in.Diet.Eat.Examples, 8), ", ")))
		sb.WriteString(fmt.Sprintf("- Tastes: %s\n", strings.Join(in.Diet.Eat.Tastes, ", ")))
		sb.WriteString(fmt.Sprintf("- Temperature: %s\n", in.Diet.Eat.Temperature))
		sb.WriteString(fmt.Sprintf("\nFoods to Avoid (%s):\n", in.Diet.Avoid.Description))
		sb.WriteString(fmt.Sprintf("- Examples: %s\n", strings.Join(firstN(in.Diet.Avoid.Examples, 8), ", ")))
		sb.WriteString(fmt.Sprintf("- Tastes to Minimize: %s\n", strings.Join(in.Diet.Avoid.Tastes, ", ")))
		sb.WriteString("\nCooking Tips:\n")
		for _, tip := range firstN(in.Diet.CookingTips, 3) {
			sb.WriteString(fmt.Sprintf("- %s\n", tip))
		}
	}

	if in.Lifestyle != nil {
		sb.WriteString(fmt.Sprintf("\nLIFESTYLE RECOMMENDATIONS FOR %s:\n", in.Profile.Dominant))
		sb.WriteString("Daily Routine:\n")
		for _, r := range in.Lifestyle.Routine {
			sb.WriteString(fmt.Sprintf("- %s\n", r))
		}
		sb.WriteString("\nExercise:\n")
		for _, e := range firstN(in.Lifestyle.Exercise, 3) {
			sb.WriteString(fmt.Sprintf("- %s\n", e))
		}
		sb.WriteString("\nMental Health:\n")
		for _, m := range firstN(in.Lifestyle.MentalHealth, 3) {
			sb.WriteString(fmt.Sprintf("- %s\n", m))
		}
	}

	if len(in.Symptoms) > 0 {
		names := make([]string, len(in.Symptoms))
		for i, s := range in.Symptoms {
			names[i] = s.Name
		}
		sb.WriteString(fmt.Sprintf("\nCURRENT SYMPTOMS: %s\n", strings.Join(names, ", ")))
	}

	if in.Vitals != nil {
		sb.WriteString("\nVITALS:")
		if in.Vitals.Temperature > 0 {
			sb.WriteString(fmt.Sprintf(" Temp: %.1fC", in.Vitals.Temperature))
		}
		if in.Vitals.BloodPressure != "" {
			sb.WriteString(fmt.Sprintf(" BP: %s", in.Vitals.BloodPressure))
		}
		if in.Vitals.HeartRate > 0 {
			sb.WriteString(fmt.Sprintf(" HR: %dbpm", in.Vitals.HeartRate))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\nMEDICAL HISTORY:\n")
	sb.WriteString(fmt.Sprintf("- Medications: %s\n", joinOrNone(in.Profile.Medical.Medications)))
	sb.WriteString(fmt.Sprintf("- Allergies: %s\n", joinOrNone(in.Profile.Medical.Allergies)))
	sb.WriteString(fmt.Sprintf("- Chronic Conditions: %s\n", joinOrNone(in.Profile.Medical.ChronicConditions)))

	history := recentHistory(in.History)
	if len(history) > 0 {
		sb.WriteString(fmt.Sprintf("\nCONVERSATION HISTORY (Last %d consultations):\n", len(history)))
		for i, h := range history {
			sb.WriteString(fmt.Sprintf("%d. [%s] User: %q\n", i+1, h.Date.Format("2006-01-02"), h.UserSaid))
			sb.WriteString(fmt.Sprintf("   Response: %s\n", h.Reply))
			sb.WriteString(fmt.Sprintf("   Triage: %s\n", h.Triage))
		}
	} else {
		sb.WriteString("\nThis is the user's FIRST consultation - introduce yourself warmly and build rapport!\n")
	}

	sb.WriteString(fmt.Sprintf("\nCURRENT RITU (Ayurvedic Season): %s\n", in.Ritu.Name))
	sb.WriteString(fmt.Sprintf("- Dominant Dosha: %s\n", in.Ritu.Dosha))
	sb.WriteString(fmt.Sprintf("- Qualities: %s\n", in.Ritu.Qualities))
	sb.WriteString(fmt.Sprintf("- Recommended Foods: %s\n", in.Ritu.Foods))
	sb.WriteString(fmt.Sprintf("- Lifestyle Advice: %s\n", in.Ritu.Lifestyle))

	sb.WriteString(fmt.Sprintf("\nCURRENT TIME PERIOD (Dinacharya): %s\n", in.DayPart.Period))
	sb.WriteString(fmt.Sprintf("- Dominant Dosha: %s\n", in.DayPart.Dosha))
	sb.WriteString(fmt.Sprintf("- Advice: %s\n", in.DayPart.Advice))

	if len(in.Articles) > 0 {
		sb.WriteString("\n**Available Knowledge Articles:**\n")
		for _, a := range firstNArticles(in.Articles, 5) {
			sb.WriteString(fmt.Sprintf("- [%d] %s\n", a.ID, a.Title))
		}
	}

	sb.WriteString("\nINSTRUCTIONS FOR THIS RESPONSE:\n")
	sb.WriteString(fmt.Sprintf("1. Address user by name (%s)\n", in.Profile.Name))
	sb.WriteString(fmt.Sprintf("2. Reference their constitution (%s-dominant) in your advice\n", dominantOrUnassessed(in.Profile)))
	sb.WriteString("3. Use the dietary recommendations above - suggest specific foods they should eat/avoid\n")
	sb.WriteString("4. Incorporate lifestyle tips naturally\n")
	sb.WriteString("5. Consider their conversation history - mention if this is a follow-up concern\n")
	sb.WriteString("6. If they mentioned symptoms before, ask about progress\n")
	sb.WriteString("7. Be conversational and warm - this is a CHAT, not a medical report\n")
	sb.WriteString("8. Ask follow-up questions to understand better\n")
	sb.WriteString("9. When giving diet advice, mention 2-3 specific foods to favor and 1-2 to avoid\n")
	sb.WriteString("10. Track improvements or concerns from previous conversations\n")
	if !in.Profile.Assessed {
		sb.WriteString("11. PRIORITY: Ask questions to assess their constitution if they seem open to it\n")
	}
	if len(in.Signs) > 0 {
		sb.WriteString("12. Address the detected imbalance signs in your response\n")
	}

	return sb.String()
}

// Turns builds the message list for the model: system context first,
// alternating prior user/assistant turns, then the current user message.
// Caution advisories ride on the user turn, never on the context.
func Turns(in Input) []domain.Turn {
	prompt := systemPrompt
	if in.SystemPrompt != "" {
		prompt = in.SystemPrompt
	}

	turns := make([]domain.Turn, 0, 2*historyLimit+2)
	turns = append(turns, domain.Turn{
		Role:    domain.RoleSystem,
		Content: prompt + "\n\n" + ContextBlock(in),
	})

	for _, h := range recentHistory(in.History) {
		turns = append(turns,
			domain.Turn{Role: domain.RoleUser, Content: h.UserSaid},
			domain.Turn{Role: domain.RoleAssistant, Content: h.Reply},
		)
	}

	current := in.Message
	if in.Advisory != "" {
		current += "\n\n" + in.Advisory
	}
	return append(turns, domain.Turn{Role: domain.RoleUser, Content: current})
}

func recentHistory(history []domain.Exchange) []domain.Exchange {
	if len(history) > historyLimit {
		return history[len(history)-historyLimit:]
	}
	return history
}

func dominantOrUnassessed(p domain.Profile) string {
	if p.Assessed && p.Dominant != "" {
		return p.Dominant
	}
	return "not yet assessed"
}

func firstN(items []string, n int) []string {
	if len(items) > n {
		return items[:n]
	}
	return items
}

func firstNArticles(articles []domain.Article, n int) []domain.Article {
	if len(articles) > n {
		return articles[:n]
	}
	return articles
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}
