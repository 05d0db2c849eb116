package triage

// defaultRedFlags lists symptoms requiring immediate medical attention.
// Order matters: the first matching entry wins.
var defaultRedFlags = []Flag{
	{
		Category: "cardiac",
		Keywords: []string{"chest pain", "heart pain", "chest pressure", "chest tightness", "heart attack"},
		Severity: "critical",
		Message:  "**URGENT**: Chest pain can be life-threatening. Please go to the nearest emergency department NOW or call emergency services immediately.",
	},
	{
		Category: "respiratory",
		Keywords: []string{"severe breathlessness", "can't breathe", "choking", "gasping for air", "blue lips", "difficulty breathing severely"},
		Severity: "critical",
		Message:  "**URGENT**: Severe breathing difficulty is a medical emergency. Go to the nearest emergency department NOW or call emergency services.",
	},
	{
		Category: "neurological",
		Keywords: []string{"sudden weakness", "facial droop", "face drooping", "slurred speech", "can't speak", "stroke", "one side weak", "arm weakness sudden"},
		Severity: "critical",
		Message:  "**URGENT**: These symptoms suggest a possible stroke. Time is critical. Call emergency services IMMEDIATELY.",
	},
	{
		Category: "trauma",
		Keywords: []string{"severe bleeding", "heavy bleeding", "head injury", "hit my head", "blood won't stop", "bleeding profusely"},
		Severity: "critical",
		Message:  "**URGENT**: Severe bleeding or head injury requires immediate medical attention. Go to the emergency department NOW.",
	},
	{
		Category: "consciousness",
		Keywords: []string{"fainted", "fainting", "lost consciousness", "passed out", "seizure", "convulsion", "fitting"},
		Severity: "critical",
		Message:  "**URGENT**: Loss of consciousness or seizures require immediate evaluation. Go to the emergency department NOW.",
	},
	{
		Category: "fever_severe",
		Keywords: []string{"high fever 104", "fever 40", "fever 103", "fever with confusion", "fever and can't think", "rigors"},
		Severity: "critical",
		Message:  "**URGENT**: Very high fever (>39.5C/103F) with confusion or rigors needs immediate medical care. Go to emergency department NOW.",
	},
	{
		Category: "abdominal",
		Keywords: []string{"severe abdominal pain", "severe stomach pain", "vomiting blood", "black stool", "tarry stool", "bloody stool"},
		Severity: "critical",
		Message:  "**URGENT**: Severe abdominal pain with vomiting or blood in stool requires immediate medical attention. Go to emergency department NOW.",
	},
	{
		Category: "sepsis",
		Keywords: []string{"sepsis", "very high temperature", "confused and fever", "rapid breathing and fever", "cold and clammy"},
		Severity: "critical",
		Message:  "**URGENT**: Signs of sepsis are life-threatening. Go to the nearest emergency department IMMEDIATELY.",
	},
	{
		Category: "poisoning",
		Keywords: []string{"poisoning", "overdose", "swallowed poison", "took too many pills", "chemical ingestion"},
		Severity: "critical",
		Message:  "**URGENT**: Suspected poisoning or overdose is a medical emergency. Call emergency services or poison control IMMEDIATELY.",
	},
	{
		Category: "allergic",
		Keywords: []string{"face swelling", "lips swelling", "tongue swelling", "throat closing", "severe hives", "allergic reaction severe", "anaphylaxis"},
		Severity: "critical",
		Message:  "**URGENT**: Severe allergic reaction (anaphylaxis) can be life-threatening. Call emergency services IMMEDIATELY.",
	},
}

// defaultCautionFlags lists conditions where herbal or lifestyle advice
// needs a clinician's sign-off first
var defaultCautionFlags = []Flag{
	{
		Category: "pregnancy",
		Keywords: []string{"pregnant", "pregnancy", "expecting", "weeks pregnant", "months pregnant"},
		Severity: "caution",
		Message:  "**CAUTION**: You mentioned pregnancy. Please consult with your healthcare provider before trying any herbal remedies or significant lifestyle changes.",
	},
	{
		Category: "diabetes",
		Keywords: []string{"diabetic", "diabetes", "blood sugar", "insulin"},
		Severity: "caution",
		Message:  "**CAUTION**: You mentioned diabetes. Please consult your doctor before using herbal remedies as they may interact with your medications.",
	},
	{
		Category: "blood_thinners",
		Keywords: []string{"blood thinner", "warfarin", "anticoagulant", "coumadin"},
		Severity: "caution",
		Message:  "**CAUTION**: Blood thinners can interact with many herbs. Please consult your doctor before using any herbal remedies.",
	},
	{
		Category: "breastfeeding",
		Keywords: []string{"breastfeeding", "nursing", "breast feeding", "lactating"},
		Severity: "caution",
		Message:  "**CAUTION**: You mentioned breastfeeding. Please consult a healthcare provider before using herbal remedies.",
	},
	{
		Category: "pediatric",
		Keywords: []string{"my child", "my baby", "my son", "my daughter", "infant", "toddler", "kid"},
		Severity: "caution",
		Message:  "**CAUTION**: For children, please consult a pediatrician or qualified practitioner before trying remedies.",
	},
	{
		Category: "elderly",
		Keywords: []string{"elderly", "senior", "old age", "grandfather", "grandmother", "over 70", "over 80"},
		Severity: "caution",
		Message:  "**CAUTION**: Elderly individuals may have different sensitivities. Please consult a healthcare provider.",
	},
}

// symptomKeywords maps named symptoms to their trigger keywords
var symptomKeywords = []struct {
	name     string
	keywords []string
}{
	{"fever", []string{"fever", "temperature", "hot body"}},
	{"headache", []string{"headache", "head pain", "head hurts"}},
	{"cough", []string{"cough", "coughing"}},
	{"cold", []string{"cold", "runny nose", "sneezing"}},
	{"indigestion", []string{"indigestion", "acidity", "heartburn", "gas", "bloating"}},
	{"fatigue", []string{"tired", "fatigue", "exhausted", "weak", "no energy"}},
	{"insomnia", []string{"can't sleep", "insomnia", "sleep problem"}},
	{"anxiety", []string{"anxious", "anxiety", "worried", "stress"}},
	{"joint pain", []string{"joint pain", "arthritis", "joints hurt"}},
	{"skin", []string{"rash", "itching", "skin problem", "acne"}},
}

// healthKeywords gates the kitchen remedy tip: only messages touching one
// of these topics get a remedy appended
var healthKeywords = []string{
	"pain", "ache", "sick", "tired", "stress", "anxiety", "sleep", "digest",
	"cold", "cough", "fever", "headache", "nausea", "vomit", "diarrhea",
	"constipation", "bloat", "gas", "acid", "heartburn", "inflammation",
	"swelling", "joint", "muscle", "fatigue", "weak", "dizzy", "itchy",
	"rash", "allergy", "asthma", "breath", "wheez", "throat", "sore",
	"congestion", "sinus", "migraine", "insomnia", "depression", "mood",
	"energy", "weight", "appetite", "thirst", "urination", "menstrual",
	"period", "cramp", "hormone", "skin", "hair", "nail", "eye", "ear",
	"nose", "mouth", "teeth", "gum", "stomach", "liver", "kidney", "heart",
	"lung", "blood", "pressure", "sugar", "diabetes", "cholesterol",
	"immunity", "infection", "wound", "injury", "burn", "bruise", "sprain",
}
