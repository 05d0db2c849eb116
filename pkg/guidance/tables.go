package guidance

var dietPlans = map[string]DietPlan{
	"vata": {
		Eat: FoodGuide{
			Description: "warm, moist, and soft foods",
			Examples: []string{
				"berries", "bananas", "peaches",
				"cooked vegetables", "oats", "brown rice",
				"lean meat", "eggs", "dairy",
				"sweet potatoes", "avocados", "nuts (soaked)",
				"warm soups", "stews", "cooked grains",
			},
			Tastes:      []string{"sweet", "sour", "salty"},
			Temperature: "warm to hot",
			Texture:     "moist, soft, grounding",
		},
		Avoid: FoodGuide{
			Description: "bitter, dried, and cold foods",
			Examples: []string{
				"raw vegetables", "cold desserts", "dried fruit",
				"nuts (raw/dry)", "seeds (dry)", "crackers",
				"cold drinks", "iced foods", "raw salads",
				"beans (without proper preparation)", "caffeine in excess",
			},
			Tastes:      []string{"bitter", "pungent", "astringent"},
			Temperature: "cold, frozen",
			Texture:     "dry, rough, hard",
		},
		Beverages: BeverageGuide{
			Recommended: []string{"warm water", "herbal teas (ginger, cinnamon)", "warm milk with spices", "bone broth"},
			Avoid:       []string{"iced drinks", "carbonated beverages", "excessive coffee", "alcohol"},
		},
		CookingTips: []string{
			"Use generous amounts of ghee or high-quality oils",
			"Add warming spices: ginger, black pepper, cinnamon, cumin",
			"Cook vegetables well - avoid raw",
			"Prefer warm, freshly prepared meals",
			"Eat at regular times",
		},
	},
	"pitta": {
		Eat: FoodGuide{
			Description: "light, cold, sweet, and energizing foods",
			Examples: []string{
				"most fruits (sweet fruits)", "non-starchy vegetables",
				"oats", "eggs", "basmati rice", "quinoa",
				"coconut", "cucumbers", "melons", "leafy greens",
				"milk", "ghee", "sweet lassi", "cilantro",
			},
			Tastes:      []string{"sweet", "bitter", "astringent"},
			Temperature: "cool to room temperature",
			Texture:     "light, moist, cooling",
		},
		Avoid: FoodGuide{
			Description: "heavy, spicy, and sour foods",
			Examples: []string{
				"red meat", "potatoes (in excess)", "hot spices",
				"tomatoes", "citrus fruits", "vinegar",
				"fermented foods", "alcohol", "caffeine",
				"fried foods", "salty snacks", "sour cream",
			},
			Tastes:      []string{"sour", "pungent", "salty"},
			Temperature: "very hot, spicy",
			Texture:     "heavy, oily, fried",
		},
		Beverages: BeverageGuide{
			Recommended: []string{"cool (not iced) water", "coconut water", "mint tea", "rose water", "sweet lassi"},
			Avoid:       []string{"alcohol", "coffee", "sour drinks", "hot spicy drinks"},
		},
		CookingTips: []string{
			"Use cooling spices: coriander, fennel, cardamom, mint",
			"Use ghee in moderation",
			"Avoid deep frying - prefer steaming, boiling",
			"Drink 4-5 liters of room temperature water daily",
			"Eat in a peaceful environment",
		},
	},
	"kapha": {
		Eat: FoodGuide{
			Description: "spicy, acidic, and filling foods",
			Examples: []string{
				"most fruits and vegetables", "whole grains",
				"eggs", "low-fat cheese", "unprocessed meats",
				"hot spices", "leafy greens", "apples", "pears",
				"barley", "buckwheat", "millet", "legumes",
				"ginger tea", "bitter vegetables",
			},
			Tastes:      []string{"pungent", "bitter", "astringent"},
			Temperature: "warm to hot",
			Texture:     "light, dry, stimulating",
		},
		Avoid: FoodGuide{
			Description: "heavy, fatty foods",
			Examples: []string{
				"excessive fats and oils", "processed foods",
				"nuts (in excess)", "seeds (in excess)",
				"heavy dairy (cheese, ice cream)", "fried foods",
				"sweet desserts", "bread (white)", "pasta",
				"bananas", "avocados", "coconut",
			},
			Tastes:      []string{"sweet", "sour", "salty"},
			Temperature: "cold, iced",
			Texture:     "heavy, oily, dense",
		},
		Beverages: BeverageGuide{
			Recommended: []string{"warm water", "ginger tea", "black tea", "herbal teas (stimulating)", "warm lemon water"},
			Avoid:       []string{"cold drinks", "dairy-based drinks", "sweet juices", "alcohol in excess"},
		},
		CookingTips: []string{
			"Use minimal oil - prefer dry cooking methods",
			"Add pungent spices: ginger, black pepper, cayenne, mustard",
			"Eat light, dry, warm foods",
			"Avoid heavy, creamy sauces",
			"Eat smaller, lighter meals",
		},
	},
}

var lifestylePlans = map[string]LifestylePlan{
	"vata": {
		Routine: []string{
			"Get to bed before 10:00 pm and rise by 6:00 am",
			"Maintain a daily routine (dinacharya) with regular times for eating, sleeping, and working",
			"Keep a consistent schedule - Vata thrives on routine",
		},
		Exercise: []string{
			"Gentle, grounding exercises like yoga, walking, tai chi",
			"Avoid excessive, vigorous exercise",
			"Practice restorative yoga poses",
			"Swimming in warm water",
		},
		MentalHealth: []string{
			"Practice meditation daily - especially Sahaj Samadhi meditation",
			"Oil massage (abhyanga) with warm sesame oil",
			"Avoid overstimulation - limit screen time",
			"Create a calm, peaceful environment",
			"Practice deep breathing exercises",
		},
		Environment: []string{
			"Prefer warm, moist climates",
			"Avoid cold, windy, dry weather",
			"Keep your living space warm and cozy",
			"Use warm colors in your surroundings",
		},
		Remedies: []string{
			"Vata-reducing herbs: Ashwagandha, Brahmi, Shatavari",
			"Warm oil massage before bathing",
			"Use warming essential oils: ginger, cinnamon, orange",
			"Practice Pranayama (breathing exercises)",
		},
	},
	"pitta": {
		Routine: []string{
			"Maintain regular meal times and avoid skipping meals",
			"Follow a daily routine (dinacharya)",
			"Avoid working late into the night",
			"Take breaks during work to cool down",
		},
		Exercise: []string{
			"Moderate exercise - avoid competitive sports",
			"Swimming, walking in nature, gentle yoga",
			"Exercise during cooler parts of the day (morning or evening)",
			"Avoid exercising in hot sun",
		},
		MentalHealth: []string{
			"Meditation twice daily - crucial for anger management",
			"Sahaj Samadhi meditation helps significantly",
			"Practice forgiveness and letting go",
			"Spend time in nature - walk by water, moon gazing",
			"Cultivate patience and compassion",
		},
		Environment: []string{
			"Prefer cool, shaded environments",
			"Avoid excessive heat and sun exposure",
			"Keep company with calm, positive people",
			"Use cooling colors: blues, greens, whites",
		},
		Remedies: []string{
			"Pitta-reducing herbs: Neem, Aloe Vera, Sandalwood",
			"Cooling massage oils: coconut oil",
			"Use cooling essential oils: rose, jasmine, lavender",
			"Moderately difficult yogasanas for detoxification",
		},
	},
	"kapha": {
		Routine: []string{
			"Wake up early - before 6:00 am",
			"Avoid daytime sleep which increases Kapha",
			"Stay active throughout the day",
			"Don't skip meals but eat lighter portions",
		},
		Exercise: []string{
			"Vigorous, stimulating exercise is essential",
			"Running, aerobics, dynamic yoga, dancing",
			"Exercise daily - even if you don't feel like it",
			"Challenge yourself physically",
		},
		MentalHealth: []string{
			"Practice energizing Pranayama (breathing exercises)",
			"Meditation to avoid lethargy and depression",
			"Seek new experiences and adventures",
			"Avoid excessive sleep",
			"Stay socially engaged",
		},
		Environment: []string{
			"Prefer warm, dry climates",
			"Avoid cold, damp environments",
			"Keep your living space bright and airy",
			"Use stimulating colors: reds, oranges, yellows",
		},
		Remedies: []string{
			"Kapha-reducing herbs: Trikatu, Guggulu, Turmeric",
			"Dry massage (garshana) with silk gloves",
			"Use stimulating essential oils: eucalyptus, rosemary, basil",
			"Regular yoga practice to keep energy high",
		},
	},
}

var imbalanceSigns = map[string]ImbalanceSigns{
	"vata": {
		Physical: []string{
			"Dryness and roughness of skin",
			"Too much weight loss or emaciation",
			"Irregular bowel movement or constipation",
			"Pain in bones and joints",
			"Flatulence",
			"Abnormal pulse rate",
			"Palpitations",
			"Cracking joints",
			"Dry, brittle hair and nails",
		},
		Mental: []string{
			"Fear and anxiety",
			"Restlessness",
			"Insomnia",
			"Difficulty concentrating",
			"Nervousness",
			"Feeling ungrounded",
		},
		Diseases: []string{
			"Insomnia", "Headaches", "Tinnitus",
			"Loose teeth", "Facial paralysis",
			"Acute stress", "Tremors", "Earache",
			"Sciatica", "Muscle cramps",
			"Arthritis", "Chronic constipation",
		},
	},
	"pitta": {
		Physical: []string{
			"Excessive body heat",
			"Yellow coloration of skin",
			"Burning sensation",
			"Excessive thirst and hunger",
			"Reduced sleep",
			"Bad breath",
			"Hot flashes",
			"Skin rashes or inflammation",
			"Premature greying or hair loss",
		},
		Mental: []string{
			"Increased anger and irritability",
			"Tendency toward perfectionism",
			"Impatience",
			"Critical thinking",
			"Frustration",
			"Dissatisfaction",
		},
		Diseases: []string{
			"Peptic ulcers", "Acid reflux",
			"Skin disorders (eczema, psoriasis)",
			"Migraines", "Conjunctivitis",
			"Jaundice", "Inflammation disorders",
			"Tendonitis", "Fibromyalgia",
			"Low blood sugar", "Hypertension",
		},
	},
	"kapha": {
		Physical: []string{
			"Drowsiness and lethargy",
			"Obesity or difficulty losing weight",
			"Loss of appetite",
			"Sweet taste in mouth",
			"Excessive mucus or congestion",
			"Cough and respiratory issues",
			"Hardening of blood vessels",
			"Heaviness in body",
			"Slow digestion",
		},
		Mental: []string{
			"Depression",
			"Lethargy and inertia",
			"Resistance to change",
			"Attachment and greed",
			"Stubbornness",
			"Lack of motivation",
		},
		Diseases: []string{
			"Sinusitis", "Bronchitis",
			"Asthma", "Diabetes",
			"High cholesterol", "Goiter",
			"Edema (water retention)",
			"Joint disorders", "Sleep apnea",
			"Hypothyroidism",
		},
	},
}

var doshaTraits = map[string]Traits{
	"vata": {
		Elements:  []string{"Air", "Ether/Space"},
		Location:  "Abdomen below navel, colon, pelvis, thighs, skin, ears, nervous system, lungs",
		Qualities: "Light, dry, cold, rough, subtle, mobile, clear",
		BodyType:  "Thin, light frame, prominent joints, difficulty gaining weight",
		PhysicalTraits: []string{
			"Thin build with low body weight",
			"Dry skin and brittle nails",
			"Thin, dry hair",
			"Small, slightly sunken eyes",
			"Joints make sounds when walking",
			"Difficulty gaining weight",
			"Irregular appetite",
		},
		PersonalityTraits: []string{
			"Talkative and restless",
			"Creative and enthusiastic",
			"Quick to learn but also quick to forget",
			"Adaptable and flexible",
			"Energetic in bursts",
			"Tends toward anxiety when imbalanced",
		},
		Functions: "Responsible for all movement in body and mind, breath, circulation, elimination, speech, nervous system impulses",
	},
	"pitta": {
		Elements:  []string{"Fire", "Water"},
		Location:  "Small intestine, stomach, liver, spleen, gallbladder, blood, sweat glands, eyes, skin",
		Qualities: "Hot, sharp, light, oily, liquid, spreading",
		BodyType:  "Medium build, athletic, moderate weight",
		PhysicalTraits: []string{
			"Medium build and moderate weight",
			"Warm body temperature",
			"Sharp facial features and bright eyes",
			"Soft, oily, warm skin with rosy complexion",
			"Pink nails with slight curve",
			"Prone to early greying or hair loss",
			"Strong appetite and good digestion",
			"Sharp, penetrating eyes (sometimes pinkish)",
		},
		PersonalityTraits: []string{
			"Intelligent and sharp-minded",
			"Natural leaders and perfectionists",
			"Goal-oriented and competitive",
			"Courageous and confident",
			"Good public speakers",
			"Tends toward anger and irritability when imbalanced",
		},
		Functions: "Governs digestion, metabolism, body heat, absorption, assimilation, nutrition, understanding, intelligence",
	},
	"kapha": {
		Elements:  []string{"Water", "Earth"},
		Location:  "Chest, throat, head, sinuses, nose, mouth, stomach, joints, plasma, lymph",
		Qualities: "Heavy, slow, cool, oily, smooth, dense, soft, stable",
		BodyType:  "Stocky, strong build, tendency to gain weight easily",
		PhysicalTraits: []string{
			"Thick, sturdy build with large frame",
			"Thick, dark, lustrous hair",
			"Big, beautiful eyes with white prominent",
			"Thick, moist, cool skin",
			"Prominent, white, shiny teeth",
			"Strong bones and muscles",
			"Slow but steady appetite",
			"Gains weight easily, loses slowly",
		},
		PersonalityTraits: []string{
			"Calm, peaceful, and cheerful",
			"Loving, compassionate, forgiving",
			"Patient and tolerant",
			"Methodical and steady",
			"Excellent memory (slow to learn but retains well)",
			"Tends toward lethargy and attachment when imbalanced",
		},
		Functions: "Provides structure and lubrication, maintains immunity, moisturizes skin, lubricates joints, stability in body and mind",
	},
}

// remedyGroups are scanned in order, the first keyword hit selects the group
var remedyGroups = []struct {
	name     string
	keywords []string
	remedies []Remedy
}{
	{
		name:     "weak_digestion",
		keywords: []string{"digest", "bloat", "gas"},
		remedies: []Remedy{
			{Herb: "Ginger", Form: "Fresh ginger tea", Dosha: "Kindles Agni (all doshas)", Rationale: "Stimulates digestive fire without aggravating Pitta when fresh"},
			{Herb: "Cumin", Form: "½ tsp cumin powder in warm water", Dosha: "Balances all doshas", Rationale: "Enhances absorption, reduces bloating, supports gut health"},
			{Herb: "Fennel", Form: "Fennel seed tea after meals", Dosha: "Calms Pitta", Rationale: "Cooling digestive aid, reduces acidity and gas"},
		},
	},
	{
		name:     "constipation",
		keywords: []string{"constipat", "bowel"},
		remedies: []Remedy{
			{Herb: "Warm water", Form: "1 glass warm water upon waking", Dosha: "Pacifies Vata", Rationale: "Hydrates colon, stimulates peristalsis, flushes Ama"},
			{Herb: "Ghee", Form: "1 tsp ghee in warm milk at bedtime", Dosha: "Lubricates Vata", Rationale: "Moistens intestines, promotes smooth elimination"},
			{Herb: "Flaxseeds", Form: "1 tsp ground flax in water", Dosha: "Balances Vata", Rationale: "Fiber and oils ease bowel movement naturally"},
		},
	},
	{
		name:     "acidity",
		keywords: []string{"acid", "heartburn", "reflux"},
		remedies: []Remedy{
			{Herb: "Coriander", Form: "Coriander seed water", Dosha: "Cools Pitta", Rationale: "Alkalizing herb that soothes inflamed stomach lining"},
			{Herb: "Coconut water", Form: "Fresh coconut water", Dosha: "Calms Pitta", Rationale: "Natural coolant, balances stomach acid, hydrating"},
			{Herb: "Fennel", Form: "Chew fennel seeds after meals", Dosha: "Reduces Pitta", Rationale: "Sweet taste neutralizes acid, cools digestive tract"},
		},
	},
	{
		name:     "fatigue",
		keywords: []string{"tired", "fatigue", "energy"},
		remedies: []Remedy{
			{Herb: "Turmeric", Form: "Pinch of turmeric in warm milk", Dosha: "Balances Kapha", Rationale: "Boosts Ojas (vitality), anti-inflammatory, aids recovery"},
			{Herb: "Honey", Form: "1 tsp raw honey in warm water", Dosha: "Reduces Kapha", Rationale: "Natural energy, scrapes Ama, supports immunity (never heat above 40°C)"},
			{Herb: "Black pepper", Form: "Pinch in warm drinks", Dosha: "Stimulates all doshas", Rationale: "Enhances circulation, bioavailability, clears channels"},
		},
	},
	{
		name:     "weak_immunity",
		keywords: []string{"immune", "sick", "weak"},
		remedies: []Remedy{
			{Herb: "Tulsi (Holy Basil)", Form: "Tulsi tea (3-4 leaves)", Dosha: "Balances all doshas", Rationale: "Adaptogen, boosts immunity, protects respiratory system"},
			{Herb: "Ginger-Turmeric", Form: "Golden tea with both", Dosha: "Builds Ojas", Rationale: "Powerful anti-inflammatory duo, strengthens defenses"},
			{Herb: "Black pepper", Form: "Sprinkle on food", Dosha: "Enhances absorption", Rationale: "Increases nutrient uptake, clears respiratory channels"},
		},
	},
	{
		name:     "stress",
		keywords: []string{"stress", "anxious", "worry"},
		remedies: []Remedy{
			{Herb: "Cardamom", Form: "Cardamom tea", Dosha: "Calms Vata & Pitta", Rationale: "Aromatic, uplifts mood, settles nervous system"},
			{Herb: "Nutmeg", Form: "Pinch in warm milk", Dosha: "Grounds Vata", Rationale: "Relaxes mind, promotes restful sleep (use sparingly)"},
			{Herb: "Warm milk", Form: "With pinch of saffron", Dosha: "Soothes all doshas", Rationale: "Nourishing, calming, promotes Ojas and emotional balance"},
		},
	},
	{
		name:     "insomnia",
		keywords: []string{"sleep", "insomnia"},
		remedies: []Remedy{
			{Herb: "Nutmeg", Form: "Tiny pinch in warm milk at bedtime", Dosha: "Sedates Vata", Rationale: "Natural sleep aid, calms overactive mind"},
			{Herb: "Cardamom", Form: "Cardamom-milk drink", Dosha: "Balances Vata", Rationale: "Calming aroma, eases tension, aids digestion before sleep"},
			{Herb: "Warm milk", Form: "With dates or jaggery", Dosha: "Nourishes Vata", Rationale: "Builds Ojas, induces natural drowsiness"},
		},
	},
	{
		name:     "cold_cough",
		keywords: []string{"cold", "cough", "congestion"},
		remedies: []Remedy{
			{Herb: "Ginger-Honey", Form: "Fresh ginger juice with honey", Dosha: "Clears Kapha", Rationale: "Expectorant, warms lungs, dissolves mucus"},
			{Herb: "Tulsi", Form: "Tulsi-black pepper tea", Dosha: "Expels Kapha", Rationale: "Clears respiratory passages, antimicrobial"},
			{Herb: "Turmeric milk", Form: "Warm turmeric milk", Dosha: "Soothes Kapha", Rationale: "Anti-inflammatory, coats throat, boosts immunity"},
		},
	},
	{
		name:     "skin_issues",
		keywords: []string{"skin", "rash", "acne"},
		remedies: []Remedy{
			{Herb: "Turmeric", Form: "Turmeric water (½ tsp)", Dosha: "Purifies Pitta & Kapha", Rationale: "Blood purifier, anti-inflammatory, promotes clear skin"},
			{Herb: "Neem leaves", Form: "Neem water (4-5 leaves)", Dosha: "Cools Pitta", Rationale: "Detoxifies blood, antimicrobial, clears heat"},
			{Herb: "Coriander", Form: "Coriander-cumin-fennel tea (CCF)", Dosha: "Cleanses all doshas", Rationale: "Gentle detox, improves digestion, clears skin from within"},
		},
	},
	{
		name:     "detox",
		keywords: []string{"detox", "cleanse", "toxic"},
		remedies: []Remedy{
			{Herb: "Warm water", Form: "Sip warm water throughout day", Dosha: "Flushes Ama", Rationale: "Hydrates channels, dilutes toxins, supports kidney function"},
			{Herb: "CCF tea", Form: "Coriander-Cumin-Fennel equal parts", Dosha: "Tridoshic detox", Rationale: "Gentle daily detox, kindles Agni, eliminates Ama"},
			{Herb: "Lemon water", Form: "Warm water with lemon (morning)", Dosha: "Cleanses Kapha", Rationale: "Alkalizing despite sourness, liver stimulant (not for high Pitta)"},
		},
	},
	{
		name:     "weight_gain",
		keywords: []string{"weight", "fat", "obesity"},
		remedies: []Remedy{
			{Herb: "Honey-warm water", Form: "1 tsp honey in warm water (morning)", Dosha: "Reduces Kapha", Rationale: "Scrapes fat tissue, enhances metabolism, clears channels"},
			{Herb: "Ginger tea", Form: "Fresh ginger tea before meals", Dosha: "Stimulates Agni", Rationale: "Increases metabolic fire, improves fat digestion"},
			{Herb: "Black pepper", Form: "Sprinkle on meals", Dosha: "Burns Ama", Rationale: "Thermogenic, enhances circulation and metabolism"},
		},
	},
	{
		name:     "joint_pain",
		keywords: []string{"joint", "pain", "arthritis"},
		remedies: []Remedy{
			{Herb: "Ginger", Form: "Ginger tea or compress", Dosha: "Warms Vata", Rationale: "Anti-inflammatory, improves circulation to joints"},
			{Herb: "Turmeric", Form: "Turmeric milk (golden milk)", Dosha: "Lubricates Vata", Rationale: "Reduces inflammation, nourishes joints"},
			{Herb: "Sesame oil", Form: "Warm sesame oil massage", Dosha: "Pacifies Vata", Rationale: "Penetrates deeply, lubricates, reduces stiffness"},
		},
	},
}

var dailyWellness = []Remedy{
	{Herb: "Warm water", Form: "First thing upon waking", Dosha: "All doshas", Rationale: "Flushes kidneys, hydrates tissues, prepares Agni"},
	{Herb: "Ginger tea", Form: "Before main meals", Dosha: "All doshas", Rationale: "Prepares digestive system, enhances nutrient absorption"},
	{Herb: "Tulsi tea", Form: "Mid-morning or evening", Dosha: "All doshas", Rationale: "Adaptogenic, daily tonic for immunity and mental clarity"},
}
