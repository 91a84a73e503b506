package mindtext

// Seed fixtures. They are read-only reference data for aggregate statistics,
// word clouds and evaluation.

var seedReviews = []Review{
	{ID: 1, Review: "This movie was absolutely fantastic! The acting was superb and the plot kept me engaged throughout. A masterpiece of cinema that deserves all the praise it gets. The cinematography was breathtaking and the soundtrack perfectly complemented every scene.", Sentiment: Positive, Rating: 9, Movie: "The Shawshank Redemption"},
	{ID: 2, Review: "Terrible waste of time. The plot was confusing, the acting was wooden, and I couldn't wait for it to end. One of the worst movies I've ever seen. The dialogue was cringe-worthy and the special effects looked cheap and unconvincing.", Sentiment: Negative, Rating: 2, Movie: "Movie 43"},
	{ID: 3, Review: "Outstanding performance by the lead actor. The story was compelling and emotionally resonant. This film will stay with you long after the credits roll. Every scene was crafted with care and attention to detail.", Sentiment: Positive, Rating: 8, Movie: "Forrest Gump"},
	{ID: 4, Review: "Boring and predictable. The characters were one-dimensional and the ending was disappointing. I expected much more from this highly rated film. The pacing was slow and nothing really happened for most of the runtime.", Sentiment: Negative, Rating: 3, Movie: "The Happening"},
	{ID: 5, Review: "Brilliant storytelling with amazing visual effects. The cast delivered powerful performances that brought the characters to life. A true cinematic experience that showcases the best of modern filmmaking.", Sentiment: Positive, Rating: 9, Movie: "Inception"},
	{ID: 6, Review: "Completely overrated. The hype was not justified at all. Poor character development and a weak storyline made this a forgettable experience. I don't understand why critics praised this so much.", Sentiment: Negative, Rating: 4, Movie: "Avatar: The Last Airbender"},
	{ID: 7, Review: "Exceptional direction and screenplay. The movie tackles complex themes with grace and intelligence. Every actor brought their A-game to create something truly special. A film that deserves multiple viewings.", Sentiment: Positive, Rating: 9, Movie: "Parasite"},
	{ID: 8, Review: "Awful acting and terrible script. The movie felt like it was made by amateurs. Nothing about this film worked - not the story, not the performances, not even the music. Complete disaster.", Sentiment: Negative, Rating: 1, Movie: "The Room"},
	{ID: 9, Review: "Incredible cinematography and a haunting score. The film creates an atmosphere that is both beautiful and terrifying. The performances are nuanced and the story unfolds perfectly. A modern classic.", Sentiment: Positive, Rating: 8, Movie: "Blade Runner 2049"},
	{ID: 10, Review: "Disappointing sequel that ruins the original. The plot holes were enormous and the new characters were annoying. They should have left the franchise alone instead of creating this mess.", Sentiment: Negative, Rating: 3, Movie: "Independence Day: Resurgence"},
	{ID: 11, Review: "Masterful storytelling with incredible attention to detail. The film builds tension perfectly and delivers an emotionally satisfying conclusion. The cast chemistry is phenomenal and every scene serves a purpose.", Sentiment: Positive, Rating: 9, Movie: "The Dark Knight"},
	{ID: 12, Review: "Boring, slow, and pretentious. The movie tries too hard to be artistic but fails to tell a coherent story. I fell asleep twice trying to watch this. Definitely not worth the time or money.", Sentiment: Negative, Rating: 2, Movie: "The Tree of Life"},
	{ID: 13, Review: "Absolutely loved every minute of this film! The humor was perfect, the action sequences were thrilling, and the emotional moments hit just right. A perfect blend of entertainment and substance.", Sentiment: Positive, Rating: 8, Movie: "Guardians of the Galaxy"},
	{ID: 14, Review: "Generic and formulaic. Felt like I'd seen this exact movie a dozen times before. No originality or creativity whatsoever. The ending was predictable from the first ten minutes.", Sentiment: Negative, Rating: 4, Movie: "Transformers: The Last Knight"},
	{ID: 15, Review: "A beautiful and moving film that explores deep themes with sensitivity and intelligence. The performances are outstanding and the direction is flawless. This is cinema at its finest.", Sentiment: Positive, Rating: 9, Movie: "Moonlight"},
	{ID: 16, Review: "Terrible special effects and even worse acting. The story made no sense and the dialogue was laughably bad. I can't believe this got made, let alone released in theaters.", Sentiment: Negative, Rating: 1, Movie: "Cats"},
	{ID: 17, Review: "Phenomenal film with incredible performances across the board. The story is gripping from start to finish and the technical aspects are top-notch. A true work of art that will be remembered for years.", Sentiment: Positive, Rating: 10, Movie: "Goodfellas"},
	{ID: 18, Review: "Overly long and self-indulgent. The director clearly needed an editor to cut out the unnecessary scenes. What could have been a good 90-minute movie was stretched into a boring 3-hour slog.", Sentiment: Negative, Rating: 3, Movie: "Justice League"},
	{ID: 19, Review: "Stunning visuals and an emotionally powerful story. The film succeeds on every level - as entertainment, as art, and as a meaningful exploration of the human condition. Absolutely brilliant.", Sentiment: Positive, Rating: 9, Movie: "WALL-E"},
	{ID: 20, Review: "Completely pointless and poorly executed. The plot was nonsensical and the characters were unlikable. I regret spending money on this when there are so many better options available.", Sentiment: Negative, Rating: 2, Movie: "The Emoji Movie"},
}

var seedMentalHealth = []MentalHealthEntry{
	{ID: 1, Text: "I feel overwhelmed with work and can't seem to catch a break. Everything feels too much right now.", Sentiment: Negative, Category: CategoryStress, Severity: 4, Language: English},
	{ID: 2, Text: "Today was a good day. I managed to complete my tasks and even had time for a walk in the park.", Sentiment: Positive, Category: CategoryWellbeing, Severity: 1, Language: English},
	{ID: 3, Text: "मैं बहुत परेशान हूं और समझ नहीं आ रहा कि क्या करूं। लगता है जैसे कोई रास्ता नहीं है।", Sentiment: Negative, Category: CategoryAnxiety, Severity: 5, Language: Hindi},
	{ID: 4, Text: "I've been feeling really anxious about the future. My heart races whenever I think about tomorrow.", Sentiment: Negative, Category: CategoryAnxiety, Severity: 4, Language: English},
	{ID: 5, Text: "Meditation helped me feel centered today. I'm grateful for small moments of peace.", Sentiment: Positive, Category: CategoryWellbeing, Severity: 1, Language: English},
	{ID: 6, Text: "आज मैंने योग किया और बहुत अच्छा लगा। मन शांत हो गया।", Sentiment: Positive, Category: CategoryWellbeing, Severity: 1, Language: Hindi},
	{ID: 7, Text: "I can't get out of bed. Everything feels pointless and I have no energy for anything.", Sentiment: Negative, Category: CategoryDepression, Severity: 5, Language: English},
	{ID: 8, Text: "Talking to my friend really helped. Sometimes we just need someone to listen.", Sentiment: Positive, Category: CategorySupport, Severity: 1, Language: English},
	{ID: 9, Text: "मुझे लगता है कि मैं अकेला हूं और कोई मुझे समझता नहीं है।", Sentiment: Negative, Category: CategoryDepression, Severity: 4, Language: Hindi},
	{ID: 10, Text: "I'm learning to be kinder to myself. Progress isn't always linear, and that's okay.", Sentiment: Positive, Category: CategoryWellbeing, Severity: 2, Language: English},
	{ID: 11, Text: "The panic attacks are getting worse. I feel like I'm losing control of my life.", Sentiment: Negative, Category: CategoryAnxiety, Severity: 5, Language: English},
	{ID: 12, Text: "आज परिवार के साथ समय बिताया। खुशी मिली और मन हल्का हो गया।", Sentiment: Positive, Category: CategorySupport, Severity: 1, Language: Hindi},
	{ID: 13, Text: "Work stress is affecting my sleep. I lie awake worrying about deadlines and meetings.", Sentiment: Negative, Category: CategoryStress, Severity: 3, Language: English},
	{ID: 14, Text: "I started journaling and it's helping me process my emotions better.", Sentiment: Positive, Category: CategoryWellbeing, Severity: 2, Language: English},
	{ID: 15, Text: "मैं बहुत डरा हुआ हूं। हर छोटी बात में घबराहट होती है।", Sentiment: Negative, Category: CategoryAnxiety, Severity: 4, Language: Hindi},
	{ID: 16, Text: "Therapy sessions are helping me understand my patterns and triggers better.", Sentiment: Positive, Category: CategorySupport, Severity: 2, Language: English},
	{ID: 17, Text: "I feel empty inside, like nothing matters anymore. The sadness is overwhelming.", Sentiment: Negative, Category: CategoryDepression, Severity: 5, Language: English},
	{ID: 18, Text: "आज मैंने अपने दोस्त से बात की। उसकी सलाह से मन को शांति मिली।", Sentiment: Positive, Category: CategorySupport, Severity: 1, Language: Hindi},
	{ID: 19, Text: "The breathing exercises are actually working. I feel more in control during stressful moments.", Sentiment: Positive, Category: CategoryWellbeing, Severity: 2, Language: English},
	{ID: 20, Text: "मुझे नींद नहीं आती। रात भर चिंता में जागता रहता हूं।", Sentiment: Negative, Category: CategoryStress, Severity: 4, Language: Hindi},
}

var seedCrisisResources = map[Language][]CrisisResource{
	English: {
		{Name: "National Suicide Prevention Lifeline", Phone: "988", Description: "24/7 crisis support and suicide prevention"},
		{Name: "Crisis Text Line", Phone: "Text HOME to 741741", Description: "24/7 text-based crisis support"},
		{Name: "SAMHSA National Helpline", Phone: "1-800-662-4357", Description: "Mental health and substance abuse support"},
	},
	Hindi: {
		{Name: "आत्महत्या रोकथाम हेल्पलाइन", Phone: "91-9152987821", Description: "24/7 संकट सहायता और आत्महत्या रोकथाम"},
		{Name: "मानसिक स्वास्थ्य हेल्पलाइन", Phone: "1800-599-0019", Description: "मानसिक स्वास्थ्य सहायता और परामर्श"},
		{Name: "वंदना फाउंडेशन", Phone: "9999666555", Description: "मानसिक स्वास्थ्य सहायता सेवा"},
	},
}
