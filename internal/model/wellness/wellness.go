package wellness

import "time"

// Mood is one option of the mood picker.
type Mood struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// MoodCheckIn records a mood picked during a session.
type MoodCheckIn struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Mood      Mood      `json:"mood"`
	CreatedAt time.Time `json:"createdAt"`
}

// JournalEntry is free text saved from the journal tool.
type JournalEntry struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// Disclaimer is the notice shown before the first conversation.
type Disclaimer struct {
	Title     string   `json:"title"`
	Emergency string   `json:"emergency"`
	CanDo     []string `json:"canDo"`
	Reminders []string `json:"reminders"`
	Consent   string   `json:"consent"`
}

// SeedMoods provides the mood picker options.
func SeedMoods() []Mood {
	return []Mood{
		{Emoji: "😊", Label: "Happy", Color: "#48bb78"},
		{Emoji: "😐", Label: "Neutral", Color: "#ed8936"},
		{Emoji: "😔", Label: "Sad", Color: "#4299e1"},
		{Emoji: "😰", Label: "Anxious", Color: "#e53e3e"},
		{Emoji: "😴", Label: "Tired", Color: "#805ad5"},
	}
}

// SeedQuickResponses provides the quick-start prompts of an empty chat.
func SeedQuickResponses() []string {
	return []string{
		"I'm feeling stressed",
		"I'm anxious",
		"I'm exhausted",
		"I'm okay",
		"I need help",
	}
}

// SeedDisclaimer provides the default disclaimer copy.
func SeedDisclaimer() Disclaimer {
	return Disclaimer{
		Title: "Important Disclaimer",
		Emergency: "WizCare is NOT a replacement for professional medical care. If you are experiencing a mental health crisis " +
			"or having thoughts of self-harm, please contact emergency services immediately: National Crisis Helpline: 14416",
		CanDo: []string{
			"Provide emotional support and active listening",
			"Offer general wellness tips and coping strategies",
			"Help you track your mood and stress levels",
			"Guide you through breathing exercises",
			"Encourage you to seek professional help when needed",
		},
		Reminders: []string{
			"Always consult with qualified healthcare professionals for medical concerns",
			"Don't rely solely on this chatbot for mental health treatment",
			"If you're in crisis, reach out to emergency services or crisis hotlines",
			"Your privacy is important - conversations are not stored permanently",
		},
		Consent: "By using WizCare, you acknowledge that this is a supportive tool and not a substitute for professional medical care.",
	}
}
