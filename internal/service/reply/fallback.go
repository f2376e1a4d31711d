package reply

import (
	"math/rand/v2"

	"github.com/zhouzirui/wizcare/backend/internal/analysis/stress"
)

var fallbackReplies = map[stress.Level][]string{
	stress.None: {
		"Hi there! I'm WizCare, your mental health companion. How are you feeling today? 💙",
		"Hello! I'm here to listen and support you. What's on your mind? 🌸",
		"Welcome to WizCare! I'm ready to chat whenever you need someone to talk to. 💜",
		"Hey there! I'm your AI companion here to support your mental wellness journey. How's your day going? 🌟",
		"Hi! I'm WizCare, and I'm here to listen without judgment. What would you like to share? 💙",
	},
	stress.Low: {
		"I'm glad you're feeling okay! Is there anything you'd like to talk about? 😊",
		"That's great to hear! I'm here if you need someone to chat with. 💜",
		"It's wonderful that you're doing well! Sometimes it's nice to just have someone to talk to. 🌸",
		"That's fantastic! Even on good days, it's perfectly fine to want to chat. What's on your mind? 💙",
		"I'm happy you're feeling good! Is there anything you'd like to discuss or any thoughts you want to share? ✨",
	},
	stress.Medium: {
		"I hear you're feeling a bit stressed. Want to talk more about what's on your mind? 💙",
		"It's okay to feel this way. I'm here to listen and support you. 🌸",
		"Stress can be really overwhelming, but you're not alone in this. What's been causing you stress lately? 💜",
		"I understand that stress can feel heavy sometimes. Would you like to talk about what's been on your mind? 🌟",
		"It's completely normal to feel stressed, and it's brave of you to reach out. What's been troubling you? 💙",
		"Stress affects us all differently, and it's okay to not be okay. I'm here to listen to whatever you want to share. 🌸",
		"Sometimes just talking about what's stressing us can help lighten the load. What's been on your mind? 💜",
	},
	stress.High: {
		"I can see you're going through a tough time. You're not alone in this. 💙",
		"That sounds really difficult. I'm here to listen and support you through this. 💜",
		"I hear how much you're struggling, and I want you to know that your feelings are valid. What's been happening? 🌸",
		"It sounds like you're carrying a heavy burden right now. You don't have to carry it alone. 💙",
		"I can feel the weight of what you're going through. It's okay to not be strong all the time. 🌟",
		"What you're experiencing sounds really challenging. I'm here to listen and support you through this difficult time. 💜",
		"Your pain is real, and it matters. You don't have to face this alone. What would help you feel supported right now? 💙",
		"I can sense how overwhelmed you must be feeling. It's okay to take things one moment at a time. 🌸",
	},
	stress.Critical: {
		"I'm really concerned about what you're sharing. You're not alone, and there are people who can help right now.",
		"This sounds really serious. Please know that help is available 24/7. You matter. 💙",
		"I'm deeply worried about what you're going through. Your life has value, and there are people who want to help you.",
		"What you're experiencing sounds like a crisis, and I want you to know that professional help is available right now.",
		"I can hear how much pain you're in, and I want you to know that you don't have to face this alone. Help is here.",
		"Your feelings are valid, and what you're going through is serious. Please reach out to a crisis helpline right now.",
		"I'm concerned about your safety. You matter, and there are people who can help you through this difficult time.",
		"What you're sharing sounds like a mental health emergency. Please know that professional support is available 24/7.",
	},
}

// FallbackSet 返回该等级的兜底回复，未知等级使用 None 的列表。
func FallbackSet(level stress.Level) []string {
	return append([]string(nil), fallbackReplies[stress.Clamp(int(level))]...)
}

// Fallback 从该等级的兜底回复中均匀随机选一条。
func Fallback(level stress.Level) string {
	replies := fallbackReplies[stress.Clamp(int(level))]
	return replies[rand.IntN(len(replies))]
}
