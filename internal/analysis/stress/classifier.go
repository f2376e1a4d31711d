package stress

import "strings"

// Level 表示单条消息推断出的压力等级。
type Level int

const (
	None     Level = 0
	Low      Level = 1
	Medium   Level = 2
	High     Level = 3
	Critical Level = 4
)

// Levels 按升序列出全部等级。
var Levels = []Level{None, Low, Medium, High, Critical}

// 危机词直接判定为 Critical，不再看其他关键词。
var crisisKeywords = []string{
	"death", "dying", "kill", "suicide", "suicidal", "end it all", "want to die",
	"better off dead", "self-harm", "self harm", "hurt myself", "no reason to live",
}

var keywordBuckets = []struct {
	level    Level
	keywords []string
}{
	{
		level: High,
		keywords: []string{
			"overwhelmed", "can't take it", "cant take it", "hopeless", "worthless", "alone",
			"nobody cares", "lonely", "isolated", "sad", "depressed", "cry", "hate", "angry",
			"miserable", "empty inside", "give up",
		},
	},
	{
		level: Medium,
		keywords: []string{
			"stressed", "stress", "anxious", "anxiety", "worried", "worry", "tired", "exhausted",
			"burnout", "burned out", "frustrated", "nervous", "overworked", "panic", "can't sleep",
		},
	},
	{
		level:    Low,
		keywords: []string{"okay", "fine", "alright", "good", "better"},
	},
}

// Classify 根据关键词推断文本的压力等级。
//
// 匹配是不区分大小写的字面子串查找；命中危机词立即返回，否则取命中的最高等级。
func Classify(text string) Level {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return None
	}

	if containsAny(normalized, crisisKeywords) {
		return Critical
	}

	level := None
	for _, bucket := range keywordBuckets {
		if bucket.level > level && containsAny(normalized, bucket.keywords) {
			level = bucket.level
		}
	}
	return level
}

func containsAny(text string, keywords []string) bool {
	for _, word := range keywords {
		if word != "" && strings.Contains(text, word) {
			return true
		}
	}
	return false
}

// Clamp 把任意整数映射为等级，越界值视为 None。
func Clamp(raw int) Level {
	if l := Level(raw); l.Valid() {
		return l
	}
	return None
}

// Valid 判断 l 是否为已定义的等级。
func (l Level) Valid() bool {
	return l >= None && l <= Critical
}

// String 返回压力计上的文字标签。
func (l Level) String() string {
	switch l {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	case Critical:
		return "Very High"
	default:
		return "None"
	}
}

// Context 返回写入模型提示的等级描述。
func (l Level) Context() string {
	switch l {
	case Low:
		return "Low stress - user seems generally okay"
	case Medium:
		return "Medium stress - user is experiencing some anxiety or worry"
	case High:
		return "High stress - user is feeling overwhelmed or distressed"
	case Critical:
		return "Very High stress - potential crisis situation requiring immediate attention"
	default:
		return "No stress detected"
	}
}
