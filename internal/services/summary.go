package services

import "github.com/attachlab/ecr/internal/catalog"

// StyleSummary is the short, human-readable rendering of a result.
type StyleSummary struct {
	Style          AttachmentStyle `json:"style"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Icon           string          `json:"icon"`
	Recommendation string          `json:"recommendation"`
}

// DimensionExplanation renders one dimension score as localized text.
type DimensionExplanation struct {
	Dimension      catalog.Dimension `json:"dimension"`
	Score          float64           `json:"score"`
	Level          string            `json:"level"`
	Explanation    string            `json:"explanation"`
	Interpretation string            `json:"interpretation"`
}

type styleText struct {
	title, description, recommendation string
}

var styleIcons = map[AttachmentStyle]string{
	StyleSecure:       "shield-check",
	StyleAnxious:      "heart-pulse",
	StyleAvoidant:     "user-shield",
	StyleDisorganized: "brain",
}

var styleTexts = map[string]map[AttachmentStyle]styleText{
	"en": {
		StyleSecure: {
			title:          "Secure attachment",
			description:    "You feel safe and comfortable in relationships and can balance independence with closeness.",
			recommendation: "Keep up your healthy relationship patterns; your attachment style is stable and secure.",
		},
		StyleAnxious: {
			title:          "Anxious attachment",
			description:    "You long for deep connection with your partner but worry easily about being abandoned.",
			recommendation: "Try practicing self-soothing techniques and rely less on constant reassurance from the relationship.",
		},
		StyleAvoidant: {
			title:          "Avoidant attachment",
			description:    "You value personal independence and tend to be reserved in expressing emotions.",
			recommendation: "Practice expressing your feelings step by step, and learn to depend on others in moderation.",
		},
		StyleDisorganized: {
			title:          "Disorganized attachment",
			description:    "You experience conflicting feelings in relationships, craving closeness while fearing being hurt.",
			recommendation: "Consider seeking professional support to explore and work through these conflicting feelings.",
		},
	},
	"zh": {
		StyleSecure: {
			title:          "安全型依恋",
			description:    "您在关系中感到安全和舒适，能够平衡独立性和亲密性。",
			recommendation: "继续保持健康的关系模式，您的依恋风格非常稳定和安全。",
		},
		StyleAnxious: {
			title:          "焦虑型依恋",
			description:    "您渴望与伴侣建立深度连接，但容易担心被抛弃。",
			recommendation: "尝试练习自我安抚技巧，减少对关系确认的过度依赖。",
		},
		StyleAvoidant: {
			title:          "回避型依恋",
			description:    "您重视个人独立性，在情感表达上较为保守。",
			recommendation: "逐步练习情感表达，学习在关系中适度依赖他人。",
		},
		StyleDisorganized: {
			title:          "混乱型依恋",
			description:    "您在关系中体验到矛盾情感，既渴望亲密又害怕受伤。",
			recommendation: "考虑寻求专业帮助，探索和处理情感矛盾的根本原因。",
		},
	},
}

var highScoreAddenda = map[string]struct{ anxious, avoidant string }{
	"en": {
		anxious:  " Your high anxiety level suggests you may benefit from better emotion-regulation strategies.",
		avoidant: " Your high avoidance level may affect your ability to build deep emotional connections.",
	},
	"zh": {
		anxious:  " 高焦虑水平提示您可能需要学习更好的情绪调节策略。",
		avoidant: " 高回避水平可能影响您建立深度情感连接的能力。",
	},
}

var interpTexts = map[string]map[catalog.Dimension]map[Interpretation]string{
	"en": {
		catalog.Anxiety: {
			InterpVeryLow:  "very low anxiety level",
			InterpLow:      "low anxiety level",
			InterpMedium:   "moderate anxiety level",
			InterpHigh:     "high anxiety level",
			InterpVeryHigh: "very high anxiety level",
		},
		catalog.Avoidance: {
			InterpVeryLow:  "very low avoidance level",
			InterpLow:      "low avoidance level",
			InterpMedium:   "moderate avoidance level",
			InterpHigh:     "high avoidance level",
			InterpVeryHigh: "very high avoidance level",
		},
	},
	"zh": {
		catalog.Anxiety: {
			InterpVeryLow:  "极低焦虑水平",
			InterpLow:      "较低焦虑水平",
			InterpMedium:   "中等焦虑水平",
			InterpHigh:     "较高焦虑水平",
			InterpVeryHigh: "极高焦虑水平",
		},
		catalog.Avoidance: {
			InterpVeryLow:  "极低回避水平",
			InterpLow:      "较低回避水平",
			InterpMedium:   "中等回避水平",
			InterpHigh:     "较高回避水平",
			InterpVeryHigh: "极高回避水平",
		},
	},
}

var levelTexts = map[string]map[catalog.Dimension]map[string]string{
	"en": {
		catalog.Anxiety: {
			"low":    "You worry little about abandonment or rejection and feel secure in relationships.",
			"medium": "You have some concerns about your relationships but overall maintain a fairly stable emotional state.",
			"high":   "You worry strongly about abandonment or rejection and may need more reassurance and security.",
		},
		catalog.Avoidance: {
			"low":    "You are comfortable with emotional closeness and can naturally express needs and depend on others.",
			"medium": "You balance closeness and independence, adjusting your emotional expression to the situation.",
			"high":   "You tend to keep emotional distance and may find it hard to express deep feelings or depend on others.",
		},
	},
	"zh": {
		catalog.Anxiety: {
			"low":    "您对被抛弃或拒绝的担心程度较低，对关系有较强的安全感。",
			"medium": "您对关系有一定的担忧，但整体上能够保持相对稳定的情感状态。",
			"high":   "您对被抛弃或拒绝有较强的担心，可能需要更多的关系确认和安全感。",
		},
		catalog.Avoidance: {
			"low":    "您对情感亲密感到舒适，能够自然地表达情感需求和依赖他人。",
			"medium": "您在亲密和独立之间保持平衡，能够根据情境调整自己的情感表达。",
			"high":   "您倾向于保持情感距离，在表达深层情感和依赖他人方面可能感到困难。",
		},
	},
}

func localeOrEnglish[T any](m map[string]T, locale string) T {
	if v, ok := m[locale]; ok {
		return v
	}
	return m["en"]
}

// SummaryFor renders a localized short summary for a result, including the
// per-style recommendation with high-score addenda.
func SummaryFor(res *Result, locale string) StyleSummary {
	texts := localeOrEnglish(styleTexts, locale)
	st, ok := texts[res.Style]
	if !ok {
		st = texts[StyleSecure]
	}
	rec := st.recommendation
	addenda := localeOrEnglish(highScoreAddenda, locale)
	if res.Anxious > 5.0 {
		rec += addenda.anxious
	}
	if res.Avoidant > 5.0 {
		rec += addenda.avoidant
	}
	return StyleSummary{
		Style:          res.Style,
		Title:          st.title,
		Description:    st.description,
		Icon:           styleIcons[res.Style],
		Recommendation: rec,
	}
}

// InterpretationText localizes an interpretation band for a dimension.
func InterpretationText(dim catalog.Dimension, interp Interpretation, locale string) string {
	return localeOrEnglish(interpTexts, locale)[dim][interp]
}

// ExplainDimension renders one dimension score as a localized explanation.
// The coarse level splits at 3.0 and 5.0.
func ExplainDimension(dim catalog.Dimension, score float64, locale string) DimensionExplanation {
	level := "medium"
	if score < 3.0 {
		level = "low"
	}
	if score > 5.0 {
		level = "high"
	}
	return DimensionExplanation{
		Dimension:      dim,
		Score:          score,
		Level:          level,
		Explanation:    localeOrEnglish(levelTexts, locale)[dim][level],
		Interpretation: InterpretationText(dim, InterpretScore(score), locale),
	}
}
