package catalog

// questions enumerates the 36 ECR-R items in presentation order (equal to id
// order). Odd ids measure attachment anxiety, even ids attachment avoidance.
// The reverse flag mirrors the reverseScored set; both must stay in sync.
var questions = [TotalQuestions]Question{
	{ID: 1, Dimension: Anxiety, StemI18n: map[string]string{
		"en": "I worry about being abandoned.",
		"zh": "我担心被抛弃。",
	}},
	{ID: 2, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I find it difficult to depend on my partner.",
		"zh": "我发现很难依赖恋人。",
	}},
	{ID: 3, Dimension: Anxiety, StemI18n: map[string]string{
		"en": "I often worry that my partner no longer loves me.",
		"zh": "我经常担心恋人不再爱我了。",
	}},
	{ID: 4, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I find that my partner doesn't want to get as close as I would like.",
		"zh": "我发现恋人不愿意像我希望的那样亲近我。",
	}},
	{ID: 5, Dimension: Anxiety, StemI18n: map[string]string{
		"en": "I worry about being alone.",
		"zh": "我担心独自一人。",
	}},
	{ID: 6, Dimension: Avoidance, Reverse: true, StemI18n: map[string]string{
		"en": "I feel comfortable being close to my partner.",
		"zh": "我感到与恋人亲近很舒服。",
	}},
	{ID: 7, Dimension: Anxiety, StemI18n: map[string]string{
		"en": "I often worry that my partner doesn't care about me as much as I care about them.",
		"zh": "我经常担心恋人对我的关心不如我对他们的关心。",
	}},
	{ID: 8, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I find it difficult to allow myself to depend on my partner.",
		"zh": "我发现很难允许自己依赖恋人。",
	}},
	{ID: 9, Dimension: Anxiety, Reverse: true, StemI18n: map[string]string{
		"en": "I rarely worry about being abandoned.",
		"zh": "我很少担心被抛弃。",
	}},
	{ID: 10, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I prefer not to show my partner my deepest feelings.",
		"zh": "我不喜欢向恋人表露我内心深处的感受。",
	}},
	{ID: 11, Dimension: Anxiety, StemI18n: map[string]string{
		"en": "I do not often worry about someone leaving me.",
		"zh": "我不经常担心有人会离开我。",
	}},
	{ID: 12, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I find it difficult to trust my partner completely.",
		"zh": "我发现很难完全信任恋人。",
	}},
	{ID: 13, Dimension: Anxiety, StemI18n: map[string]string{
		"en": "I feel somewhat anxious when my partner is away.",
		"zh": "当恋人不在身边时，我感到有些焦虑。",
	}},
	{ID: 14, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "My partner wants me to be closer, which makes me uncomfortable.",
		"zh": "恋人想要我更加亲近，但我感到不舒服。",
	}},
	{ID: 15, Dimension: Anxiety, Reverse: true, StemI18n: map[string]string{
		"en": "I need a lot of reassurance from my partner.",
		"zh": "我需要从恋人那里得到很多安慰。",
	}},
	{ID: 16, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I tell my partner just about everything.",
		"zh": "我告诉恋人几乎所有事情。",
	}},
	{ID: 17, Dimension: Anxiety, StemI18n: map[string]string{
		"en": "I want to get very close to someone, and this sometimes scares people away.",
		"zh": "我想要与某人非常亲近，但这有时会把人吓跑。",
	}},
	{ID: 18, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I find it hard to rely on my partner.",
		"zh": "我发现很难依赖恋人。",
	}},
	{ID: 19, Dimension: Anxiety, Reverse: true, StemI18n: map[string]string{
		"en": "I worry about being alone.",
		"zh": "我担心独自一人。",
	}},
	{ID: 20, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I don't mind asking my partner for comfort, advice, or help.",
		"zh": "我不介意向恋人寻求安慰、建议或帮助。",
	}},
	{ID: 21, Dimension: Anxiety, StemI18n: map[string]string{
		"en": "When I show my feelings, I'm afraid my partner will not feel the same.",
		"zh": "当我表现出感情时，我害怕恋人不会有同样的感受。",
	}},
	{ID: 22, Dimension: Avoidance, Reverse: true, StemI18n: map[string]string{
		"en": "It is hard for me to depend on my partner.",
		"zh": "我发现很难依赖恋人。",
	}},
	{ID: 23, Dimension: Anxiety, StemI18n: map[string]string{
		"en": "I rarely worry that my partner will leave me.",
		"zh": "我很少担心恋人会离开我。",
	}},
	{ID: 24, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I don't like opening up to my partner.",
		"zh": "我不喜欢向恋人敞开心扉。",
	}},
	{ID: 25, Dimension: Anxiety, Reverse: true, StemI18n: map[string]string{
		"en": "I wish I could merge completely with my partner.",
		"zh": "我希望与恋人融为一体。",
	}},
	{ID: 26, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I'd rather not show how I feel about my partner.",
		"zh": "我更愿意不表露我对恋人的感受。",
	}},
	{ID: 27, Dimension: Anxiety, Reverse: true, StemI18n: map[string]string{
		"en": "My partner makes me doubt myself.",
		"zh": "我的恋人让我怀疑自己。",
	}},
	{ID: 28, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I find it easy to depend on my partner.",
		"zh": "我发现很容易依赖恋人。",
	}},
	{ID: 29, Dimension: Anxiety, StemI18n: map[string]string{
		"en": "I do not often worry about being abandoned.",
		"zh": "我不经常担心被抛弃。",
	}},
	{ID: 30, Dimension: Avoidance, Reverse: true, StemI18n: map[string]string{
		"en": "I don't feel comfortable being very close to my partner.",
		"zh": "我不喜欢感觉与恋人很亲近。",
	}},
	{ID: 31, Dimension: Anxiety, Reverse: true, StemI18n: map[string]string{
		"en": "I feel terrible when my partner disapproves of what I do.",
		"zh": "当恋人不赞成我做的事情时，我感觉很糟糕。",
	}},
	{ID: 32, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "I find it easy to get close to my partner.",
		"zh": "我发现很容易亲近恋人。",
	}},
	{ID: 33, Dimension: Anxiety, Reverse: true, StemI18n: map[string]string{
		"en": "I worry that my partner won't care about me as much as I care about them.",
		"zh": "我担心恋人不会像我关心他们那样关心我。",
	}},
	{ID: 34, Dimension: Avoidance, StemI18n: map[string]string{
		"en": "Being close to my partner makes me uncomfortable.",
		"zh": "与恋人亲近让我感到不舒服。",
	}},
	{ID: 35, Dimension: Anxiety, StemI18n: map[string]string{
		"en": "I feel down when my partner is away.",
		"zh": "当恋人不在身边时，我感到沮丧。",
	}},
	{ID: 36, Dimension: Avoidance, Reverse: true, StemI18n: map[string]string{
		"en": "I find it difficult to let my partner depend on me.",
		"zh": "我发现很难让恋人依赖我。",
	}},
}
