package catalog

// scaleLabels maps each point of the 7-point Likert scale to a human label.
var scaleLabels = map[string][7]string{
	"en": {
		"Strongly disagree",
		"Disagree",
		"Somewhat disagree",
		"Neutral / unsure",
		"Somewhat agree",
		"Agree",
		"Strongly agree",
	},
	"zh": {
		"非常不同意",
		"不同意",
		"有点不同意",
		"中立/不确定",
		"有点同意",
		"同意",
		"非常同意",
	},
}

// ScaleLabel returns the label for a scale value in the given locale,
// falling back to English for unknown locales. Values outside 1..7 map to
// a fixed "unknown" sentinel so the function stays total.
func ScaleLabel(value int, locale string) string {
	if value < ScaleMin || value > ScaleMax {
		if locale == "zh" {
			return "未知"
		}
		return "unknown"
	}
	labels, ok := scaleLabels[locale]
	if !ok {
		labels = scaleLabels["en"]
	}
	return labels[value-1]
}

// ScaleLabels returns the ordered 1..7 labels for a locale, falling back to
// English.
func ScaleLabels(locale string) []string {
	labels, ok := scaleLabels[locale]
	if !ok {
		labels = scaleLabels["en"]
	}
	out := make([]string, len(labels))
	copy(out, labels[:])
	return out
}
