package utils

// Minimal server-side i18n for fixed keys.
// Domain texts (question stems, summaries) live next to their data; this
// table holds only the envelope strings.

var translations = map[string]map[string]string{
	"en": {
		"health.ok":    "ok",
		"service.name": "ECR attachment assessment API",
	},
	"zh": {
		"health.ok":    "好的",
		"service.name": "ECR 依恋测试服务",
	},
}

// T returns the translated string for key in locale; falls back to English.
func T(locale, key string) string {
	if m, ok := translations[locale]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := translations["en"]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}
