package services

import (
	"log"
	"math"
	"time"

	"github.com/attachlab/ecr/internal/catalog"
)

// AttachmentStyle is the categorical summary derived from the two
// dimension scores.
type AttachmentStyle string

const (
	StyleSecure       AttachmentStyle = "secure"
	StyleAnxious      AttachmentStyle = "anxious"
	StyleAvoidant     AttachmentStyle = "avoidant"
	StyleDisorganized AttachmentStyle = "disorganized"
)

// Interpretation buckets a raw dimension score into five bands.
type Interpretation string

const (
	InterpVeryLow  Interpretation = "very_low"
	InterpLow      Interpretation = "low"
	InterpMedium   Interpretation = "medium"
	InterpHigh     Interpretation = "high"
	InterpVeryHigh Interpretation = "very_high"
)

// styleMidpoint splits each dimension for classification; the boundary
// itself belongs to the high side.
const styleMidpoint = 4.0

// DimensionScore is the derived score of one dimension.
type DimensionScore struct {
	Raw            float64        `json:"raw"`
	Normalized     int            `json:"normalized"`
	Interpretation Interpretation `json:"interpretation"`
}

// ResultScores pairs the two dimension scores.
type ResultScores struct {
	Anxiety   DimensionScore `json:"anxiety"`
	Avoidance DimensionScore `json:"avoidance"`
}

// Statistics summarizes answer coverage at scoring time.
type Statistics struct {
	TotalQuestions      int `json:"total_questions"`
	AnsweredQuestions   int `json:"answered_questions"`
	UnansweredQuestions int `json:"unanswered_questions"`
	CompletionRate      int `json:"completion_rate"`
}

// Result is the immutable outcome of scoring one ResponseSet.
type Result struct {
	Anxious    float64         `json:"anxious"`
	Avoidant   float64         `json:"avoidant"`
	Style      AttachmentStyle `json:"style"`
	Scores     ResultScores    `json:"scores"`
	Statistics Statistics      `json:"statistics"`
	Timestamp  time.Time       `json:"timestamp"`
}

// round1 keeps one decimal place, rounding half away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// dimensionRaw returns the mean effective value over the answered items of
// dim, rounded to one decimal, and the answered-item count. Raw is 0 when
// no item of the dimension is answered.
func dimensionRaw(rs *ResponseSet, dim catalog.Dimension) (float64, int) {
	sum, count := 0, 0
	for _, id := range catalog.ItemIDsOf(dim) {
		if v, ok := rs.At(id - 1); ok {
			sum += EffectiveValue(id, v)
			count++
		}
	}
	if count == 0 {
		return 0, 0
	}
	return round1(float64(sum) / float64(count)), count
}

// NormalizeScore maps the theoretical 1..7 raw range linearly onto 0..100.
// It applies the formula literally; callers that can see a raw of 0
// (meaning "no data") clamp separately.
func NormalizeScore(raw float64) int {
	return int(math.Round((raw - 1) / 6 * 100))
}

// InterpretScore buckets a raw dimension score.
func InterpretScore(raw float64) Interpretation {
	switch {
	case raw < 2.5:
		return InterpVeryLow
	case raw < 3.5:
		return InterpLow
	case raw < 4.5:
		return InterpMedium
	case raw < 5.5:
		return InterpHigh
	default:
		return InterpVeryHigh
	}
}

// DimensionScoreFor computes one dimension's score from whatever subset of
// its items is answered. With zero answered items raw is 0 and normalized
// is clamped to 0 rather than following the linear map below 1.
func DimensionScoreFor(rs *ResponseSet, dim catalog.Dimension) DimensionScore {
	raw, count := dimensionRaw(rs, dim)
	normalized := 0
	if count > 0 {
		normalized = NormalizeScore(raw)
	}
	return DimensionScore{
		Raw:            raw,
		Normalized:     normalized,
		Interpretation: InterpretScore(raw),
	}
}

// ClassifyStyle maps the two raw dimension scores onto an attachment style
// at the 4.0 midpoint. Inputs outside [1,7] indicate malformed data; the
// anomaly is logged and the classification fails closed to secure.
func ClassifyStyle(anxious, avoidant float64) AttachmentStyle {
	if anxious < 1 || anxious > 7 || avoidant < 1 || avoidant > 7 {
		log.Printf("scoring: dimension scores out of range (anxious=%.1f avoidant=%.1f), defaulting to secure", anxious, avoidant)
		return StyleSecure
	}
	switch {
	case anxious < styleMidpoint && avoidant < styleMidpoint:
		return StyleSecure
	case anxious >= styleMidpoint && avoidant < styleMidpoint:
		return StyleAnxious
	case anxious < styleMidpoint && avoidant >= styleMidpoint:
		return StyleAvoidant
	default:
		return StyleDisorganized
	}
}

// CalculateResult scores a ResponseSet. It tolerates unanswered items,
// scoring each dimension on whatever subset is present; only a missing
// ResponseSet is a contract violation. The caller attaches the result to
// its assessment.
func CalculateResult(rs *ResponseSet) (*Result, error) {
	if rs == nil {
		return nil, NewInvalidError("response set is required")
	}

	anxiety := DimensionScoreFor(rs, catalog.Anxiety)
	avoidance := DimensionScoreFor(rs, catalog.Avoidance)
	style := ClassifyStyle(anxiety.Raw, avoidance.Raw)

	answered := rs.AnsweredCount()
	return &Result{
		Anxious:  anxiety.Raw,
		Avoidant: avoidance.Raw,
		Style:    style,
		Scores: ResultScores{
			Anxiety:   anxiety,
			Avoidance: avoidance,
		},
		Statistics: Statistics{
			TotalQuestions:      catalog.TotalQuestions,
			AnsweredQuestions:   answered,
			UnansweredQuestions: catalog.TotalQuestions - answered,
			CompletionRate:      int(math.Round(float64(answered) / catalog.TotalQuestions * 100)),
		},
		Timestamp: time.Now().UTC(),
	}, nil
}
