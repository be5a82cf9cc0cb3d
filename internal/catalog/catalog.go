// Package catalog holds the fixed ECR-R inventory: 36 items split evenly
// across the anxiety and avoidance dimensions, with reverse-scored items
// marked. The data is reference material fixed at build time; scoring
// correctness depends on it being reproduced exactly.
package catalog

// Dimension is one of the two axes the ECR-R inventory measures.
type Dimension string

const (
	Anxiety   Dimension = "anxiety"
	Avoidance Dimension = "avoidance"
)

// TotalQuestions is the fixed size of the inventory.
const TotalQuestions = 36

// ScaleMin and ScaleMax bound the 7-point Likert response range.
const (
	ScaleMin = 1
	ScaleMax = 7
)

// Question is one immutable inventory item.
type Question struct {
	ID        int               `json:"id"`
	Dimension Dimension         `json:"dimension"`
	Reverse   bool              `json:"reverse_scored"`
	StemI18n  map[string]string `json:"stem_i18n,omitempty"`
}

// ScaleInfo describes the inventory itself.
type ScaleInfo struct {
	Name       string      `json:"name"`
	FullName   string      `json:"full_name"`
	Version    string      `json:"version"`
	Total      int         `json:"total_questions"`
	Dimensions []Dimension `json:"dimensions"`
	Range      [2]int      `json:"scale_range"`
}

// Info returns the static scale metadata.
func Info() ScaleInfo {
	return ScaleInfo{
		Name:       "ECR-R",
		FullName:   "Experiences in Close Relationships-Revised",
		Version:    "2000",
		Total:      TotalQuestions,
		Dimensions: []Dimension{Anxiety, Avoidance},
		Range:      [2]int{ScaleMin, ScaleMax},
	}
}

// reverseScored lists the item ids whose responses are inverted (8 - value)
// before aggregation.
var reverseScored = map[int]bool{
	6: true, 9: true, 15: true, 19: true, 22: true, 25: true,
	27: true, 30: true, 31: true, 33: true, 36: true,
}

// IsReverseScored reports whether the item with the given id is
// reverse-scored. Ids outside 1..36 are never reverse-scored.
func IsReverseScored(id int) bool {
	return reverseScored[id]
}

// DimensionOf returns the dimension of the item with the given id.
// Anxiety items carry odd ids, avoidance items even ids. The second
// return is false for ids outside 1..36.
func DimensionOf(id int) (Dimension, bool) {
	if id < 1 || id > TotalQuestions {
		return "", false
	}
	if id%2 == 1 {
		return Anxiety, true
	}
	return Avoidance, true
}

// OrderedItems returns all 36 questions in presentation order, which
// equals id order. The returned slice is a copy; the catalog itself
// never mutates.
func OrderedItems() []Question {
	out := make([]Question, len(questions))
	copy(out, questions[:])
	return out
}

// ItemsOf returns the 18 questions of the given dimension, ordered by id.
func ItemsOf(dim Dimension) []Question {
	out := make([]Question, 0, TotalQuestions/2)
	for _, q := range questions {
		if q.Dimension == dim {
			out = append(out, q)
		}
	}
	return out
}

// ItemIDsOf returns the ids of the given dimension's items, ordered.
func ItemIDsOf(dim Dimension) []int {
	items := ItemsOf(dim)
	ids := make([]int, len(items))
	for i, q := range items {
		ids[i] = q.ID
	}
	return ids
}

// QuestionByID returns the question with the given id, or nil when the id
// is outside 1..36.
func QuestionByID(id int) *Question {
	if id < 1 || id > TotalQuestions {
		return nil
	}
	q := questions[id-1]
	return &q
}
