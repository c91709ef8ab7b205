package suggest

// DateLayout is the wire format for every calendar date crossing the pipeline.
const DateLayout = "2006-01-02"

// Relevance is the model's judgment of a date's importance to the niches.
type Relevance string

const (
	RelevanceHigh   Relevance = "high"
	RelevanceMedium Relevance = "medium"
	RelevanceLow    Relevance = "low"
)

// Valid reports whether r is one of the three accepted levels.
func (r Relevance) Valid() bool {
	return r == RelevanceHigh || r == RelevanceMedium || r == RelevanceLow
}

// CandidateDate is a trusted commemorative-date record as stored. The
// pipeline only reads these; it never writes back.
type CandidateDate struct {
	Date        string // YYYY-MM-DD
	Description string
	Type        string
	Niches      []string // up to 3 tags
}

// RankedDate is one item of the model's answer. Untrusted until validated and
// reconciled: the date may not exist in the store at all.
type RankedDate struct {
	Date      string    `json:"date"`
	Relevance Relevance `json:"relevance"`
	Reason    string    `json:"reason"`
}

// FormattedDate is the reconciled, trusted output: every field is recovered
// from the matching CandidateDate, never taken from the model.
type FormattedDate struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Category    string `json:"category"` // commemorative | holiday | optional
	Description string `json:"description"`
}

// Categories the store is allowed to express. Anything else collapses to
// commemorative.
const (
	CategoryCommemorative = "commemorative"
	CategoryHoliday       = "holiday"
	CategoryOptional      = "optional"
)
