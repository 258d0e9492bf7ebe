package analysis

// Result is the complete analysis of one journal entry
type Result struct {
	Emotions EmotionResult `json:"emotions" yaml:"emotions"`
	Keywords []string      `json:"keywords" yaml:"keywords"`
	Trends   []Trend       `json:"trends" yaml:"trends"`
	Insights []string      `json:"insights" yaml:"insights"`
}

// EmotionResult holds the detected emotional tone of a text
type EmotionResult struct {
	Primary     string      `json:"primary" yaml:"primary"`
	Secondary   string      `json:"secondary" yaml:"secondary"`
	Intensities Intensities `json:"intensities" yaml:"intensities"`
}

// TrendType tags what kind of observation a Trend carries
type TrendType string

const (
	TrendGoalTracking TrendType = "goal-tracking"
	TrendFrequency    TrendType = "frequency"
	TrendPattern      TrendType = "pattern"
	TrendShift        TrendType = "shift"
)

// String returns the string representation
func (t TrendType) String() string {
	return string(t)
}

// IsValid validates the trend type
func (t TrendType) IsValid() bool {
	switch t {
	case TrendGoalTracking, TrendFrequency, TrendPattern, TrendShift:
		return true
	default:
		return false
	}
}

// Trend is one observation across the current and historical entries.
// Frequency is set only for frequency trends, DaysAgo only for goal-tracking.
type Trend struct {
	Type        TrendType `json:"type" yaml:"type" jsonschema:"enum=goal-tracking,enum=frequency,enum=pattern,enum=shift"`
	Description string    `json:"description" yaml:"description"`
	Frequency   int       `json:"frequency,omitempty" yaml:"frequency,omitempty"`
	DaysAgo     int       `json:"daysAgo,omitempty" yaml:"daysAgo,omitempty"`
}
