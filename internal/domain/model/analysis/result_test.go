package analysis

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIntensities_MarshalJSON_KeepsOrder(t *testing.T) {
	in := Intensities{{"Neutral", 70}, {"Reflective", 30}, {"Analytical", 20}, {"Curious", 15}}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `{"Neutral":70,"Reflective":30,"Analytical":20,"Curious":15}`, string(data))
}

func TestIntensities_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(Intensities{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(data))
}

func TestIntensities_MarshalYAML_KeepsOrder(t *testing.T) {
	doc := struct {
		Intensities Intensities `yaml:"intensities"`
	}{Intensities{{"Joy", 90}, {"Sadness", 40}, {"Neutral", 10}}}

	data, err := yaml.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "intensities:\n    Joy: 90\n    Sadness: 40\n    Neutral: 10\n", string(data))
}

func TestIntensities_Names(t *testing.T) {
	in := Intensities{{"Burnout", 90}, {"Joy", 40}}

	assert.Equal(t, []string{"Burnout", "Joy"}, in.Names())
	assert.Empty(t, Intensities(nil).Names())
}

func TestTrend_OptionalFieldsOmitted(t *testing.T) {
	data, err := json.Marshal(Trend{Type: TrendPattern, Description: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"pattern","description":"x"}`, string(data))

	data, err = json.Marshal(Trend{Type: TrendGoalTracking, Description: "y", DaysAgo: 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"goal-tracking","description":"y","daysAgo":5}`, string(data))
}

func TestTrendType_IsValid(t *testing.T) {
	for _, tt := range []TrendType{TrendGoalTracking, TrendFrequency, TrendPattern, TrendShift} {
		assert.True(t, tt.IsValid(), tt.String())
	}
	assert.False(t, TrendType("mood").IsValid())
}
