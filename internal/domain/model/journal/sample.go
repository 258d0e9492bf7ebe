package journal

// sampleEntries is the bundled history used for trend analysis when no
// corpus is configured. Order matters: trend detection reads it positionally.
var sampleEntries = []struct {
	date    string
	content string
}{
	{
		date:    "2025-04-04",
		content: "I've been feeling overwhelmed lately with all the work piling up. My goals seem further away than ever. It's frustrating to feel stuck in this cycle of burnout and recovery. I need to find a better balance.",
	},
	{
		date:    "2025-04-02",
		content: "Had a good conversation with my mentor today. She reminded me why I started this journey in the first place. My purpose isn't just about achievement, it's about growth and impact. Feeling a bit more hopeful now.",
	},
	{
		date:    "2025-03-31",
		content: "Another day of pushing through. The future feels uncertain, but I'm trying to stay focused on what I can control. My goals haven't changed, just the timeline.",
	},
	{
		date:    "2025-03-29",
		content: "Feeling burnt out again. The constant pressure is taking a toll. I wonder if I'm on the right path or if I need to reconsider my direction. My motivation is at an all-time low.",
	},
	{
		date:    "2025-03-27",
		content: "Had a breakthrough moment today! The project I've been struggling with finally came together. This reminds me why I set these goals in the first place. The journey is tough but worth it.",
	},
	{
		date:    "2025-03-25",
		content: "I'm worried about the direction things are heading. The constant stress is affecting my health. Need to remember my purpose and why I started this in the first place.",
	},
	{
		date:    "2025-03-23",
		content: "Taking time to reflect on my goals today. Am I still aligned with my original purpose? Some adjustments might be needed, but the core remains the same.",
	},
}

// SampleEntries returns a fresh copy of the bundled sample history, newest first
func SampleEntries() []Entry {
	entries := make([]Entry, 0, len(sampleEntries))
	for _, s := range sampleEntries {
		date, err := ParseDate(s.date)
		if err != nil {
			panic(err)
		}
		entries = append(entries, ReconstructEntry(fixedEntryID(date), date, s.content))
	}
	return entries
}
