package journal

// Normalized is the chat-path view of an entry: every field defaulted and
// clamped so the downstream summary never sees a gap inside the requested
// window. The dashboard and report paths do NOT use this — they keep absent
// fields absent.
type Normalized struct {
	Date            string  `json:"date"`
	Mood            float64 `json:"mood"`
	Stress          float64 `json:"stress"`
	SleepHours      float64 `json:"sleepHours"`
	Productivity    float64 `json:"productivity"`
	Overthinking    float64 `json:"overthinking"`
	ScreenTimeHours float64 `json:"screenTimeHours"`
	Exercise        bool    `json:"exercise"`
	DietScore       float64 `json:"dietScore"`
	SocialScore     float64 `json:"socialScore"`
}

// Normalize applies the chat-path defaults and clamps: scales default to the
// midpoint 5 and clamp to [1,10], sleep defaults to 6 and clamps to [0,12],
// combined screen time clamps to [0,24].
func Normalize(e Entry) Normalized {
	return Normalized{
		Date:            e.Date,
		Mood:            clamp(orDefault(e.Mood, 5), 1, 10),
		Stress:          clamp(orDefault(e.StressLevel, 5), 1, 10),
		SleepHours:      clamp(orDefault(e.SleepHours, 6), 0, 12),
		Productivity:    clamp(orDefault(e.Productivity, 5), 1, 10),
		Overthinking:    clamp(orDefault(e.Overthinking, 5), 1, 10),
		ScreenTimeHours: clamp(orDefault(e.ScreenWork, 0)+orDefault(e.ScreenEntertainment, 0), 0, 24),
		Exercise:        e.Exercised(),
		DietScore:       ternaryScore(e.DietStatus, "Good", "Bad"),
		SocialScore:     ternaryScore(e.SocialTime, "Decent", "Zero"),
	}
}

// Observation projects a normalized row for the summary builder. All fields
// are set; the chat path has no gaps by construction.
func (n Normalized) Observation() Observation {
	mood, stress, sleep := n.Mood, n.Stress, n.SleepHours
	ex := n.Exercise
	return Observation{
		Date:       n.Date,
		Mood:       &mood,
		Stress:     &stress,
		SleepHours: &sleep,
		Exercised:  &ex,
	}
}

func orDefault(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}
	return *v
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ternaryScore maps a three-state status string to 1 / 0 / 0.5.
func ternaryScore(status, good, bad string) float64 {
	switch status {
	case good:
		return 1
	case bad:
		return 0
	default:
		return 0.5
	}
}
