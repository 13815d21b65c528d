package report

// Insight and recommendation rules are independent threshold checks; any
// subset may fire, and their order is fixed. They intentionally recompute
// off the averages rather than reading the risk/habit blocks.

func buildInsights(avg Averages, moodVolatility int) []Insight {
	insights := []Insight{}

	if avg.Mood != nil && *avg.Mood > 7 {
		insights = append(insights, Insight{
			Text:       "Your overall mood is trending high. This correlates with your current routines.",
			Confidence: "medium",
		})
	}
	if moodVolatility > 40 {
		insights = append(insights, Insight{
			Text:       "Significant mood fluctuations detected. Consider identifying external triggers.",
			Confidence: "high",
		})
	}
	if avg.Overthinking != nil && *avg.Overthinking > 6 {
		insights = append(insights, Insight{
			Text:       "High levels of overthinking are being reported frequently.",
			Confidence: "medium",
		})
	}
	if avg.SleepHours != nil && *avg.SleepHours < 6 {
		insights = append(insights, Insight{
			Text:       "Your average sleep duration is low. Poor sleep may be affecting mood and focus.",
			Confidence: "high",
		})
	}
	if avg.StressLevel != nil && *avg.StressLevel > 6 {
		insights = append(insights, Insight{
			Text:       "Stress levels have been consistently high during this period.",
			Confidence: "medium",
		})
	}

	return insights
}

func buildRecommendations(avg Averages, moodVolatility int, habits []Habit) []string {
	recommendations := []string{}

	if avg.SleepHours != nil && *avg.SleepHours < 7 {
		recommendations = append(recommendations,
			"Prioritize a consistent sleep schedule to improve cognitive function.")
	}
	if moodVolatility > 50 {
		recommendations = append(recommendations,
			"Consider tracking triggers for mood shifts to identify patterns.")
	}
	if avg.StressLevel != nil && *avg.StressLevel > 7 {
		recommendations = append(recommendations,
			"Incorporate short mindfulness or breathing exercises during high-stress windows.")
	}
	for _, h := range habits {
		if h.Name == "Exercise" && h.Consistency < 40 {
			recommendations = append(recommendations,
				"Increasing physical activity frequency may help stabilize your mood.")
			break
		}
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"Maintain your current routines; consistency is key to your recent stability.")
	}
	return recommendations
}
