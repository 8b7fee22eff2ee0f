package services

// MotivationalMessage picks the message for the dashboard insight card.
// This is a strict priority cascade: conditions overlap (a 2-day streak
// with an upward trend matches two rules in spirit) and the first match
// wins, so rule order must not be rearranged.
func MotivationalMessage(streak int, trend WeeklyTrend, successRate int) string {
	switch {
	case streak >= 30:
		return "Incredible! A month of consistency. You're unstoppable! 🏆"
	case streak >= 14:
		return "Two weeks strong! You're building real momentum. 🚀"
	case streak >= 7:
		return "One week streak! Habits are forming. Keep it up! ⭐"
	case streak >= 3:
		return "Three days in a row! You're on a roll. 🔥"
	case streak == 1:
		return "Great start today! Every journey begins with a single step."
	case trend.Direction == TrendUp:
		return "Your week is trending up! Keep the momentum going."
	case successRate >= 70:
		return "Strong track record! You're doing great overall."
	case trend.ThisWeekTotal == 0:
		return "Ready to log today? Small wins add up to big results."
	default:
		return "Every day is a fresh opportunity. You've got this! 💪"
	}
}
