package milestones

import (
	"os"
	"strings"
)

// Milestone is one entry of the streak threshold table. Badge rows copy the
// descriptor fields at award time, so editing a table never rewrites history.
type Milestone struct {
	Seconds int64
	Emoji   string
	Name    string
	Message string
}

// ShortTable is the development table. Thresholds are seconds-scale so a
// streak crosses milestones within one manual test session.
var ShortTable = []Milestone{
	{Seconds: 60, Emoji: "🌱", Name: "First Minute", Message: "One minute down. The counter is alive."},
	{Seconds: 300, Emoji: "💪", Name: "Five Minutes", Message: "Five minutes strong. Keep it rolling."},
	{Seconds: 600, Emoji: "⭐", Name: "Ten Minutes", Message: "Ten minutes of momentum."},
	{Seconds: 1800, Emoji: "🔥", Name: "Half Hour", Message: "Thirty minutes. This is becoming a habit."},
	{Seconds: 3600, Emoji: "🏆", Name: "One Hour", Message: "A full hour. Proud of you."},
}

// LongTable is the production table, day-scale.
var LongTable = []Milestone{
	{Seconds: 1 * day, Emoji: "🌱", Name: "First Day", Message: "24 hours clean. The hardest step is behind you."},
	{Seconds: 3 * day, Emoji: "💪", Name: "Three Days", Message: "Three days in. Your resolve is showing."},
	{Seconds: 7 * day, Emoji: "⭐", Name: "One Week", Message: "A full week. You are building something real."},
	{Seconds: 14 * day, Emoji: "🔥", Name: "Two Weeks", Message: "Fourteen days of momentum."},
	{Seconds: 30 * day, Emoji: "🏆", Name: "One Month", Message: "A month of showing up for yourself."},
	{Seconds: 90 * day, Emoji: "💎", Name: "Three Months", Message: "Ninety days. A new baseline."},
	{Seconds: 180 * day, Emoji: "🚀", Name: "Six Months", Message: "Half a year. Remarkable."},
	{Seconds: 365 * day, Emoji: "👑", Name: "One Year", Message: "One year. You did the thing."},
}

const day int64 = 86400

// ActiveTable selects the deployment's table. Production defaults to the long
// table, everything else to the short one; MILESTONE_TABLE overrides either way.
func ActiveTable() []Milestone {
	switch strings.ToLower(os.Getenv("MILESTONE_TABLE")) {
	case "long":
		return LongTable
	case "short":
		return ShortTable
	}
	if os.Getenv("APP_ENV") == "production" {
		return LongTable
	}
	return ShortTable
}

// Describe returns the descriptor for a threshold. Unknown thresholds get a
// generic descriptor so badge creation never blocks on a table miss.
func Describe(table []Milestone, seconds int64) Milestone {
	for _, m := range table {
		if m.Seconds == seconds {
			return m
		}
	}
	return Milestone{
		Seconds: seconds,
		Emoji:   "🏅",
		Name:    "Milestone",
		Message: "You reached a new milestone.",
	}
}
