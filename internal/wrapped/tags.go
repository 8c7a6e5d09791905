package wrapped

import "github.com/chesswrapped/chesswrapped/internal/domain"

// Descriptive tag tables. Read-only process-wide configuration: the format
// tag is keyed by (most-played time-class, win-rate tier) and the time tag
// by the busiest hour's range.

var formatTagsByTimeClass = map[domain.TimeClass][3]string{
	domain.TimeClassBullet: {"Bullet Assassin", "Bullet Brawler", "Bullet Adrenaline Junkie"},
	domain.TimeClassBlitz:  {"Blitz Boss", "Blitz Regular", "Blitz Dreamer"},
	domain.TimeClassRapid:  {"Rapid Tactician", "Rapid Strategist", "Rapid Explorer"},
	domain.TimeClassDaily:  {"Patient Planner", "Daily Strategist", "Daily Wanderer"},
}

// formatTag picks the descriptive tag for the most-played time-class and
// win-rate tier (>=60, >=50, below).
func formatTag(mostPlayed domain.TimeClass, winRate float64) string {
	tags, ok := formatTagsByTimeClass[mostPlayed]
	if !ok {
		return ""
	}
	switch {
	case winRate >= 60:
		return tags[0]
	case winRate >= 50:
		return tags[1]
	default:
		return tags[2]
	}
}

// timeTag picks the descriptive tag for the busiest hour of day (UTC).
func timeTag(busiestHour int) string {
	switch {
	case busiestHour >= 5 && busiestHour < 9:
		return "Early Bird"
	case busiestHour >= 9 && busiestHour < 12:
		return "Morning Grinder"
	case busiestHour >= 12 && busiestHour < 17:
		return "Afternoon Tactician"
	case busiestHour >= 17 && busiestHour < 21:
		return "Evening Warrior"
	default:
		// 21:00-05:00
		return "Night Owl"
	}
}
