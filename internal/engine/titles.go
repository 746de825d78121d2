package engine

// CharacterTitle names the character by level; from level 7 the title
// specializes on the highest virtue (earlier virtue wins ties).
func CharacterTitle(level int, stats Stats) string {
	if level >= 10 {
		return "Ascended Arbiter"
	}
	if level >= 7 {
		switch highestVirtue(stats) {
		case "consistency":
			return "Templar Guardian"
		case "emotionalIntelligence":
			return "Templar Empath"
		case "interdependence":
			return "Templar Unifier"
		default:
			return "Templar Sage"
		}
	}
	if level >= 4 {
		return "Templar Knight"
	}
	return "Templar Initiate"
}

func highestVirtue(stats Stats) string {
	name := "mentalClarity"
	best := stats.MentalClarity
	if stats.Consistency > best {
		name, best = "consistency", stats.Consistency
	}
	if stats.EmotionalIntelligence > best {
		name, best = "emotionalIntelligence", stats.EmotionalIntelligence
	}
	if stats.Interdependence > best {
		name = "interdependence"
	}
	return name
}
