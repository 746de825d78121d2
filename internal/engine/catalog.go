package engine

import "github.com/Dacosmicgiant/LevelUp/internal/storage"

// WeekendTask is a flexible activity available only on Saturday/Sunday.
// IDs continue the time-block namespace so the two never collide.
type WeekendTask struct {
	ID       int
	Activity string
	Category storage.Category
}

// WeeklyQuest is one week of the program. Challenge identity is the index
// within Challenges; the persistence format keys by (week, index).
type WeeklyQuest struct {
	Week        int
	Title       string
	Description string
	Challenges  []string
}

// AchievementDef is a badge the player can earn. Virtue names which of the
// four derived stats the badge celebrates ("all" for journey-wide ones).
type AchievementDef struct {
	ID          string
	Title       string
	Description string
	Icon        string
	Virtue      string
}

// DefaultTimeBlocks is the stock weekday schedule.
var DefaultTimeBlocks = []storage.TimeBlock{
	// Morning (6:00 AM - 12:00 PM)
	{ID: 1, Time: "06:00 - 07:00", Activity: "Exercise", Category: storage.CategoryPhysical},
	{ID: 2, Time: "07:00 - 08:00", Activity: "Freshen up + breakfast", Category: storage.CategorySelfCare},
	{ID: 3, Time: "08:00 - 09:30", Activity: "Intellect", Category: storage.CategoryIndividual},
	{ID: 4, Time: "09:30 - 10:00", Activity: "Mindfulness Break", Category: storage.CategoryMental},
	{ID: 5, Time: "10:00 - 11:30", Activity: "DSA + Aptitude", Category: storage.CategoryIndividual},
	{ID: 6, Time: "11:30 - 12:00", Activity: "Reflection Break", Category: storage.CategoryMental},

	// Afternoon (12:00 PM - 6:00 PM)
	{ID: 7, Time: "12:00 - 01:00", Activity: "Minor Projects", Category: storage.CategoryIndividual},
	{ID: 8, Time: "01:00 - 01:30", Activity: "Lunch", Category: storage.CategorySelfCare},
	{ID: 9, Time: "01:30 - 02:00", Activity: "Minor Projects", Category: storage.CategoryIndividual},
	{ID: 10, Time: "02:00 - 02:30", Activity: "Team Communication", Category: storage.CategoryTeam},
	{ID: 11, Time: "02:30 - 04:00", Activity: "Major Project", Category: storage.CategoryTeam},
	{ID: 12, Time: "04:00 - 04:30", Activity: "Fresh Air Break", Category: storage.CategoryMental},
	{ID: 13, Time: "04:30 - 06:00", Activity: "Intellect", Category: storage.CategoryIndividual},

	// Evening (6:00 PM - 12:00 AM)
	{ID: 14, Time: "06:00 - 07:00", Activity: "Exercise", Category: storage.CategoryPhysical},
	{ID: 15, Time: "07:00 - 07:30", Activity: "Rest", Category: storage.CategorySelfCare},
	{ID: 16, Time: "07:30 - 08:30", Activity: "DSA", Category: storage.CategoryIndividual},
	{ID: 17, Time: "08:30 - 09:00", Activity: "Dinner", Category: storage.CategorySelfCare},
	{ID: 18, Time: "09:00 - 09:30", Activity: "Aptitude", Category: storage.CategoryIndividual},
	{ID: 19, Time: "09:30 - 10:00", Activity: "Team Planning", Category: storage.CategoryTeam},
	{ID: 20, Time: "10:00 - 11:30", Activity: "Major Project", Category: storage.CategoryTeam},
	{ID: 21, Time: "11:30 - 12:00", Activity: "Minor Projects", Category: storage.CategoryIndividual},
}

// WeekendTasks is the stock weekend catalog (always 8 entries).
var WeekendTasks = []WeekendTask{
	{ID: 22, Activity: "Project Review", Category: storage.CategoryTeam},
	{ID: 23, Activity: "Code Refactoring", Category: storage.CategoryIndividual},
	{ID: 24, Activity: "Learning New Technology", Category: storage.CategoryIndividual},
	{ID: 25, Activity: "Templar Meditation", Category: storage.CategoryMental},
	{ID: 26, Activity: "Team Retrospective", Category: storage.CategoryTeam},
	{ID: 27, Activity: "Documentation", Category: storage.CategoryIndividual},
	{ID: 28, Activity: "Physical Training", Category: storage.CategoryPhysical},
	{ID: 29, Activity: "Strategic Planning", Category: storage.CategoryIndividual},
}

// DefaultActivityXP is awarded for any activity without a listed value.
const DefaultActivityXP = 10

var activityXP = map[string]int{
	// Daily schedule activities
	"Exercise":               15,
	"Freshen up + breakfast": 5,
	"Intellect":              20,
	"Mindfulness Break":      10,
	"DSA + Aptitude":         20,
	"Reflection Break":       10,
	"Minor Projects":         15,
	"Lunch":                  5,
	"Team Communication":     15,
	"Major Project":          25,
	"Fresh Air Break":        8,
	"Rest":                   5,
	"DSA":                    15,
	"Aptitude":               10,
	"Team Planning":          15,
	"Dinner":                 5,

	// Weekend activities
	"Project Review":          25,
	"Code Refactoring":        20,
	"Learning New Technology": 20,
	"Templar Meditation":      15,
	"Team Retrospective":      25,
	"Documentation":           15,
	"Physical Training":       15,
	"Strategic Planning":      20,
}

// XPForActivity returns the XP value for an activity name.
func XPForActivity(name string) int {
	if xp, ok := activityXP[name]; ok {
		return xp
	}
	return DefaultActivityXP
}

// ActiveTimeBlocks returns the weekday catalog for this journey: the custom
// timetable when one was configured during onboarding, otherwise the stock
// schedule.
func ActiveTimeBlocks(st *storage.Settings) []storage.TimeBlock {
	if st != nil && len(st.CustomTimeBlocks) > 0 {
		return st.CustomTimeBlocks
	}
	return DefaultTimeBlocks
}

// BlockByID finds a time block in the given catalog.
func BlockByID(blocks []storage.TimeBlock, id int) (storage.TimeBlock, bool) {
	for _, b := range blocks {
		if b.ID == id {
			return b, true
		}
	}
	return storage.TimeBlock{}, false
}

// WeekendTaskByID finds a weekend task in the stock catalog.
func WeekendTaskByID(id int) (WeekendTask, bool) {
	for _, t := range WeekendTasks {
		if t.ID == id {
			return t, true
		}
	}
	return WeekendTask{}, false
}

// QuestForWeek returns the quest for a week in 1..TotalWeeks.
func QuestForWeek(week int) (WeeklyQuest, bool) {
	if week < 1 || week > len(WeeklyQuests) {
		return WeeklyQuest{}, false
	}
	return WeeklyQuests[week-1], true
}

// WeeklyQuests holds the ten-week program.
var WeeklyQuests = []WeeklyQuest{
	{
		Week:        1,
		Title:       "The Call to Adventure",
		Description: "Establish your daily ritual and begin to recognize your patterns.",
		Challenges: []string{
			"Practice the 'Breath of Four Realms' meditation during each break",
			"Create a visual progress tracker for your Intellect app",
			"Document each team member's strengths in your Arbiter's Codex",
			"Complete at least one Team Communication or Team Planning session",
			"Begin journaling daily, recording both victories and challenges",
			"Identify three common distractions that pull you from your focus",
			"On the weekend, complete at least one Project Review session",
		},
	},
	{
		Week:        2,
		Title:       "Forging the Foundation",
		Description: "Build consistency and record your accomplishments.",
		Challenges: []string{
			"Record one specific accomplishment in your journal each day",
			"Create a symbol or note for each algorithm you master",
			"Hold a team meeting where you practice active listening more than speaking",
			"Maintain at least 70% schedule completion throughout the week",
			"Exercise at least 5 times during the week",
			"Identify a minor issue in your project and fix it without being asked",
			"On the weekend, lead a Team Retrospective discussing the week's progress",
		},
	},
	{
		Week:        3,
		Title:       "The Shadow Within",
		Description: "Confront your distractions and begin to share with your team.",
		Challenges: []string{
			"Create a quick reminder technique for each of your common distractions",
			"During a team session, share one concern or excitement with your team",
			"Implement the most challenging feature of your Intellect app",
			"Assign clear responsibilities to team members based on their strengths",
			"Complete all Mindfulness and Reflection breaks for three consecutive days",
			"Document your overthinking patterns and how you're addressing them",
			"On the weekend, practice Code Refactoring on your recent work",
		},
	},
	{
		Week:        4,
		Title:       "The Crucible of Persistence",
		Description: "Focus intensely on maintaining consistency throughout the week.",
		Challenges: []string{
			"Rate your focus quality for each session from 1-10 in your journal",
			"Master one complex algorithm completely rather than sampling many",
			"Create a visual progress board that all team members can access",
			"Complete all scheduled activities for at least 5 consecutive days",
			"Spend at least 30 minutes on Physical Training every day",
			"Reach out to team members who are struggling with their tasks",
			"On the weekend, devote time to Learning New Technology relevant to your projects",
		},
	},
	{
		Week:        5,
		Title:       "The Broken Bridge",
		Description: "Practice asking for help and building interdependence.",
		Challenges: []string{
			"For one task you've been avoiding, explicitly ask for assistance",
			"Ask one specific question to someone who might help your progress each day",
			"Seek feedback on your Intellect app from two external sources",
			"Hold a structured feedback session where every team member shares",
			"Document instances where collaboration led to better outcomes",
			"Practice delegation by assigning at least one task you would normally do yourself",
			"On the weekend, lead a Strategic Planning session for the coming week",
		},
	},
	{
		Week:        6,
		Title:       "The Templar's Reflection",
		Description: "Assess your progress on all four virtues and plan adjustments.",
		Challenges: []string{
			"Add a 5-minute reflection at the end of each day in your journal",
			"Create a visual knowledge map connecting all algorithms you've mastered",
			"Check in individually with each team member to understand their challenges",
			"Complete an honest self-assessment of your four virtues in your journal",
			"Identify one improvement you can make in each virtue area",
			"Begin implementing improvements to your weakest virtue",
			"On the weekend, practice Templar Meditation focused on your growth areas",
		},
	},
	{
		Week:        7,
		Title:       "The Integrated Warrior",
		Description: "Balance all four virtues simultaneously in your daily practice.",
		Challenges: []string{
			"During breaks, alternate between different virtue-building activities",
			"Implement user feedback from previous weeks into your Intellect app",
			"Delegate one responsibility you usually handle yourself to a team member",
			"Balance individual and team activities throughout the week",
			"Practice translating technical concepts into clear, simple explanations",
			"Document how your four virtues are beginning to work together",
			"On the weekend, update your Documentation to reflect recent progress",
		},
	},
	{
		Week:        8,
		Title:       "The Dawn Judgment",
		Description: "Evaluate your projects with clear, unbiased understanding.",
		Challenges: []string{
			"Each morning, identify the single most important task for each project",
			"Hold a structured meeting where each team member receives balanced feedback",
			"Create visualizations of the improvements made to your projects",
			"Assess which virtue has grown the most and which needs more attention",
			"Practice making decisive choices without overthinking",
			"Begin final preparations for your project presentations",
			"On the weekend, conduct a comprehensive Project Review of all work",
		},
	},
	{
		Week:        9,
		Title:       "The Final Trial",
		Description: "Apply all four virtues intensively as you complete your projects.",
		Challenges: []string{
			"Push your limits while maintaining balance between all four virtues",
			"Finalize your Intellect application with polished, user-ready features",
			"Lead a comprehensive review session for all team projects",
			"Document specific instances where you've overcome each of your four challenges",
			"Begin preparing your transformation journey presentation",
			"Practice explaining your projects to someone outside your field",
			"On the weekend, engage in intense Physical Training followed by Templar Meditation",
		},
	},
	{
		Week:        10,
		Title:       "The Ascended Arbiter",
		Description: "Complete your projects and document your transformation.",
		Challenges: []string{
			"Finalize documentation of your transformation journey",
			"Prepare presentations showcasing both technical accomplishments and personal growth",
			"Complete all projects to a high standard of excellence",
			"Lead a final team retrospective celebrating collective achievements",
			"Create a sustainability plan for maintaining your four virtues beyond this journey",
			"Express gratitude to those who supported your transformation",
			"On the final day, perform the Arbiter's Ritual: reviewing your entire journey in your journal",
		},
	},
}

// Achievements is the badge catalog.
var Achievements = []AchievementDef{
	{ID: "mindful_arbiter", Title: "Mindful Arbiter", Description: "Complete all meditation sessions for a full week", Icon: "🧘", Virtue: "mentalClarity"},
	{ID: "foundation_builder", Title: "Foundation Builder", Description: "Maintain 80% completion rate for an entire week", Icon: "🏗️", Virtue: "consistency"},
	{ID: "shadow_binder", Title: "Shadow Binder", Description: "Successfully identify and counter all your common distractions", Icon: "🔮", Virtue: "mentalClarity"},
	{ID: "unbroken_chain", Title: "Unbroken Chain", Description: "Complete 7 consecutive days without missing any scheduled sessions", Icon: "⛓️", Virtue: "consistency"},
	{ID: "humble_strength", Title: "Humble Strength", Description: "Ask for help or feedback at least 10 times in a week", Icon: "🤲", Virtue: "interdependence"},
	{ID: "clear_sight", Title: "Clear Sight", Description: "Complete an honest self-assessment and implement improvements", Icon: "👁️", Virtue: "mentalClarity"},
	{ID: "balanced_arbiter", Title: "Balanced Arbiter", Description: "Achieve a score of at least 6 in all four virtues", Icon: "⚖️", Virtue: "all"},
	{ID: "wise_judge", Title: "Wise Judge", Description: "Successfully lead a balanced feedback session with your team", Icon: "📜", Virtue: "emotionalIntelligence"},
	{ID: "templar_resolve", Title: "Templar's Resolve", Description: "Complete Week 9 with at least 90% schedule adherence", Icon: "🛡️", Virtue: "consistency"},
	{ID: "ascended_arbiter", Title: "Ascended Arbiter", Description: "Complete the full 10-week journey and all major projects", Icon: "👑", Virtue: "all"},
}
