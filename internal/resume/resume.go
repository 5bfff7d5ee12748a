package resume

// ResumeData is the structured form of a parsed résumé.
type ResumeData struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Summary    string       `json:"summary"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
}

type Experience struct {
	JobTitle         string   `json:"jobTitle"`
	Company          string   `json:"company"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// CareerRoadmap is the skill-gap plan generated for a target role.
type CareerRoadmap struct {
	TargetRole    string        `json:"targetRole"`
	SkillGaps     []string      `json:"skillGaps"`
	ShortTermPlan []RoadmapStep `json:"shortTermPlan"`
	LongTermPlan  []RoadmapStep `json:"longTermPlan"`
}

type RoadmapStep struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	Resources   []string `json:"resources"`
}
