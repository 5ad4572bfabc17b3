package schema

import "fmt"

// CurriculumRequest is the input accepted by the generate endpoint and the
// resolution pipeline. Domain is free text and drives both exact lookup and
// keyword classification; it is intentionally not normalized.
type CurriculumRequest struct {
	ProgramType       string `json:"program_type"`
	Domain            string `json:"domain"`
	AcademicLevel     string `json:"academic_level"`
	DurationSemesters int    `json:"duration_semesters"`
	AccreditationBody string `json:"accreditation_body"`
	IndustryKeywords  string `json:"industry_keywords,omitempty"`
}

// LearningOutcome tags a measurable outcome with a Bloom taxonomy level and
// an accreditation-style code.
type LearningOutcome struct {
	Outcome    string `json:"outcome"`
	BloomLevel string `json:"bloom_level"`
	Code       string `json:"code,omitempty"`
}

// WeeklyTopic is one week of a course plan.
type WeeklyTopic struct {
	Week        int      `json:"week"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Resources   []string `json:"resources,omitempty"`
}

// Course is a single course within a semester.
type Course struct {
	CourseCode    string            `json:"course_code"`
	CourseName    string            `json:"course_name"`
	Category      string            `json:"category"`
	Description   string            `json:"description"`
	Credits       int               `json:"credits"`
	Prerequisites []string          `json:"prerequisites"`
	WeeklyTopics  []WeeklyTopic     `json:"weekly_topics"`
	Outcomes      []LearningOutcome `json:"outcomes"`
}

// CurriculumPayload is the output shape shared by every resolution tier.
// CoursesBySemester is keyed by "Semester N" labels, 1-indexed.
type CurriculumPayload struct {
	ProgramTitle           string              `json:"program_title"`
	ProgramType            string              `json:"program_type"`
	Domain                 string              `json:"domain"`
	AcademicLevel          string              `json:"academic_level"`
	TotalSemesters         int                 `json:"total_semesters"`
	ProgramRationale       string              `json:"program_rationale"`
	TargetCareers          []string            `json:"target_careers"`
	AccreditationAligned   string              `json:"accreditation_aligned"`
	CoursesBySemester      map[string][]Course `json:"courses_by_semester"`
	RecommendedSkills      []string            `json:"recommended_skills"`
	IndustryAlignmentNotes string              `json:"industry_alignment_notes"`
	OptimizationTips       []string            `json:"optimization_tips"`
}

// SemesterKey returns the canonical label for a 1-indexed semester number.
func SemesterKey(n int) string {
	return fmt.Sprintf("Semester %d", n)
}

// Clone returns a deep copy so stored records can be overridden per request
// without mutating shared state.
func (p CurriculumPayload) Clone() CurriculumPayload {
	out := p
	out.TargetCareers = append([]string(nil), p.TargetCareers...)
	out.RecommendedSkills = append([]string(nil), p.RecommendedSkills...)
	out.OptimizationTips = append([]string(nil), p.OptimizationTips...)
	if p.CoursesBySemester != nil {
		out.CoursesBySemester = make(map[string][]Course, len(p.CoursesBySemester))
		for k, courses := range p.CoursesBySemester {
			cp := make([]Course, len(courses))
			for i, c := range courses {
				cp[i] = c.clone()
			}
			out.CoursesBySemester[k] = cp
		}
	}
	return out
}

func (c Course) clone() Course {
	out := c
	out.Prerequisites = append([]string(nil), c.Prerequisites...)
	out.WeeklyTopics = make([]WeeklyTopic, len(c.WeeklyTopics))
	for i, w := range c.WeeklyTopics {
		out.WeeklyTopics[i] = w
		out.WeeklyTopics[i].Resources = append([]string(nil), w.Resources...)
	}
	out.Outcomes = append([]LearningOutcome(nil), c.Outcomes...)
	return out
}
