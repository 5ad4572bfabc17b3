// Package fallback is the terminal tier of curriculum resolution: a fully
// deterministic synthesizer that classifies an arbitrary free-text domain
// into a knowledge category and expands the category's course pools into a
// complete multi-semester plan. It never fails, which is what lets the
// pipeline guarantee a payload for every request.
package fallback

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/currhub/curricuforge/internal/schema"
)

const maxSemesters = 8

// FallbackNotice is embedded in industry_alignment_notes so callers can
// detect procedurally generated output from the payload alone.
const FallbackNotice = "Smart Fallback"

var titleCaser = cases.Title(language.English, cases.NoLower)

// Classify maps a free-text domain string to a knowledge category by ordered
// keyword matching. The domain is lower-cased and padded with spaces so
// word-boundary keywords like " ai " also match at the start and end of the
// string ("AI and Cybersecurity" classifies as ai, not cybersecurity).
func Classify(domain string) string {
	d := " " + strings.ToLower(domain) + " "
	for _, r := range rules {
		for _, k := range r.keywords {
			if strings.Contains(d, k) {
				return r.category
			}
		}
	}
	return defaultCategory
}

// Synthesize builds a complete curriculum payload for any request. Identical
// inputs produce byte-identical payloads.
func Synthesize(req schema.CurriculumRequest) schema.CurriculumPayload {
	category := Classify(req.Domain)
	sector := categories[category]

	programType := req.ProgramType
	if programType == "" {
		programType = "Degree"
	}
	level := req.AcademicLevel
	if level == "" {
		level = "Undergraduate"
	}
	duration := req.DurationSemesters
	if duration <= 0 {
		duration = 4
	}
	semesters := min(duration, maxSemesters)

	domain := strings.TrimSpace(req.Domain)
	if domain == "" {
		domain = "Advanced Technology"
	} else {
		domain = titleCaser.String(domain)
	}

	coursesPerSem := 2
	if semesters >= 4 {
		coursesPerSem = 3
	}
	prefix := strings.ToUpper(category[:2])
	topics := sector.Topics

	bySemester := make(map[string][]schema.Course, semesters)
	for sem := 1; sem <= semesters; sem++ {
		courses := make([]schema.Course, 0, coursesPerSem)
		for i := 1; i <= coursesPerSem; i++ {
			isCapstone := sem == semesters && i == coursesPerSem
			isFoundational := sem == 1 && i == 1

			var name, cat string
			switch {
			case isCapstone:
				name = "Strategic Capstone: " + domain + " Integration"
				cat = "Capstone"
			case isFoundational:
				name = "Foundations of " + domain
				cat = "Foundational"
			default:
				module := sector.Core[(sem+i)%len(sector.Core)]
				name = domain + " " + module
				cat = "Core Requirement"
			}

			weeks := make([]schema.WeeklyTopic, 0, 6)
			for w := 1; w <= 6; w++ {
				topic := topics[(sem*i*w)%len(topics)]
				weeks = append(weeks, schema.WeeklyTopic{
					Week:        w,
					Title:       topic,
					Description: "Comprehensive analysis and practical implementation of " + topic + " in the context of " + domain + ".",
					Resources:   []string{"Academic Paper: " + topic + " in 2026", "Industry Standard for " + domain},
				})
			}

			var prereqs []string
			if sem > 1 {
				prereqs = []string{prefix + "101"}
			}

			courses = append(courses, schema.Course{
				CourseCode:    prefix + strconv.Itoa(100*sem+i),
				CourseName:    name,
				Category:      cat,
				Description:   "This intensive course focuses on " + name + ", delivering a deep-dive into " + topics[0] + " and " + topics[1] + ". Students will master the core professional competencies required for " + domain + " roles.",
				Credits:       4,
				Prerequisites: prereqs,
				WeeklyTopics:  weeks,
				Outcomes: []schema.LearningOutcome{
					{Outcome: "Synthesize complex " + domain + " theories into actionable strategies", BloomLevel: "Create", Code: "ABET-A1"},
					{Outcome: "Evaluate the efficacy of " + domain + " implementations at scale", BloomLevel: "Evaluate", Code: "NAAC-B2"},
				},
			})
		}
		bySemester[schema.SemesterKey(sem)] = courses
	}

	body := req.AccreditationBody
	if body == "" {
		body = "Global"
	}

	return schema.CurriculumPayload{
		ProgramTitle:         "Professional " + programType + " in " + domain,
		ProgramType:          programType,
		Domain:               domain,
		AcademicLevel:        level,
		TotalSemesters:       semesters,
		ProgramRationale:     "This elite " + programType + " in " + domain + " is specifically engineered to address the critical talent shortage in the " + domain + " sector. The curriculum transitions from foundational theoretical rigor to advanced optimization, ensuring that graduates can navigate the complexities of 2026-era challenges with precision and strategic foresight.",
		TargetCareers:        []string{domain + " Architect", "Chief " + domain + " Officer", "Director of Strategy", "Senior Researcher", "Lead Engineer"},
		AccreditationAligned: "Fully aligned with " + body + " 2026 Excellence Framework (" + FallbackNotice + " Mode)",
		CoursesBySemester:    bySemester,
		RecommendedSkills:    []string{"Advanced " + domain + " Modeling", "Strategic Roadmapping", "High-Stakes Technical Communication", "Systemic Optimization"},
		IndustryAlignmentNotes: "Note: CurricuForge is currently in '" + FallbackNotice + "' mode because the generative tier was unavailable. " +
			"The curriculum is procedurally generated but remains specifically mapped to its academic sector.",
		OptimizationTips: []string{
			"Increase focus on sustainability and lifecycle management within the " + domain + " framework.",
			"Adopt a cross-disciplinary approach by integrating modules from related fields.",
		},
	}
}
