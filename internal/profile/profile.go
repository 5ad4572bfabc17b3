// Package profile is the template tier of curriculum resolution. A domain
// profile plus program metadata expands deterministically into a full
// curriculum: courses cycle through the profile's ordered list, weekly topics
// mix course-specific titles with the domain topic pool, and categories
// follow semester position. Synthesis never fails; unknown domains and
// program types fall back to baked-in defaults.
package profile

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/currhub/curricuforge/internal/schema"
)

// Has reports whether a domain profile exists for the exact domain string.
// The resolution pipeline only routes to this tier on an exact hit; synthesis
// with the default profile is reserved for direct callers.
func Has(domain string) bool {
	_, ok := domains[domain]
	return ok
}

// Program returns the structural metadata for a program type, defaulting to
// the undergraduate B.Tech profile.
func Program(programType string) ProgramMeta {
	if m, ok := programs[programType]; ok {
		return m
	}
	return programs[defaultProgram]
}

// Synthesize expands a domain profile into a complete curriculum payload.
// Identical requests produce identical payloads.
func Synthesize(req schema.CurriculumRequest) schema.CurriculumPayload {
	programType := req.ProgramType
	if programType == "" {
		programType = defaultProgram
	}
	domain := req.Domain
	if domain == "" {
		domain = defaultDomain
	}
	level := req.AcademicLevel
	if level == "" {
		level = "Undergraduate"
	}
	duration := req.DurationSemesters
	if duration <= 0 {
		duration = 8
	}
	accreditation := req.AccreditationBody
	if accreditation == "" {
		accreditation = "NAAC"
	}

	tpl, ok := domains[domain]
	if !ok {
		tpl = domains[defaultDomain]
	}
	meta := Program(programType)

	numSemesters := min(duration, meta.Semesters)
	coursesPerSem := 2
	if numSemesters >= 4 {
		coursesPerSem = 3
	}
	prefix := abbrev(domain)

	bySemester := make(map[string][]schema.Course, numSemesters)
	courseIdx := 0
	for sem := 1; sem <= numSemesters; sem++ {
		courses := make([]schema.Course, 0, coursesPerSem)
		for c := 0; c < coursesPerSem; c++ {
			if courseIdx >= len(tpl.Courses) {
				courseIdx = 0
			}
			name := tpl.Courses[courseIdx]

			category := "Core Requirement"
			switch {
			case sem == 1:
				category = "Foundational"
			case sem == numSemesters:
				category = "Capstone"
			}

			var prereqs []string
			if sem > 1 {
				prereqs = []string{prefix + "101"}
			}

			courses = append(courses, schema.Course{
				CourseCode:    prefix + strconv.Itoa(100*sem+c+1),
				CourseName:    domain + ": " + name,
				Category:      category,
				Description:   "Comprehensive study of " + name + " in the context of " + domain + ". Students develop both theoretical understanding and practical skills.",
				Credits:       meta.Credits,
				Prerequisites: prereqs,
				WeeklyTopics:  weeklyTopics(name, tpl.Topics, courseIdx),
				Outcomes: []schema.LearningOutcome{
					{Outcome: "Apply " + name + " concepts to solve real-world problems", BloomLevel: "Apply", Code: accreditation + "-PO1"},
					{Outcome: "Evaluate " + name + " solutions critically", BloomLevel: "Evaluate", Code: accreditation + "-PO2"},
				},
			})
			courseIdx++
		}
		bySemester[schema.SemesterKey(sem)] = courses
	}

	return schema.CurriculumPayload{
		ProgramTitle:         programType + " in " + domain,
		ProgramType:          programType,
		Domain:               domain,
		AcademicLevel:        level,
		TotalSemesters:       numSemesters,
		ProgramRationale:     "This " + programType + " in " + domain + " is designed to meet the growing industry demand for " + domain + " professionals. The curriculum provides rigorous theoretical foundations combined with hands-on practical experience, preparing graduates for leadership roles in the field.",
		TargetCareers:        append([]string(nil), tpl.Careers...),
		AccreditationAligned: "Aligned with " + accreditation + " Standards",
		CoursesBySemester:    bySemester,
		RecommendedSkills:    append([]string(nil), tpl.Skills...),
		IndustryAlignmentNotes: "This curriculum is aligned with current industry trends in " + domain +
			" and meets " + accreditation + " accreditation requirements.",
		OptimizationTips: []string{
			"Consider adding electives in emerging " + domain + " technologies",
			"Include industry internship for practical experience",
		},
	}
}

// weeklyTopics builds the fixed six-week plan for one course: weeks 1-2 are
// course-specific introductions, weeks 3-4 draw from the domain topic pool at
// an offset derived from the running course index (so courses sharing a pool
// see different topics), and weeks 5-6 are advanced course-specific titles.
func weeklyTopics(courseName string, pool []string, courseIdx int) []schema.WeeklyTopic {
	specific := []string{
		"Introduction to " + courseName,
		"Core Concepts of " + courseName,
		"Advanced " + courseName + " Techniques",
		"Practical Applications of " + courseName,
		"Case Studies in " + courseName,
		"Industry Tools for " + courseName,
		"Research Trends in " + courseName,
		"Capstone Project: " + courseName,
	}

	weeks := make([]schema.WeeklyTopic, 0, 6)
	for w := 1; w <= 6; w++ {
		var title string
		switch {
		case w <= 2:
			title = specific[w-1]
		case w <= 4:
			title = pool[(courseIdx*6+w)%len(pool)]
		default:
			title = specific[w]
		}
		n := strconv.Itoa(w)
		weeks = append(weeks, schema.WeeklyTopic{
			Week:        w,
			Title:       title,
			Description: "Week " + n + ": In-depth study of " + title + " within " + courseName + ".",
			Resources:   []string{"Textbook Ch. " + n, "Lab Exercise " + n, "Case Study " + n},
		})
	}
	return weeks
}

// abbrev derives the two-letter course-code prefix from a domain string.
func abbrev(s string) string {
	r := []rune(strings.ToUpper(s))
	for len(r) > 0 && unicode.IsSpace(r[0]) {
		r = r[1:]
	}
	switch {
	case len(r) >= 2:
		return string(r[:2])
	case len(r) == 1:
		return string(r)
	default:
		return "GE"
	}
}
