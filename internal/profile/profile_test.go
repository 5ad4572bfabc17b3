package profile

import (
	"encoding/json"
	"bytes"
	"testing"

	"github.com/currhub/curricuforge/internal/schema"
)

func TestHas(t *testing.T) {
	if !Has("Artificial Intelligence") {
		t.Fatal("expected profile for Artificial Intelligence")
	}
	if Has("Quantum Computing") {
		t.Fatal("did not expect profile for Quantum Computing")
	}
	if Has("artificial intelligence") {
		t.Fatal("domain match must be exact, not case-folded")
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	req := schema.CurriculumRequest{
		ProgramType:       "B.Tech",
		Domain:            "Artificial Intelligence",
		AcademicLevel:     "Undergraduate",
		DurationSemesters: 8,
		AccreditationBody: "NBA",
	}
	a, err := json.Marshal(Synthesize(req))
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(Synthesize(req))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("identical requests must produce identical payloads")
	}
}

func TestSynthesize_SemesterBoundUsesProgramCap(t *testing.T) {
	// MBA caps at 4 semesters regardless of a longer request.
	p := Synthesize(schema.CurriculumRequest{ProgramType: "MBA", Domain: "Finance", DurationSemesters: 8})
	if p.TotalSemesters != 4 {
		t.Fatalf("MBA cap: expected 4 semesters, got %d", p.TotalSemesters)
	}
	if len(p.CoursesBySemester) != p.TotalSemesters {
		t.Fatalf("semester map size %d != total_semesters %d", len(p.CoursesBySemester), p.TotalSemesters)
	}
	// A shorter request wins over the cap.
	p = Synthesize(schema.CurriculumRequest{ProgramType: "B.Tech", Domain: "Data Science", DurationSemesters: 3})
	if p.TotalSemesters != 3 {
		t.Fatalf("expected 3 semesters, got %d", p.TotalSemesters)
	}
}

func TestSynthesize_CoursesPerSemester(t *testing.T) {
	long := Synthesize(schema.CurriculumRequest{ProgramType: "B.Tech", Domain: "Cybersecurity", DurationSemesters: 6})
	for key, courses := range long.CoursesBySemester {
		if len(courses) != 3 {
			t.Fatalf("%s: expected 3 courses, got %d", key, len(courses))
		}
	}
	short := Synthesize(schema.CurriculumRequest{ProgramType: "Certification", Domain: "Cybersecurity", DurationSemesters: 2})
	if short.TotalSemesters != 2 {
		t.Fatalf("expected 2 semesters, got %d", short.TotalSemesters)
	}
	for key, courses := range short.CoursesBySemester {
		if len(courses) != 2 {
			t.Fatalf("%s: expected 2 courses for a short program, got %d", key, len(courses))
		}
	}
}

func TestSynthesize_WeeklyTopicsAndCategories(t *testing.T) {
	p := Synthesize(schema.CurriculumRequest{ProgramType: "B.Tech", Domain: "Artificial Intelligence", DurationSemesters: 8})
	for sem := 1; sem <= p.TotalSemesters; sem++ {
		courses, ok := p.CoursesBySemester[schema.SemesterKey(sem)]
		if !ok {
			t.Fatalf("missing semester %d", sem)
		}
		for _, c := range courses {
			if len(c.WeeklyTopics) != 6 {
				t.Fatalf("%s: expected 6 weekly topics, got %d", c.CourseCode, len(c.WeeklyTopics))
			}
			for i, w := range c.WeeklyTopics {
				if w.Week != i+1 {
					t.Fatalf("%s: week %d out of order (got %d)", c.CourseCode, i+1, w.Week)
				}
				if len(w.Resources) == 0 {
					t.Fatalf("%s week %d: empty resources", c.CourseCode, w.Week)
				}
			}
			want := "Core Requirement"
			if sem == 1 {
				want = "Foundational"
			} else if sem == p.TotalSemesters {
				want = "Capstone"
			}
			if c.Category != want {
				t.Fatalf("semester %d course %s: category %q, want %q", sem, c.CourseCode, c.Category, want)
			}
			if sem == 1 && len(c.Prerequisites) != 0 {
				t.Fatalf("semester 1 course %s has prerequisites %v", c.CourseCode, c.Prerequisites)
			}
			if sem > 1 && len(c.Prerequisites) == 0 {
				t.Fatalf("semester %d course %s missing prerequisite", sem, c.CourseCode)
			}
		}
	}
}

func TestSynthesize_CourseCyclingAndCodes(t *testing.T) {
	p := Synthesize(schema.CurriculumRequest{ProgramType: "B.Tech", Domain: "Data Science", DurationSemesters: 8})
	s1 := p.CoursesBySemester["Semester 1"]
	if s1[0].CourseName != "Data Science: Introduction to Data Science" {
		t.Fatalf("first course: %q", s1[0].CourseName)
	}
	if s1[0].CourseCode != "DA101" || s1[2].CourseCode != "DA103" {
		t.Fatalf("semester 1 codes: %q %q", s1[0].CourseCode, s1[2].CourseCode)
	}
	s2 := p.CoursesBySemester["Semester 2"]
	if s2[0].CourseCode != "DA201" {
		t.Fatalf("semester 2 first code: %q", s2[0].CourseCode)
	}
	// 8 course names, 3 per semester: semester 3 starts back at the top of
	// the profile list (indices 6, 7, then wrap to 0).
	s3 := p.CoursesBySemester["Semester 3"]
	if s3[2].CourseName != "Data Science: Introduction to Data Science" {
		t.Fatalf("expected cycling back to first course, got %q", s3[2].CourseName)
	}
}

func TestSynthesize_UnknownDomainUsesDefaultProfile(t *testing.T) {
	p := Synthesize(schema.CurriculumRequest{ProgramType: "B.Tech", Domain: "Underwater Basket Weaving", DurationSemesters: 4})
	if p.Domain != "Underwater Basket Weaving" {
		t.Fatalf("domain should be echoed verbatim, got %q", p.Domain)
	}
	// Course names come from the Computer Science default profile.
	if got := p.CoursesBySemester["Semester 1"][0].CourseName; got != "Underwater Basket Weaving: Programming Fundamentals" {
		t.Fatalf("expected default profile courses, got %q", got)
	}
}

func TestSynthesize_DefaultsWhenFieldsEmpty(t *testing.T) {
	p := Synthesize(schema.CurriculumRequest{})
	if p.ProgramType != "B.Tech" || p.Domain != "Computer Science" {
		t.Fatalf("defaults: %q %q", p.ProgramType, p.Domain)
	}
	if p.TotalSemesters != 8 {
		t.Fatalf("default duration: %d", p.TotalSemesters)
	}
	if p.AccreditationAligned != "Aligned with NAAC Standards" {
		t.Fatalf("default accreditation: %q", p.AccreditationAligned)
	}
}
