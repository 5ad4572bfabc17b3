// Package export renders curriculum payloads to downloadable documents.
package export

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/currhub/curricuforge/internal/schema"
)

// WritePDF renders the curriculum as a simple A4 document: program header,
// rationale, semester-by-semester course listings, then careers, skills and
// optimization tips.
func WritePDF(p schema.CurriculumPayload, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	heading := func(size float64, text string) {
		pdf.SetFont("Helvetica", "B", size)
		pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
	}
	para := func(text string) {
		if strings.TrimSpace(text) == "" {
			return
		}
		pdf.MultiCell(0, 5, text, "", "L", false)
		pdf.Ln(2)
	}
	bullets := func(items []string) {
		for _, it := range items {
			pdf.MultiCell(0, 5, "- "+it, "", "L", false)
		}
		if len(items) > 0 {
			pdf.Ln(2)
		}
	}

	heading(16, p.ProgramTitle)
	meta := p.ProgramType + " | " + p.Domain + " | " + p.AcademicLevel +
		" | " + strconv.Itoa(p.TotalSemesters) + " semesters"
	para(meta)
	para(p.AccreditationAligned)

	if p.ProgramRationale != "" {
		heading(13, "Program Rationale")
		para(p.ProgramRationale)
	}

	for _, key := range sortedSemesterKeys(p.CoursesBySemester) {
		heading(13, key)
		for _, c := range p.CoursesBySemester[key] {
			heading(11, c.CourseCode+" - "+c.CourseName+" ("+strconv.Itoa(c.Credits)+" credits)")
			para(c.Description)
			if len(c.Prerequisites) > 0 {
				para("Prerequisites: " + strings.Join(c.Prerequisites, ", "))
			}
			for _, wk := range c.WeeklyTopics {
				pdf.MultiCell(0, 5, "Week "+strconv.Itoa(wk.Week)+": "+wk.Title, "", "L", false)
			}
			pdf.Ln(2)
		}
	}

	if len(p.TargetCareers) > 0 {
		heading(13, "Target Careers")
		bullets(p.TargetCareers)
	}
	if len(p.RecommendedSkills) > 0 {
		heading(13, "Recommended Skills")
		bullets(p.RecommendedSkills)
	}
	para(p.IndustryAlignmentNotes)
	if len(p.OptimizationTips) > 0 {
		heading(13, "Optimization Tips")
		bullets(p.OptimizationTips)
	}

	return pdf.Output(w)
}

// sortedSemesterKeys orders "Semester N" keys numerically. Keys without a
// trailing number sort last, alphabetically.
func sortedSemesterKeys(m map[string][]schema.Course) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	num := func(k string) (int, bool) {
		i := strings.LastIndexByte(k, ' ')
		if i < 0 {
			return 0, false
		}
		n, err := strconv.Atoi(k[i+1:])
		return n, err == nil
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, oki := num(keys[i])
		nj, okj := num(keys[j])
		if oki && okj {
			return ni < nj
		}
		if oki != okj {
			return oki
		}
		return keys[i] < keys[j]
	})
	return keys
}
