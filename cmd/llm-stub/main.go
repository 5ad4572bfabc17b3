// Command llm-stub is a tiny OpenAI-compatible server with canned replies for
// local development and integration testing without a real model.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

const curriculumJSON = `{
  "program_title": "B.Tech in Quantum Computing",
  "program_type": "B.Tech",
  "domain": "Quantum Computing",
  "academic_level": "Undergraduate",
  "total_semesters": 2,
  "program_rationale": "Stub rationale for local development.",
  "target_careers": ["Quantum Software Engineer", "Research Scientist"],
  "accreditation_aligned": "Aligned with Global Standards",
  "courses_by_semester": {
    "Semester 1": [
      {
        "course_code": "QC101",
        "course_name": "Foundations of Quantum Computing",
        "category": "Foundational",
        "description": "Stub course description.",
        "credits": 4,
        "prerequisites": [],
        "weekly_topics": [
          {"week": 1, "title": "Qubits", "description": "Stub.", "resources": ["Stub text"]}
        ],
        "outcomes": [
          {"outcome": "Explain superposition", "bloom_level": "Analyze", "code": "ACC-1"}
        ]
      }
    ],
    "Semester 2": [
      {
        "course_code": "QC201",
        "course_name": "Quantum Algorithms",
        "category": "Core",
        "description": "Stub course description.",
        "credits": 4,
        "prerequisites": ["QC101"],
        "weekly_topics": [
          {"week": 1, "title": "Grover search", "description": "Stub.", "resources": ["Stub text"]}
        ],
        "outcomes": [
          {"outcome": "Implement Grover search", "bloom_level": "Create", "code": "ACC-2"}
        ]
      }
    ]
  },
  "recommended_skills": ["Linear Algebra", "Python"],
  "industry_alignment_notes": "Stub notes.",
  "optimization_tips": ["Add a lab track."]
}`

const resourcesJSON = `{
  "moocs": [{"title": "Stub MOOC", "platform": "Coursera", "url": "https://example.com/mooc", "instructor": "A. Teacher"}],
  "books": [{"title": "Stub Book", "author": "B. Author", "edition": "1st Edition, 2024", "isbn": "978-0000000000"}],
  "youtube": [{"title": "Stub Playlist", "creator": "C. Creator", "url": "https://youtube.com/stub", "videos": "12 videos"}]
}`

func main() {
	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "test-model"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8081"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": model, "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		sys := ""
		if len(req.Messages) > 0 {
			sys = strings.TrimSpace(req.Messages[0].Content)
		}
		var content string
		switch {
		case strings.Contains(sys, "Curriculum Architect"):
			content = "```json\n" + curriculumJSON + "\n```"
		case strings.Contains(sys, "resource curator"):
			content = resourcesJSON
		case strings.Contains(sys, "curriculum designer"):
			content = "## Course: Stub Course\n### Course Overview\nStub syllabus for local development.\n\n### Learning Outcomes\n1. Stub outcome\n"
		case strings.Contains(sys, "career advisor"):
			content = "## Gap Analysis Report\n\n### Job Requirements Summary\nStub analysis for local development.\n\n### Industry Readiness Score\n7/10 - Stub.\n"
		case strings.Contains(sys, "CurrBot"):
			content = "Here is a typical semester-wise breakdown:\n- Semester 1: Programming, Mathematics\n- Semester 2: Data Structures, Statistics"
		default:
			http.Error(w, "unexpected system", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	})

	log.Printf("llm-stub listening on %s (model=%s)", addr, model)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
