// Package server exposes the curriculum pipeline and assistants over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/currhub/curricuforge/internal/assist"
	"github.com/currhub/curricuforge/internal/export"
	"github.com/currhub/curricuforge/internal/jobpost"
	"github.com/currhub/curricuforge/internal/pipeline"
	"github.com/currhub/curricuforge/internal/schema"
)

// Server wires handlers to the pipeline and assistants.
type Server struct {
	Resolver     *pipeline.Resolver
	Assistant    *assist.Assistant
	JobPosts     *jobpost.Fetcher
	AllowOrigins []string
}

// Router builds the gin engine with logging, recovery and CORS installed.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger())

	origins := s.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:8000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type"},
	}))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		api.POST("/generate", s.handleGenerate)
		api.POST("/chat", s.handleChat)
		api.POST("/syllabus", s.handleSyllabus)
		api.POST("/gap", s.handleGap)
		api.POST("/resources", s.handleResources)
		api.POST("/export/pdf", s.handleExportPDF)
	}
	return router
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		id := uuid.NewString()
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
		log.Info().
			Str("request_id", id).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req schema.CurriculumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	payload, source := s.Resolver.Resolve(c.Request.Context(), req)
	c.Header("X-Curriculum-Source", string(source))
	c.JSON(http.StatusOK, payload)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	reply, err := s.Assistant.Chat(c.Request.Context(), req.Message)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"response": friendlyError(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

type syllabusRequest struct {
	CourseName string `json:"course_name"`
	Program    string `json:"program"`
	Domain     string `json:"domain"`
}

func (s *Server) handleSyllabus(c *gin.Context) {
	var req syllabusRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.CourseName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_name is required"})
		return
	}
	syllabus, err := s.Assistant.Syllabus(c.Request.Context(), req.CourseName, req.Program, req.Domain)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"syllabus": friendlyError(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"syllabus": syllabus})
}

type gapRequest struct {
	CurriculumSummary string `json:"curriculum_summary"`
	JobDescription    string `json:"job_description"`
	JobURL            string `json:"job_url"`
}

func (s *Server) handleGap(c *gin.Context) {
	var req gapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	description := req.JobDescription
	if description == "" && req.JobURL != "" {
		text, err := s.JobPosts.Text(c.Request.Context(), req.JobURL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read job posting: " + err.Error()})
			return
		}
		description = text
	}
	if strings.TrimSpace(description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job_description or job_url is required"})
		return
	}

	analysis, err := s.Assistant.AnalyzeGap(c.Request.Context(), req.CurriculumSummary, description)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"analysis": friendlyError(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis})
}

type resourcesRequest struct {
	CourseName string `json:"course_name"`
	Domain     string `json:"domain"`
}

func (s *Server) handleResources(c *gin.Context) {
	var req resourcesRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.CourseName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_name is required"})
		return
	}
	rs, err := s.Assistant.Resources(c.Request.Context(), req.CourseName, req.Domain)
	if err != nil {
		// The UI expects the three lists even on failure.
		c.JSON(http.StatusOK, gin.H{
			"error":   friendlyError(err),
			"moocs":   []assist.MOOC{},
			"books":   []assist.Book{},
			"youtube": []assist.Playlist{},
		})
		return
	}
	c.JSON(http.StatusOK, rs)
}

func (s *Server) handleExportPDF(c *gin.Context) {
	var payload schema.CurriculumPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid curriculum payload"})
		return
	}
	var buf bytes.Buffer
	if err := export.WritePDF(payload, &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "pdf rendering failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="curriculum.pdf"`)
	c.Header("Content-Length", strconv.Itoa(buf.Len()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// friendlyError maps transport failures to the short messages the UI shows.
func friendlyError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "Response timed out. Please try again."
	}
	return "Error: " + truncate(err.Error(), 100)
}

// truncate shortens s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
