package server

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/skillsift/skillsift/internal/document"
	"github.com/skillsift/skillsift/internal/jsearch"
	"github.com/skillsift/skillsift/internal/matching"
)

const (
	defaultQuery    = "Software Developer"
	defaultLocation = "Anywhere in India"

	// maxResumeSize bounds the multipart form held in memory.
	maxResumeSize = 10 << 20
)

type matchResponse struct {
	ResumeSkills []string          `json:"resume_skills"`
	JobMatches   []*matching.Match `json:"job_matches"`
}

// handleJobRoles provides the role catalog for front-end dropdowns.
func (s *Server) handleJobRoles(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.config.JobRoles)
}

// handleLocations provides the location catalog for front-end dropdowns.
func (s *Server) handleLocations(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.config.Locations)
}

// handleMatchJobs extracts skills from the uploaded resume, fetches one
// page of postings and responds with the ranked matches.
func (s *Server) handleMatchJobs(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "no resume file provided")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "no resume file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		s.errorResponse(w, http.StatusBadRequest, "no selected file")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("reading uploaded resume", zap.Error(err))
		s.errorResponse(w, http.StatusInternalServerError, "an internal server error occurred")
		return
	}

	resumeText, err := document.ReadText(header.Filename, data)
	if err != nil {
		if errors.Is(err, document.ErrEmptyDocument) {
			s.errorResponse(w, http.StatusBadRequest, "resume file is empty")
			return
		}

		s.logger.Warn("unreadable resume",
			zap.String("filename", header.Filename),
			zap.Error(err),
		)
		s.errorResponse(w, http.StatusUnprocessableEntity, "could not read resume file")
		return
	}

	params := &jsearch.SearchParams{
		Query:          formValue(r, "job_query", defaultQuery),
		Location:       formValue(r, "job_location", defaultLocation),
		InternshipOnly: boolValue(r, "is_internship"),
		EntryLevelOnly: boolValue(r, "is_entry_level"),
		Page:           pageValue(r),
	}

	resumeSkills := s.dictionary.Extract(resumeText)
	jobs := s.source.Search(params)
	matches := matching.Rank(resumeSkills, jobs, s.dictionary)

	s.jsonResponse(w, http.StatusOK, matchResponse{
		ResumeSkills: resumeSkills.Sorted(),
		JobMatches:   matches,
	})
}

func formValue(r *http.Request, name, fallback string) string {
	if v := r.FormValue(name); v != "" {
		return v
	}

	return fallback
}

func boolValue(r *http.Request, name string) bool {
	return strings.EqualFold(r.FormValue(name), "true")
}

func pageValue(r *http.Request) int {
	page, err := strconv.Atoi(r.FormValue("page"))
	if err != nil || page < 1 {
		return 1
	}

	return page
}
