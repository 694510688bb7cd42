// Package httpapi exposes the core stores and services as a small JSON API.
// It is the session boundary: handlers validate input, call into the stores
// and translate failures to status codes, and nothing below it knows HTTP.
package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Vladislav15-maker/FamilyCourse/internal/auth"
	"github.com/Vladislav15-maker/FamilyCourse/internal/catalog"
	"github.com/Vladislav15-maker/FamilyCourse/internal/practice"
	"github.com/Vladislav15-maker/FamilyCourse/internal/progress"
	"github.com/Vladislav15-maker/FamilyCourse/internal/speech"
)

// Server bundles the application state behind the HTTP handlers.
type Server struct {
	roster   *auth.Roster
	cat      *catalog.Catalog
	prog     *progress.Store
	practice *practice.Service
	speaker  speech.Speaker
}

// New creates a Server over the given application state. A nil speaker
// disables the speak endpoint's effect without disabling the endpoint.
func New(roster *auth.Roster, cat *catalog.Catalog, prog *progress.Store, svc *practice.Service, speaker speech.Speaker) *Server {
	if speaker == nil {
		speaker = speech.Nop{}
	}
	return &Server{
		roster:   roster,
		cat:      cat,
		prog:     prog,
		practice: svc,
		speaker:  speaker,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/login", s.handleLogin)

	mux.HandleFunc("GET /api/units", s.handleUnits)
	mux.HandleFunc("GET /api/units/{unitID}", s.handleUnit)
	mux.HandleFunc("GET /api/units/{unitID}/rounds/{roundID}/words", s.handleRoundWords)

	mux.HandleFunc("POST /api/progress", s.handleRecordAttempt)
	mux.HandleFunc("GET /api/progress", s.handleAttempts)
	mux.HandleFunc("GET /api/scores", s.handleScores)

	mux.HandleFunc("PUT /api/grades", s.handleUpsertGrade)
	mux.HandleFunc("GET /api/grades", s.handleGrades)

	mux.HandleFunc("POST /api/practice-test", s.handleGenerateTest)
	mux.HandleFunc("GET /api/practice-test", s.handleGetTest)

	mux.HandleFunc("POST /api/speak", s.handleSpeak)

	return mux
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if !decodeBody(w, r, &req) {
		return
	}

	user, ok := s.roster.Authenticate(req.Username, req.Password)
	if !ok {
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.cat.Units())
}

func (s *Server) handleUnit(w http.ResponseWriter, r *http.Request) {
	unit, ok := s.cat.Unit(r.PathValue("unitID"))
	if !ok {
		writeError(w, http.StatusNotFound, "unit not found")
		return
	}
	writeJSON(w, http.StatusOK, unit)
}

func (s *Server) handleRoundWords(w http.ResponseWriter, r *http.Request) {
	words := s.cat.RoundWords(r.PathValue("unitID"), r.PathValue("roundID"))
	if words == nil {
		words = []catalog.Word{}
	}
	writeJSON(w, http.StatusOK, words)
}

func (s *Server) handleRecordAttempt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID      string   `json:"studentId"`
		UnitID         string   `json:"unitId"`
		RoundID        string   `json:"roundId"`
		Score          int      `json:"score"`
		IncorrectWords []string `json:"incorrectWords"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StudentID == "" || req.UnitID == "" || req.RoundID == "" {
		writeError(w, http.StatusBadRequest, "studentId, unitId and roundId are required")
		return
	}

	a := s.prog.RecordAttempt(r.Context(), req.StudentID, req.UnitID, req.RoundID, req.Score, req.IncorrectWords)
	writeJSON(w, http.StatusCreated, a)
}

func (s *Server) handleAttempts(w http.ResponseWriter, r *http.Request) {
	studentID := r.URL.Query().Get("student")
	unitID := r.URL.Query().Get("unit")
	roundID := r.URL.Query().Get("round")
	if studentID == "" {
		writeError(w, http.StatusBadRequest, "student query parameter is required")
		return
	}

	var attempts []progress.Attempt
	switch {
	case unitID != "" && roundID != "":
		attempts = s.prog.AttemptsForRound(studentID, unitID, roundID)
	case unitID != "":
		attempts = s.prog.AttemptsFor(studentID, unitID)
	default:
		attempts = s.prog.AttemptsForStudent(studentID)
	}
	if attempts == nil {
		attempts = []progress.Attempt{}
	}
	writeJSON(w, http.StatusOK, attempts)
}

// roundScore pairs a round with the student's highest score on it.
type roundScore struct {
	RoundID string `json:"roundId"`
	Highest int    `json:"highest"`
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	studentID := r.URL.Query().Get("student")
	unitID := r.URL.Query().Get("unit")
	if studentID == "" || unitID == "" {
		writeError(w, http.StatusBadRequest, "student and unit query parameters are required")
		return
	}

	unit, ok := s.cat.Unit(unitID)
	if !ok {
		writeError(w, http.StatusNotFound, "unit not found")
		return
	}

	rounds := make([]roundScore, len(unit.Rounds))
	for i, rd := range unit.Rounds {
		rounds[i] = roundScore{
			RoundID: rd.ID,
			Highest: s.prog.HighestRoundScore(studentID, unitID, rd.ID),
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"studentId": studentID,
		"unitId":    unitID,
		"overall":   s.prog.OverallUnitScore(studentID, unitID),
		"rounds":    rounds,
	})
}

func (s *Server) handleUpsertGrade(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID string `json:"studentId"`
		UnitID    string `json:"unitId"`
		Grade     int    `json:"grade"`
		GradedBy  string `json:"gradedBy"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StudentID == "" || req.UnitID == "" || req.GradedBy == "" {
		writeError(w, http.StatusBadRequest, "studentId, unitId and gradedBy are required")
		return
	}

	g, err := s.prog.UpsertGrade(r.Context(), req.StudentID, req.UnitID, req.Grade, req.GradedBy)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleGrades(w http.ResponseWriter, r *http.Request) {
	studentID := r.URL.Query().Get("student")
	unitID := r.URL.Query().Get("unit")
	if studentID == "" {
		writeError(w, http.StatusBadRequest, "student query parameter is required")
		return
	}

	if unitID != "" {
		g, ok := s.prog.GradeFor(studentID, unitID)
		if !ok {
			writeError(w, http.StatusNotFound, "no grade for this unit")
			return
		}
		writeJSON(w, http.StatusOK, g)
		return
	}

	grades := s.prog.GradesForStudent(studentID)
	if grades == nil {
		grades = []progress.Grade{}
	}
	writeJSON(w, http.StatusOK, grades)
}

func (s *Server) handleGenerateTest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudentID string   `json:"studentId"`
		UnitID    string   `json:"unitId"`
		WeakWords []string `json:"weakWords"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.StudentID == "" || req.UnitID == "" {
		writeError(w, http.StatusBadRequest, "studentId and unitId are required")
		return
	}

	weakWords := req.WeakWords
	if len(weakWords) == 0 {
		weakWords = s.practice.DeriveWeakWords(req.StudentID, req.UnitID)
	}

	test, err := s.practice.Generate(r.Context(), req.StudentID, req.UnitID, weakWords)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, test)
	case errors.Is(err, practice.ErrGenerating):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, practice.ErrNoWeakWords):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		// Bad unit id is a caller mistake; everything else is the
		// generation backend failing.
		if _, numErr := catalog.UnitNumber(req.UnitID); numErr != nil {
			writeError(w, http.StatusBadRequest, numErr.Error())
			return
		}
		log.Printf("practice test generation failed for %s/%s: %v", req.StudentID, req.UnitID, err)
		writeError(w, http.StatusBadGateway, "test generation failed")
	}
}

func (s *Server) handleGetTest(w http.ResponseWriter, r *http.Request) {
	studentID := r.URL.Query().Get("student")
	unitID := r.URL.Query().Get("unit")
	if studentID == "" || unitID == "" {
		writeError(w, http.StatusBadRequest, "student and unit query parameters are required")
		return
	}

	state := s.practice.State(studentID, unitID)
	test, ok := s.practice.TestFor(studentID, unitID)
	if !ok && state == practice.StateNoTest {
		writeError(w, http.StatusNotFound, "no test for this unit")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"state": state.String(),
		"test":  test,
	})
}

func (s *Server) handleSpeak(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WordID string `json:"wordId"`
		UnitID string `json:"unitId"`
		Lang   string `json:"lang"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UnitID == "" || req.WordID == "" {
		writeError(w, http.StatusBadRequest, "unitId and wordId are required")
		return
	}

	word, ok := s.cat.Word(req.UnitID, req.WordID)
	if !ok {
		writeError(w, http.StatusNotFound, "word not found")
		return
	}

	lang := req.Lang
	if lang == "" {
		lang = "en-US"
	}
	if err := s.speaker.Speak(word.English, lang); err != nil {
		writeError(w, http.StatusBadGateway, "speech synthesis failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
