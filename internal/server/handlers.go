package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/ondernemersloket/loket/internal/database"
	"github.com/ondernemersloket/loket/internal/match"
	"github.com/ondernemersloket/loket/internal/opportunity"
	"github.com/ondernemersloket/loket/internal/profile"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The portal frontend is served from a different origin in the demo
	// deployment.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// requireAuth validates the bearer token on every API call behind login.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" || !s.sessions.Valid(token) {
			respondError(w, http.StatusUnauthorized, "login required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	// Websocket clients can't set headers from the browser API.
	return r.URL.Query().Get("token")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Health(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Simulated identity: any credentials sign in the demo account.
	token := s.sessions.Create()
	user, err := s.currentProfile(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	s.log.Info("login", zap.String("company", user.Company))
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"profile": user,
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.Revoke(bearerToken(r))
	respondJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// handlePrograms runs the matching pipeline for the current profile with
// the facets and page given as query parameters.
func (s *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentProfile(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	q := r.URL.Query()
	facets := match.FacetFilters{
		IncomeLevel:      match.IncomeLevel(q.Get("income")),
		FilingStatus:     match.FilingStatus(q.Get("filing")),
		HouseholdSize:    match.HouseholdSize(q.Get("household")),
		AgeRange:         match.AgeRange(q.Get("age")),
		EmploymentStatus: match.EmploymentStatus(q.Get("employment")),
		ExpenseType:      match.ExpenseType(q.Get("expense")),
	}

	results, summary, err := match.Rank(s.programs, user, facets, s.matcher, s.scorer)
	if err != nil {
		var invalid *profile.InvalidProfileError
		if errors.As(err, &invalid) {
			respondError(w, http.StatusUnprocessableEntity, invalid.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "matching failed")
		return
	}

	page := intParam(q.Get("page"), 1)
	size := intParam(q.Get("size"), s.cfg.Server.PageSize)

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"results": match.Paginate(results, page, size),
		"summary": summary,
		"page":    page,
		"size":    size,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentProfile(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	_, summary, err := match.Rank(s.programs, user, match.FacetFilters{}, s.matcher, s.scorer)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "matching failed")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"total":   summary.Total,
		"matched": summary.Matched,
		"percent": summary.Percent(),
	})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentProfile(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var user profile.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := user.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if user.KvK == "" {
		user.KvK = profile.Demo().KvK
	}

	record := toRecord(user)
	if err := s.db.SaveCompanyProfile(r.Context(), record); err != nil {
		s.log.Error("save profile", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	user, err := s.currentProfile(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	results, _, err := match.Rank(s.programs, user, match.FacetFilters{}, s.matcher, s.scorer)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "matching failed")
		return
	}

	var found *match.Result
	for i := range results {
		if strings.EqualFold(results[i].Program.DisplayName(), name) {
			found = &results[i]
			break
		}
	}
	if found == nil {
		respondError(w, http.StatusNotFound, "program not found or not eligible")
		return
	}

	record := toRecord(user)
	if err := s.db.SaveCompanyProfile(r.Context(), record); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	app := &database.Application{
		ProfileID:   record.ID,
		ProgramName: found.Program.DisplayName(),
		Score:       found.Score,
	}
	if err := s.db.CreateApplication(r.Context(), app); err != nil {
		s.log.Error("create application", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "failed to submit application")
		return
	}

	s.log.Info("application submitted",
		zap.String("program", app.ProgramName),
		zap.Int("score", app.Score),
	)
	respondJSON(w, http.StatusCreated, app)
}

func (s *Server) handleApplications(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentProfile(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	record, err := s.db.GetCompanyProfileByKvK(r.Context(), user.KvK)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if record == nil {
		respondJSON(w, http.StatusOK, []database.Application{})
		return
	}

	apps, err := s.db.ListApplications(r.Context(), record.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list applications")
		return
	}
	if apps == nil {
		apps = []database.Application{}
	}
	respondJSON(w, http.StatusOK, apps)
}

func (s *Server) handleOpportunities(w http.ResponseWriter, r *http.Request) {
	user, err := s.currentProfile(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		city = user.Location
	}

	opps := opportunity.ForCity(city)
	if opps == nil {
		opps = []opportunity.Opportunity{}
	}
	respondJSON(w, http.StatusOK, opps)
}

func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" || !s.sessions.Valid(token) {
		respondError(w, http.StatusUnauthorized, "login required")
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	s.hub.Register(conn)

	// Drain control frames; the feed is one-way.
	go func() {
		defer s.hub.Unregister(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// currentProfile returns the stored company profile for the demo account,
// falling back to the built-in demo record when nothing is stored yet.
func (s *Server) currentProfile(ctx context.Context) (profile.UserProfile, error) {
	demo := profile.Demo()

	record, err := s.db.GetCompanyProfileByKvK(ctx, demo.KvK)
	if err != nil {
		return profile.UserProfile{}, err
	}
	if record == nil {
		return demo, nil
	}
	return fromRecord(record), nil
}

func toRecord(u profile.UserProfile) *database.CompanyProfile {
	var email *string
	if u.Email != "" {
		email = &u.Email
	}
	return &database.CompanyProfile{
		OwnerName:     u.Name,
		CompanyName:   u.Company,
		KvKNumber:     u.KvK,
		Email:         email,
		Location:      u.Location,
		EmployeeCount: u.EmployeeCount,
		AnnualRevenue: u.AnnualRevenue,
		Sector:        u.Sector,
		BusinessKind:  u.BusinessKind,
	}
}

func fromRecord(r *database.CompanyProfile) profile.UserProfile {
	email := ""
	if r.Email != nil {
		email = *r.Email
	}
	return profile.UserProfile{
		Name:          r.OwnerName,
		Company:       r.CompanyName,
		KvK:           r.KvKNumber,
		Email:         email,
		Location:      r.Location,
		EmployeeCount: r.EmployeeCount,
		AnnualRevenue: r.AnnualRevenue,
		Sector:        r.Sector,
		BusinessKind:  r.BusinessKind,
	}
}

func intParam(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
