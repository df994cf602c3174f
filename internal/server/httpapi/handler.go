package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/miniter/internal/common"
)

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Profile  string `json:"profile"`
	Password string `json:"password"`
}

type userResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Profile string `json:"profile"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

type tweetRequest struct {
	Tweet string `json:"tweet"`
}

type followRequest struct {
	Follow int64 `json:"follow"`
}

type unfollowRequest struct {
	Unfollow int64 `json:"unfollow"`
}

type timelineEntryResponse struct {
	UserID int64  `json:"user_id"`
	Tweet  string `json:"tweet"`
}

type timelineResponse struct {
	UserID   int64                   `json:"user_id"`
	Timeline []timelineEntryResponse `json:"timeline"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *HTTPServer) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("pong"))
}

func (s *HTTPServer) SignUp(w http.ResponseWriter, r *http.Request) {

	var req signUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	user, err := s.users.SignUp(r.Context(), req.Name, req.Email, req.Profile, req.Password)
	if err != nil {
		s.logger.Error(r.Context(), "sign-up failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	s.logger.Info(r.Context(), "user registered", "user_id", user.ID)
	writeJSON(w, http.StatusOK, userResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Profile: user.Profile,
	})
}

func (s *HTTPServer) Login(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token})
}

func (s *HTTPServer) Tweet(w http.ResponseWriter, r *http.Request) {

	actorID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if _, err := s.posts.Publish(r.Context(), actorID, req.Tweet); err != nil {
		if errors.Is(err, common.ErrPostTooLong) {
			writeError(w, http.StatusBadRequest, "text too long")
			return
		}
		s.logger.Error(r.Context(), "tweet failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *HTTPServer) Follow(w http.ResponseWriter, r *http.Request) {

	actorID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req followRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := s.timeline.FollowUser(r.Context(), actorID, req.Follow); err != nil {
		s.logger.Error(r.Context(), "follow failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *HTTPServer) Unfollow(w http.ResponseWriter, r *http.Request) {

	actorID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req unfollowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if err := s.timeline.UnfollowUser(r.Context(), actorID, req.Unfollow); err != nil {
		s.logger.Error(r.Context(), "unfollow failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (s *HTTPServer) Timeline(w http.ResponseWriter, r *http.Request) {

	userID, err := strconv.ParseInt(mux.Vars(r)["user_id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	timeline, err := s.timeline.Get(r.Context(), userID)
	if err != nil {
		s.logger.Error(r.Context(), "timeline failed", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	entries := make([]timelineEntryResponse, 0, len(timeline.Entries))
	for _, e := range timeline.Entries {
		entries = append(entries, timelineEntryResponse{UserID: e.AuthorID, Tweet: e.Text})
	}

	writeJSON(w, http.StatusOK, timelineResponse{UserID: timeline.UserID, Timeline: entries})
}
