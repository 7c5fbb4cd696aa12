package handler

import (
	"net/http"

	"foodpool-be/internal/auth"
	"foodpool-be/internal/middleware"
	"foodpool-be/internal/session"
	"foodpool-be/internal/utils"
)

type signupRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=cook customer"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token    string           `json:"token"`
	Session  *session.Session `json:"session"`
	Redirect string           `json:"redirect"`
}

type sessionResponse struct {
	Authenticated bool             `json:"authenticated"`
	Session       *session.Session `json:"session,omitempty"`
}

func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	token, sess, err := h.Sessions.Signup(r.Context(), session.SignupInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Role:     session.Role(req.Role),
	})
	if err != nil {
		fail(w, r, err, "")
		return
	}

	h.startSession(w, http.StatusCreated, token, sess)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(w, r, &req); err != nil {
		fail(w, r, err, "")
		return
	}

	token, sess, err := h.Sessions.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		fail(w, r, err, "")
		return
	}

	h.startSession(w, http.StatusOK, token, sess)
}

func (h *Handler) startSession(w http.ResponseWriter, code int, token string, sess *session.Session) {
	auth.SetAccessTokenCookie(w, token, h.TokenTTL, h.SecureCookie)
	utils.WriteJSON(w, code, authResponse{
		Token:    token,
		Session:  sess,
		Redirect: middleware.LandingPath(sess.Role),
	})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearAccessTokenCookie(w, h.SecureCookie)
	utils.WriteJSONMessage(w, http.StatusOK, "logged out", nil)
}

// CurrentSession reports the caller's session without requiring one.
func (h *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFrom(r.Context())
	if !ok {
		utils.WriteJSON(w, http.StatusOK, sessionResponse{})
		return
	}
	utils.WriteJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Session: sess})
}
