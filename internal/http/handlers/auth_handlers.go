package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/backoffice-analytics/internal/auth"
	mw "github.com/rogerio-castellano/backoffice-analytics/internal/http/middleware"
	"github.com/rogerio-castellano/backoffice-analytics/internal/models"
	"github.com/rogerio-castellano/backoffice-analytics/internal/repo"
)

// startSession stores a new session for user and signs a token bound to it.
func startSession(r *http.Request, user models.User) (auth.Session, string, error) {
	session := auth.NewSession(user, time.Now().UTC(), tokenIssuer.TTL())
	if err := sessions.Save(r.Context(), session); err != nil {
		return auth.Session{}, "", err
	}
	token, err := tokenIssuer.Issue(user, session.ID)
	if err != nil {
		return auth.Session{}, "", err
	}
	return session, token, nil
}

// RegisterHandler godoc
// @Summary Register new user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Account to create"
// @Success 201 {object} RegisterResult
// @Failure 400 {array} ValidationError
// @Failure 409 {string} string "User exists"
// @Router /register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateRegistration(req); len(validationErrors) > 0 {
		respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	user, err := userRepo.CreateUser(models.User{
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: hashed,
		Role:         "user",
		Name:         req.Name,
		Email:        req.Email,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "username already exists", http.StatusConflict)
			return
		}
		log.Printf("Failed to register user: %v", err)
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	_, token, err := startSession(r, user)
	if err != nil {
		log.Printf("Failed to start session: %v", err)
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusCreated, RegisterResult{Message: "user registered", Token: token})
}

// LoginHandler godoc
// @Summary Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Failure 429 {string} string "Too many failed attempts"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials CredentialsRequest
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	ctx := r.Context()

	locked, err := lockout.Locked(ctx, credentials.Username)
	if err != nil {
		log.Printf("Failed to check login lockout: %v", err)
	}
	if locked {
		http.Error(w, "too many failed attempts, try again later", http.StatusTooManyRequests)
		return
	}

	user, err := userRepo.GetByUsername(credentials.Username)
	if err != nil || !auth.CheckPassword(user.PasswordHash, credentials.Password) {
		if err := lockout.Fail(ctx, credentials.Username); err != nil {
			log.Printf("Failed to record failed login: %v", err)
		}
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if err := lockout.Reset(ctx, credentials.Username); err != nil {
		log.Printf("Failed to reset login lockout: %v", err)
	}

	session, token, err := startSession(r, user)
	if err != nil {
		log.Printf("Failed to start session: %v", err)
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, LoginResult{Token: token, ExpiresAt: session.ExpiresAt})
}

// LogoutHandler godoc
// @Summary End the current session
// @Tags auth
// @Security BearerAuth
// @Success 204 "Logged out"
// @Failure 401 {string} string "Unauthorized"
// @Router /logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := mw.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := sessions.Delete(r.Context(), session.ID); err != nil {
		log.Printf("Failed to delete session: %v", err)
		http.Error(w, "could not end session", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler godoc
// @Summary Current session
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} auth.Session
// @Failure 401 {string} string "Unauthorized"
// @Router /me [get]
func MeHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := mw.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	respond(w, http.StatusOK, session)
}

// UpdateMeHandler godoc
// @Summary Update the profile of the signed-in user
// @Tags auth
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param profile body ProfileRequest true "Name and email"
// @Success 200 {object} auth.Session
// @Failure 400 {array} ValidationError
// @Failure 401 {string} string "Unauthorized"
// @Router /me [put]
func UpdateMeHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := mw.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req ProfileRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if validationErrors := validateProfile(req); len(validationErrors) > 0 {
		respond(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := userRepo.UpdateProfile(models.User{ID: session.UserID, Name: req.Name, Email: req.Email})
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to update profile: %v", err)
		http.Error(w, "could not update profile", http.StatusInternalServerError)
		return
	}

	session.Name, session.Email = updated.Name, updated.Email
	if err := sessions.Save(r.Context(), session); err != nil {
		log.Printf("Failed to store session: %v", err)
		http.Error(w, "could not update session", http.StatusInternalServerError)
		return
	}

	respond(w, http.StatusOK, session)
}
