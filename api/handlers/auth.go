package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmassist/pharmassist-api/api"
	"github.com/pharmassist/pharmassist-api/config"
	"github.com/pharmassist/pharmassist-api/databases"
	"github.com/pharmassist/pharmassist-api/models"
	"github.com/pharmassist/pharmassist-api/notify"
)

// Auth represents the account handler
type Auth struct {
	DB     databases.UserDatabase
	Mailer notify.Mailer
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// RegisterHandler creates a new account and sends the welcome email
func (h Auth) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorCode("invalid request body", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Email == "" || req.Password == "" {
		config.ErrorCode("name, email and password are required", http.StatusBadRequest, models.CodeInvalidRequest, w, nil)
		return
	}
	if req.Role == "" {
		req.Role = models.RolePatient
	}
	if !models.ValidRole(req.Role) {
		config.ErrorCode("unknown role", http.StatusBadRequest, models.CodeInvalidRequest, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := h.DB.GetUserByEmail(ctx, req.Email); err == nil {
		config.ErrorCode("email already registered", http.StatusConflict, models.CodeInvalidRequest, w, nil)
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		config.ErrorStatus("failed to check existing account", http.StatusInternalServerError, w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	user := &models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
	}
	if err := h.DB.CreateUser(ctx, user); err != nil {
		config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
		return
	}

	// Welcome email is best effort, registration already succeeded
	go func(email, name string) {
		if err := h.Mailer.SendWelcomeEmail(email, name); err != nil {
			zap.S().Errorw("failed to send welcome email", "error", err, "email", email)
		}
	}(user.Email, user.Name)

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(userResponse{
		ID:    user.ID.Hex(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
}

// LoginHandler verifies credentials and returns a signed access token
func (h Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorCode("invalid request body", http.StatusBadRequest, models.CodeInvalidRequest, w, err)
		return
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		config.ErrorCode("email and password are required", http.StatusBadRequest, models.CodeInvalidRequest, w, nil)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := h.DB.GetUserByEmail(ctx, email)
	if err != nil {
		config.ErrorCode("invalid credentials", http.StatusUnauthorized, models.CodeInvalidCredential, w, nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		config.ErrorCode("invalid credentials", http.StatusUnauthorized, models.CodeInvalidCredential, w, nil)
		return
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		config.ErrorStatus("server misconfigured", http.StatusInternalServerError, w, errors.New("JWT_SECRET is not set"))
		return
	}

	claims := jwt.MapClaims{
		"sub":   user.ID.Hex(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		config.ErrorStatus("token generation failed", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(loginResponse{
		Token: signed,
		User: userResponse{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}
