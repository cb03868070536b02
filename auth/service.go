package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/projtrack-go/apperror"
	"github.com/user/projtrack-go/config"
	"github.com/user/projtrack-go/mail"
)

const (
	// resetTokenBytes is the entropy of the password reset token; the token
	// travels as its hex encoding (40 characters).
	resetTokenBytes = 20
	// resetTokenTTL is how long a reset token stays exchangeable.
	resetTokenTTL = time.Hour
)

// Claims defines the JWT payload: the user's id plus the registered claims.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// AuthService provides registration, login, the current-user lookup, and the
// password reset flow. It owns token issuance; verification lives in the
// middleware so unauthenticated routes never touch the service.
type AuthService struct {
	repo       Repository
	mailer     mail.Sender
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo Repository, mailer mail.Sender, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		repo:       repo,
		mailer:     mailer,
		authConfig: authConfig,
	}
}

// Register creates a new user and returns a bearer token with the public user
// view. The insert relies on the store's unique email index: no pre-check is
// performed, and a duplicate-key rejection maps to a 400.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Name:           req.Name,
		Email:          strings.ToLower(req.Email),
		HashedPassword: string(hashedPassword),
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, apperror.NewBadRequestError("user already exists", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}

	token, err := s.issueToken(created.ID.Hex())
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &AuthResponse{Token: token, User: created.Public()}, nil
}

// Login authenticates a user and returns a fresh token. An unknown email and
// a wrong password produce the same error, so a caller cannot probe which
// emails are registered.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperror.NewBadRequestError("invalid credentials", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperror.NewBadRequestError("invalid credentials", nil)
	}

	token, err := s.issueToken(user.ID.Hex())
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &AuthResponse{Token: token, User: user.Public()}, nil
}

// CurrentUser resolves a verified identity to its public user view.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*PublicUser, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	view := user.Public()
	return &view, nil
}

// ForgotPassword generates a random reset token, persists it with a one hour
// expiry, and emails a reset link. A mail transport failure surfaces as an
// internal error, but the token stays persisted: the user can retry without
// invalidating an email that may still arrive.
func (s *AuthService) ForgotPassword(ctx context.Context, email, linkBase string) error {
	user, err := s.repo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperror.NewNotFoundError("user not found", nil)
		}
		return apperror.NewDatabaseError("failed to get user", err)
	}

	token, err := generateResetToken()
	if err != nil {
		return apperror.NewInternalError("failed to generate reset token", err)
	}

	expires := time.Now().Add(resetTokenTTL)
	if err := s.repo.SetResetToken(ctx, user.ID.Hex(), token, expires); err != nil {
		return apperror.NewDatabaseError("failed to store reset token", err)
	}

	link := fmt.Sprintf("%s/reset-password/%s", linkBase, token)
	body := fmt.Sprintf("You are receiving this email because you (or someone else) requested a password recovery.\n\n"+
		"Please click the following link, or paste it into your browser, to complete the process:\n\n"+
		"%s\n\n"+
		"If you did not request this, please ignore this email and your password will remain unchanged.\n", link)

	if err := s.mailer.Send(ctx, user.Email, "Password Recovery - Extension Project", body); err != nil {
		log.Printf("failed to send recovery email to %s: %v", user.Email, err)
		return apperror.NewExternalServiceError("failed to send recovery email", err)
	}

	return nil
}

// ResetPassword exchanges a valid, unexpired reset token for a new password.
// The repository clears the token fields in the same atomic update that writes
// the new hash, so a token is accepted at most once.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperror.NewInternalError("failed to hash password", err)
	}

	if err := s.repo.ResetPassword(ctx, token, time.Now(), string(hashedPassword)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperror.NewBadRequestError("invalid or expired token", nil)
		}
		return apperror.NewDatabaseError("failed to reset password", err)
	}
	return nil
}

// issueToken signs a bearer token embedding the user's id, valid for the
// configured duration (7 days by default).
func (s *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.authConfig.TokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.authConfig.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// generateResetToken returns a cryptographically random hex token.
func generateResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
