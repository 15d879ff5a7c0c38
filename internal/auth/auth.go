// Package auth implements the bearer token authentication gate: credential
// verification, token issuance and token validation producing a caller
// identity.
package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stockroom/internal/models"
	"stockroom/internal/observability"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "stockroom-api"
	tokenAudience = "stockroom-client"
)

// Identity is the authenticated caller attached to every protected operation.
// Role is resolved from the user store at validation time, not from the token,
// so demoting an admin takes effect on their next request.
type Identity struct {
	UserID   uint
	Username string
	Role     models.Role
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == models.RoleAdmin
}

// UserResolver looks up users for credential checks and token validation.
// GetByUsername returns (nil, nil) when no such user exists.
type UserResolver interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Authenticator verifies credentials and issues and validates bearer tokens.
type Authenticator struct {
	users    UserResolver
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthenticator returns an Authenticator signing tokens with secret and the
// given lifetime.
func NewAuthenticator(users UserResolver, secret string, tokenTTL time.Duration) *Authenticator {
	return &Authenticator{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Login verifies the username/password pair and returns the user with a signed
// bearer token. A missing user and a wrong password produce the same
// invalid-credentials error.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	user, err := a.users.GetByUsername(ctx, username)
	if err != nil {
		observability.AuthAttempts.WithLabelValues("error").Inc()
		return nil, "", err
	}
	if user == nil {
		observability.AuthAttempts.WithLabelValues("invalid_credentials").Inc()
		return nil, "", models.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		observability.AuthAttempts.WithLabelValues("invalid_credentials").Inc()
		return nil, "", models.NewInvalidCredentialsError()
	}

	token, err := a.IssueToken(user)
	if err != nil {
		observability.AuthAttempts.WithLabelValues("error").Inc()
		return nil, "", models.NewInternalError(err)
	}

	observability.AuthAttempts.WithLabelValues("success").Inc()
	return user, token, nil
}

// IssueToken creates a signed HS256 JWT for the given user. The subject is the
// username; the role claim is informational only and never trusted on read.
func (a *Authenticator) IssueToken(user *models.User) (string, error) {
	if len(a.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"role": string(user.Role),
		"iss":  tokenIssuer,
		"aud":  tokenAudience,
		"exp":  now.Add(a.tokenTTL).Unix(),
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"jti":  generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// Authenticate validates a bearer token and resolves the caller's identity
// against the user store. A token whose subject no longer exists is rejected.
func (a *Authenticator) Authenticate(ctx context.Context, tokenString string) (Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		observability.TokenValidations.WithLabelValues("invalid").Inc()
		return Identity{}, models.NewInvalidTokenError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		observability.TokenValidations.WithLabelValues("invalid").Inc()
		return Identity{}, models.NewInvalidTokenError("Invalid token claims")
	}

	if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
		observability.TokenValidations.WithLabelValues("invalid").Inc()
		return Identity{}, models.NewInvalidTokenError("Invalid token issuer")
	}
	if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
		observability.TokenValidations.WithLabelValues("invalid").Inc()
		return Identity{}, models.NewInvalidTokenError("Invalid token audience")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		observability.TokenValidations.WithLabelValues("invalid").Inc()
		return Identity{}, models.NewInvalidTokenError("Invalid subject claim")
	}

	user, err := a.users.GetByUsername(ctx, sub)
	if err != nil {
		return Identity{}, err
	}
	if user == nil {
		observability.TokenValidations.WithLabelValues("unknown_subject").Inc()
		return Identity{}, models.NewUnknownSubjectError(sub)
	}

	observability.TokenValidations.WithLabelValues("valid").Inc()
	return Identity{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}

// ExtractBearer pulls the token out of an Authorization header value.
// Returns "" when the header is absent or not a Bearer scheme.
func ExtractBearer(authHeader string) string {
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// HashPassword bcrypt-hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
