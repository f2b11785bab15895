package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"marketplace/internal/domain"
	"marketplace/internal/domain/models"
	"marketplace/internal/repositories"
	"marketplace/internal/utils"
)

const DefaultTokenTTL = 24 * time.Hour

type AccountFinder interface {
	FindByEmail(ctx context.Context, role, email string) (models.Account, error)
}

// AuthService issues and checks session tokens. It only identifies callers;
// what they may do is decided elsewhere.
type AuthService struct {
	Accounts AccountFinder
	Secret   []byte
	TTL      time.Duration
	Now      func() time.Time

	RequestID string
}

type Claims struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

var errBadCredentials = domain.UnauthorizedError{Msg: "invalid email or password"}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Login checks the password and returns a signed token for the account.
// role picks the account table: "seller" or anything else for users.
func (s AuthService) Login(ctx context.Context, role, email, password string) (string, models.Account, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if role != repositories.RoleSeller {
		role = repositories.RoleUser
	}
	if strings.TrimSpace(email) == "" || password == "" {
		return "", models.Account{}, domain.ValidationError{Msg: "email and password are required"}
	}

	acc, err := s.Accounts.FindByEmail(ctx, role, email)
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.Account{}, errBadCredentials
		}
		return "", models.Account{}, wrapFetch(err, "failed to load account")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		utils.LogEvent(s.RequestID, "auth", "login", "password mismatch", zap.Int64("account_id", acc.ID))
		return "", models.Account{}, errBadCredentials
	}

	token, err := s.Issue(acc.ID, acc.Role)
	if err != nil {
		return "", models.Account{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}
	utils.LogEvent(s.RequestID, "auth", "login", "login ok", zap.Int64("account_id", acc.ID), zap.String("role", acc.Role))
	return token, acc, nil
}

// Issue signs an HS256 token for the given identity.
func (s AuthService) Issue(userID int64, role string) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := s.now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.Secret)
}

// Parse validates a token and returns the identity it carries.
func (s AuthService) Parse(raw string) (domain.RequestContext, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		msg := "invalid token"
		if errors.Is(err, jwt.ErrTokenExpired) {
			msg = "token expired"
		}
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: msg, Err: err}
	}
	if claims.UserID <= 0 {
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: "token has no subject"}
	}
	return domain.RequestContext{UserID: domain.ID(claims.UserID), Role: claims.Role}, nil
}

// HashPassword is used by seeding and tests.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}
