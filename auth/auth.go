// Package auth manages credentials and session tokens: bcrypt password
// hashes at rest, HS256 JWTs on the wire.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"inkpost/models"
	"inkpost/store"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalid        = errors.New("username and password are required")
	ErrBadCredentials = errors.New("incorrect information")
	ErrBadToken       = errors.New("invalid or expired token")
)

// Claims is the JWT payload: identity plus the registered exp/iat fields.
type Claims struct {
	Username string `json:"username"`
	UserID   string `json:"id"`
	jwt.RegisteredClaims
}

type Service struct {
	users  store.UserStore
	secret []byte
	cost   int
	ttl    time.Duration
}

func NewService(users store.UserStore, secret string, cost int, ttl time.Duration) *Service {
	return &Service{users: users, secret: []byte(secret), cost: cost, ttl: ttl}
}

// Register hashes the password and stores a new user. The store's unique
// constraint decides duplicate usernames, including concurrent ones.
func (s *Service) Register(ctx context.Context, username, password string) (models.PublicUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return models.PublicUser{}, ErrInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return models.PublicUser{}, err
	}

	user := models.User{
		Username:  username,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	if err := s.users.CreateUser(ctx, &user); err != nil {
		return models.PublicUser{}, err
	}
	return user.Public(), nil
}

// Login checks the password against the stored hash and issues a signed
// token. Unknown users surface as store.ErrNotFound, a wrong password as
// ErrBadCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByName(ctx, username)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrBadCredentials
	}

	now := time.Now()
	claims := &Claims{
		Username: user.Username,
		UserID:   user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken parses and validates a token string and returns its claims.
// Malformed, expired, tampered and non-HMAC tokens all come back as
// ErrBadToken; there is no server-side session state to consult.
func (s *Service) VerifyToken(tokenString string) (Claims, error) {
	claims := Claims{}
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrBadToken
	}
	return claims, nil
}
