package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"novelshorts/internal/dto"
	"novelshorts/internal/model"
	"novelshorts/internal/repository"
	"novelshorts/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown id and wrong password alike,
// so login failures never reveal whether an id exists.
var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid id or password", apperror.ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid or expired token", apperror.ErrUnauthorized)
)

type AuthService interface {
	Signup(ctx context.Context, input dto.SignupInput) error
	Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error)
	IssueToken(userNo uint, userID string, ttl time.Duration) (string, error)
	// Authenticate verifies a bearer token and returns the typed identity.
	// It never touches the database.
	Authenticate(token string) (*dto.Identity, error)
}

type tokenClaims struct {
	UserNo uint `json:"user_no"`
	jwt.RegisteredClaims
}

type authService struct {
	repo     repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
	observer Observer
}

func NewAuthService(repo repository.UserRepository, secret string, tokenTTL time.Duration, observer Observer) AuthService {
	return &authService{
		repo:     repo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		observer: observer,
	}
}

func (s *authService) Signup(ctx context.Context, input dto.SignupInput) (err error) {
	start := time.Now()
	defer func() { observe(s.observer, "auth.signup", start, err) }()

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	gender := input.Gender
	if gender == "" {
		gender = "X"
	}

	user := model.User{
		ID:           input.ID,
		PasswordHash: string(hash),
		Name:         input.Name,
		Gender:       gender,
		Age:          input.Age,
	}

	err = s.repo.Create(ctx, &user)
	return err
}

func (s *authService) Login(ctx context.Context, input dto.LoginInput) (resp *dto.TokenResponse, err error) {
	start := time.Now()
	defer func() { observe(s.observer, "auth.login", start, err) }()

	user, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.No, user.ID, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		UserNo:      user.No,
	}, nil
}

func (s *authService) IssueToken(userNo uint, userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserNo: userNo,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authService) Authenticate(tokenString string) (*dto.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || claims.Subject == "" || claims.UserNo == 0 {
		return nil, ErrInvalidToken
	}

	return &dto.Identity{UserID: claims.Subject, UserNo: claims.UserNo}, nil
}
