package usecase

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL = 15 * time.Minute
	bcryptCost     = 12
)

type AuthUsecase struct {
	users     repo.UserRepository
	jwtSecret []byte
}

func NewAuthUsecase(users repo.UserRepository, jwtSecret string) *AuthUsecase {
	return &AuthUsecase{users: users, jwtSecret: []byte(jwtSecret)}
}

type RegisterInput struct {
	Email    string
	Password string
}

type UserOutput struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (UserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") || len(email) > 255 {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 8 || len(in.Password) > 72 {
		return UserOutput{}, NewHTTPError(http.StatusBadRequest, "invalid password")
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return UserOutput{}, NewHTTPError(http.StatusConflict, "email already registered")
	} else if err != repo.ErrNotFound {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	user := model.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         model.RoleUser,
		IsActive:     true,
	}
	if err := u.users.Create(ctx, &user); err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return UserOutput{ID: user.ID, Email: user.Email, Role: string(user.Role)}, nil
}

// Me resolves the authenticated user behind a token. A token whose subject no
// longer exists or was deactivated is treated as unauthorized.
func (u *AuthUsecase) Me(ctx context.Context, userID int64) (UserOutput, error) {
	if userID <= 0 {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	user, err := u.users.FindByID(ctx, userID)
	if err == repo.ErrNotFound {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return UserOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !user.IsActive {
		return UserOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	return UserOutput{ID: user.ID, Email: user.Email, Role: string(user.Role)}, nil
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string     `json:"access_token"`
	ExpiresIn   int        `json:"expires_in"`
	User        UserOutput `json:"user"`
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := u.users.FindByEmail(ctx, email)
	if err == repo.ErrNotFound {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !user.IsActive {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"role": string(user.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(accessTokenTTL).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.jwtSecret)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return LoginOutput{
		AccessToken: signed,
		ExpiresIn:   int(accessTokenTTL.Seconds()),
		User:        UserOutput{ID: user.ID, Email: user.Email, Role: string(user.Role)},
	}, nil
}
