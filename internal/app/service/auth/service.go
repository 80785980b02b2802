package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/remindyoursubs/subtrack/internal/models"
	cfgpkg "github.com/remindyoursubs/subtrack/pkg/config"
	"github.com/remindyoursubs/subtrack/pkg/tool"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidToken       = errors.New("invalid token")
)

type Service struct {
	db  *gorm.DB
	log *zap.SugaredLogger
	cfg *cfgpkg.Config
}

func NewService(db *gorm.DB, log *zap.SugaredLogger, cfg *cfgpkg.Config) *Service {
	return &Service{db: db, log: log, cfg: cfg}
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Credentials) Validate() error {
	if c.Email == "" || !strings.Contains(c.Email, "@") {
		return fmt.Errorf("email must be a valid address")
	}
	if len(c.Password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}
	return nil
}

type AuthResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (s *Service) Register(ctx context.Context, creds *Credentials) (*AuthResult, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", creds.Email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           tool.GenerateUUIDV7(),
		Email:        creds.Email,
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.Infow("user registered", "user_id", user.ID)
	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, creds *Credentials) (*AuthResult, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", creds.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(&user)
}

func (s *Service) issue(user *models.User) (*AuthResult, error) {
	ttl := time.Duration(s.cfg.Auth.TokenTTLDay) * 24 * time.Hour
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID,
		"exp": time.Now().Add(ttl).Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Auth.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResult{Token: signed, User: user}, nil
}

// ParseToken validates a bearer token and returns the user id.
func (s *Service) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
