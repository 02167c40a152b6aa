package auth

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/workforce-app/workforce-backend-go/internal/domain/auth"
	"github.com/workforce-app/workforce-backend-go/internal/domain/company"
	"github.com/workforce-app/workforce-backend-go/internal/domain/user"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/database"
	"github.com/workforce-app/workforce-backend-go/internal/pkg/jwt"
	"github.com/workforce-app/workforce-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db          *database.DB
	userRepo    user.UserRepository
	companyRepo company.CompanyRepository
	jwtService  jwt.Service
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	companyRepo company.CompanyRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:          db,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtService:  jwtService,
	}
}

// Register creates the company and its first user atomically.
func (a *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	var created user.User
	err = postgresql.WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		comp, err := a.companyRepo.Create(txCtx, company.Company{Name: req.CompanyName})
		if err != nil {
			return err
		}

		created, err = a.userRepo.Create(txCtx, user.User{
			CompanyID:    comp.ID,
			Email:        req.Email,
			PasswordHash: string(hash),
			FullName:     req.FullName,
		})
		return err
	})
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return a.issueToken(created)
}

func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueToken(u)
}

func (a *AuthServiceImpl) issueToken(u user.User) (auth.TokenResponse, error) {
	token, expiresAt, err := a.jwtService.GenerateAccessToken(u.ID, u.Email, u.CompanyID)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	return auth.TokenResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		UserID:      u.ID,
		CompanyID:   u.CompanyID,
	}, nil
}
