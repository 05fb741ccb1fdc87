package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"board-backend/internal/domains/author/model"
	"board-backend/internal/domains/author/repository"
	"board-backend/pkg/jwt"
)

type authorService struct {
	repo       repository.Repository
	jwtManager *jwt.Manager
}

func NewAuthorService(repo repository.Repository, jwtManager *jwt.Manager) Service {
	return &authorService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *authorService) Register(ctx context.Context, req *model.RegisterRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Self-registration: the new login id is its own acting identity.
	author := model.New(req.LoginID, string(hashed), req.Nickname, req.Email, req.Memo, req.LoginID, time.Now().UTC())

	return s.repo.Create(ctx, author)
}

func (s *authorService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author, err := s.repo.GetByLoginID(ctx, req.LoginID)
	if err != nil {
		if errors.Is(err, model.ErrAuthorNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(author.Secret), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	token, err := s.jwtManager.Generate(author.LoginID, author.Nickname)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &model.LoginResponse{
		Token:  token,
		Author: author.ToResponse(),
	}, nil
}

func (s *authorService) GetProfile(ctx context.Context, loginID string) (*model.Author, error) {
	return s.repo.GetByLoginID(ctx, loginID)
}

func (s *authorService) UpdateProfile(ctx context.Context, actor string, req *model.UpdateProfileRequest) (*model.Author, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	author, err := s.repo.GetByLoginID(ctx, actor)
	if err != nil {
		return nil, err
	}

	if req.Nickname != nil {
		author.Nickname = *req.Nickname
	}
	if req.Email != nil {
		author.Email = req.Email
	}
	if req.Memo != nil {
		author.Memo = req.Memo
	}
	author.Touch(actor, time.Now().UTC())

	if err := s.repo.UpdateProfile(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}
