package core

import (
	"context"
	"newsroom/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	ListArticles(ctx context.Context) ([]repository.Article, error)
	GetArticle(ctx context.Context, id uint) (repository.Article, error)
	CreateArticle(ctx context.Context, title, content, author string, ownerID uint) (repository.Article, error)
	UpdateArticle(ctx context.Context, id uint, title, content, author string) error
	DeleteArticleOwned(ctx context.Context, id, ownerID uint) error
}
