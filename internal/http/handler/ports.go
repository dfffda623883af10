package handler

import (
	"context"
	"net/http"
	"newsroom/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name NewsService . NewsService
type NewsService interface {
	Register(ctx context.Context, msg core.RegisterMessage) (core.Identity, error)
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.Identity, error)
	ListArticles(ctx context.Context) ([]core.ArticleRecord, error)
	GetArticle(ctx context.Context, id uint) (core.ArticleRecord, error)
	CreateArticle(ctx context.Context, identity core.Identity, title, content, author string) (core.ArticleRecord, error)
	UpdateArticle(ctx context.Context, id uint, title, content, author string) error
	DeleteArticle(ctx context.Context, identity core.Identity, id uint) error
}

//counterfeiter:generate -o fake -fake-name SessionStore . SessionStore
type SessionStore interface {
	Create(w http.ResponseWriter, identity core.Identity) error
	Current(r *http.Request) (core.Identity, bool)
	Destroy(w http.ResponseWriter)
}

//counterfeiter:generate -o fake -fake-name FormDecoder . FormDecoder
type FormDecoder interface {
	DecodeAndValidateForm(r *http.Request, object any) error
}
