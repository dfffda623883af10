package core

import (
	"context"
	"errors"
	"fmt"
	"newsroom/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrDuplicateUsername error = errors.New("username already taken")
var ErrPasswordMismatch error = errors.New("passwords do not match")
var ErrInvalidCredentials error = errors.New("invalid credentials")
var ErrUnauthenticated error = errors.New("not authenticated")
var ErrArticleNotFound error = errors.New("article not found")

// Newsroom holds the registration, login and article publishing rules.
type Newsroom struct {
	logs *zap.SugaredLogger
	repo Repository
}

func NewNewsroom(logger *zap.SugaredLogger, repo Repository) *Newsroom {
	return &Newsroom{
		logs: logger,
		repo: repo,
	}
}

// Register creates a user with a bcrypt-hashed password. The password and
// its confirmation must match exactly. The username existence check here is
// an optimization only; the storage unique index stays authoritative, so a
// concurrent registration of the same name still fails cleanly.
func (n *Newsroom) Register(ctx context.Context, msg RegisterMessage) (Identity, error) {
	if msg.Password != msg.ConfirmPassword {
		return Identity{}, ErrPasswordMismatch
	}

	_, err := n.repo.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return Identity{}, ErrDuplicateUsername
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return Identity{}, fmt.Errorf("check username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), bcrypt.DefaultCost)
	if err != nil {
		return Identity{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := n.repo.CreateUser(ctx, msg.Username, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return Identity{}, ErrDuplicateUsername
		}
		return Identity{}, fmt.Errorf("create user: %w", err)
	}

	n.logs.Infow("user registered", "userId", user.ID, "username", user.Username)

	return Identity{UserID: user.ID, Username: user.Username}, nil
}

// Authenticate verifies the credentials against the stored bcrypt hash.
// Unknown usernames and wrong passwords both come back as
// ErrInvalidCredentials so the response does not leak which one it was.
func (n *Newsroom) Authenticate(ctx context.Context, msg AuthMessage) (Identity, error) {
	user, err := n.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return Identity{}, ErrInvalidCredentials
		}
		return Identity{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return Identity{}, ErrInvalidCredentials
	}

	n.logs.Infow("user authenticated", "userId", user.ID, "username", user.Username)

	return Identity{UserID: user.ID, Username: user.Username}, nil
}

// ListArticles returns every article newest first. The same list backs the
// public page and the dashboard: logged-in users see all articles, they can
// just only mutate their own.
func (n *Newsroom) ListArticles(ctx context.Context) ([]ArticleRecord, error) {
	articles, err := n.repo.ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return n.repoArticlesToRecords(articles), nil
}

func (n *Newsroom) GetArticle(ctx context.Context, id uint) (ArticleRecord, error) {
	article, err := n.repo.GetArticle(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return ArticleRecord{}, ErrArticleNotFound
		}
		return ArticleRecord{}, fmt.Errorf("get article: %w", err)
	}

	return n.repoArticleToRecord(article), nil
}

func (n *Newsroom) CreateArticle(ctx context.Context, identity Identity, title, content, author string) (ArticleRecord, error) {
	if identity.UserID == 0 {
		return ArticleRecord{}, ErrUnauthenticated
	}

	article, err := n.repo.CreateArticle(ctx, title, content, author, identity.UserID)
	if err != nil {
		return ArticleRecord{}, fmt.Errorf("create article: %w", err)
	}

	n.logs.Infow("article created", "articleId", article.ID, "userId", identity.UserID)

	return n.repoArticleToRecord(article), nil
}

// UpdateArticle edits title, content and author of an existing article.
// Any logged-in user may edit any article; delete is the only owner-scoped
// mutation.
func (n *Newsroom) UpdateArticle(ctx context.Context, id uint, title, content, author string) error {
	err := n.repo.UpdateArticle(ctx, id, title, content, author)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("update article: %w", err)
	}

	n.logs.Infow("article updated", "articleId", id)

	return nil
}

// DeleteArticle removes the article only when the caller owns it. A missing
// article and a foreign owner both come back as ErrArticleNotFound; the
// caller redirects without error detail either way.
func (n *Newsroom) DeleteArticle(ctx context.Context, identity Identity, id uint) error {
	if identity.UserID == 0 {
		return ErrUnauthenticated
	}

	err := n.repo.DeleteArticleOwned(ctx, id, identity.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrArticleNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}

	n.logs.Infow("article deleted", "articleId", id, "userId", identity.UserID)

	return nil
}

func (n *Newsroom) repoArticleToRecord(article repository.Article) ArticleRecord {
	return ArticleRecord{
		ID:        article.ID,
		Title:     article.Title,
		Content:   article.Content,
		Author:    article.Author,
		OwnerID:   article.UserID,
		CreatedOn: article.CreatedOn,
	}
}

func (n *Newsroom) repoArticlesToRecords(articles []repository.Article) []ArticleRecord {
	records := make([]ArticleRecord, len(articles))
	for i, article := range articles {
		records[i] = n.repoArticleToRecord(article)
	}
	return records
}
