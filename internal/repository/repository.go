package repository

import (
	"context"
	"errors"
	"fmt"
	"newsroom/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrDuplicateUsername error = errors.New("username already taken")
var ErrArticleNotFound error = errors.New("article not found")

// articleOrder lists newest first; the id tiebreak keeps the order stable
// when two articles land on the same second.
const articleOrder = "created_on DESC, id DESC"

type NewsRepository struct {
	db Storage
}

func NewNewsRepository(db Storage) *NewsRepository {
	return &NewsRepository{
		db: db,
	}
}

func (r *NewsRepository) Migrate() error {
	err := r.db.MigrateTable(&User{}, &Article{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

// CreateUser inserts a new user row. The unique index on username is the
// authoritative uniqueness guard; a violation surfaces as
// ErrDuplicateUsername regardless of any earlier existence check.
func (r *NewsRepository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrDuplicateUsername
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *NewsRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *NewsRepository) ListArticles(ctx context.Context) ([]Article, error) {
	articles := []Article{}
	err := r.db.GetAllOrdered(ctx, articleOrder, &articles)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return articles, nil
}

func (r *NewsRepository) GetArticle(ctx context.Context, id uint) (Article, error) {
	var article Article

	err := r.db.GetOneBy(ctx, "id", id, &article)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Article{}, ErrArticleNotFound
		}
		return Article{}, fmt.Errorf("get article by id: %w", err)
	}

	return article, nil
}

func (r *NewsRepository) CreateArticle(ctx context.Context, title, content, author string, ownerID uint) (Article, error) {
	article := Article{
		Title:   title,
		Content: content,
		Author:  author,
		UserID:  ownerID,
	}

	err := r.db.Insert(ctx, &article)
	if err != nil {
		return Article{}, fmt.Errorf("insert article: %w", err)
	}

	return article, nil
}

// UpdateArticle touches title, content and author only; owner and created_on
// never change after insert.
func (r *NewsRepository) UpdateArticle(ctx context.Context, id uint, title, content, author string) error {
	values := map[string]any{
		"title":   title,
		"content": content,
		"author":  author,
	}

	err := r.db.UpdateColumns(ctx, &Article{}, values, "id = ?", id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("update article: %w", err)
	}

	return nil
}

// DeleteArticleOwned deletes the article only when it belongs to ownerID.
// A missing row and a foreign owner are indistinguishable to the caller.
func (r *NewsRepository) DeleteArticleOwned(ctx context.Context, id, ownerID uint) error {
	err := r.db.DeleteWhere(ctx, &Article{}, "id = ? AND user_id = ?", id, ownerID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrArticleNotFound
		}
		return fmt.Errorf("delete article: %w", err)
	}

	return nil
}
