package core_test

import (
	"context"
	"errors"
	"newsroom/internal/core"
	"newsroom/internal/core/fake"
	"newsroom/internal/repository"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Newsroom", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		newsroom *core.Newsroom

		fakeErr        error
		hashedPassword string
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		newsroom = core.NewNewsroom(fakeLogger, fakeRepo)

		fakeErr = errors.New("fake error")
		hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
	})

	Describe("Register", func() {
		var (
			msg      core.RegisterMessage
			identity core.Identity
			err      error
		)

		BeforeEach(func() {
			msg = core.RegisterMessage{
				Username:        "alice",
				Password:        "pw1",
				ConfirmPassword: "pw1",
			}
		})

		JustBeforeEach(func() {
			identity, err = newsroom.Register(ctx, msg)
		})

		When("the username is free and the passwords match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				fakeRepo.CreateUserStub = func(ctx context.Context, username, passwordHash string) (repository.User, error) {
					return repository.User{ID: 1, Username: username, PasswordHash: passwordHash}, nil
				}
			})

			It("should store a bcrypt hash, never the plaintext", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity).To(Equal(core.Identity{UserID: 1, Username: "alice"}))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, username, storedHash := fakeRepo.CreateUserArgsForCall(0)
				Expect(username).To(Equal("alice"))
				Expect(storedHash).NotTo(Equal("pw1"))
				Expect(bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("pw1"))).To(Succeed())
			})
		})

		When("the password confirmation differs", func() {
			BeforeEach(func() {
				msg.ConfirmPassword = "pw2"
			})

			It("should reject without touching the store", func() {
				Expect(err).To(MatchError(core.ErrPasswordMismatch))
				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(0))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the username already exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{ID: 1, Username: "alice"}, nil)
			})

			It("should reject with duplicate username and create nothing", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUsername))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("a concurrent registration wins the race", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrDuplicateUsername)
			})

			It("should surface the storage-level duplicate", func() {
				Expect(err).To(MatchError(core.ErrDuplicateUsername))
			})
		})

		When("the username lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authenticate", func() {
		var (
			msg      core.AuthMessage
			identity core.Identity
			err      error
		)

		BeforeEach(func() {
			msg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			identity, err = newsroom.Authenticate(ctx, msg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           3,
					Username:     msg.Username,
					PasswordHash: hashedPassword,
				}, nil)
			})

			It("should return the bound identity", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(identity).To(Equal(core.Identity{UserID: 3, Username: "testuser"}))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(msg.Username))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return the generic invalid credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				msg.Password = "wrongpass"
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           3,
					Username:     msg.Username,
					PasswordHash: hashedPassword,
				}, nil)
			})

			It("should return the same generic error as an unknown user", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListArticles", func() {
		var (
			records []core.ArticleRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = newsroom.ListArticles(ctx)
		})

		When("articles exist", func() {
			var createdOn time.Time

			BeforeEach(func() {
				createdOn = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
				fakeRepo.ListArticlesReturns([]repository.Article{
					{ID: 2, Title: "newer", Content: "c2", Author: "A", UserID: 1, CreatedOn: createdOn},
					{ID: 1, Title: "older", Content: "c1", Author: "B", UserID: 2, CreatedOn: createdOn.Add(-time.Hour)},
				}, nil)
			})

			It("should map the rows preserving the repository order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(Equal([]core.ArticleRecord{
					{ID: 2, Title: "newer", Content: "c2", Author: "A", OwnerID: 1, CreatedOn: createdOn},
					{ID: 1, Title: "older", Content: "c1", Author: "B", OwnerID: 2, CreatedOn: createdOn.Add(-time.Hour)},
				}))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.ListArticlesReturns(nil, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetArticle", func() {
		var (
			record core.ArticleRecord
			err    error
		)

		JustBeforeEach(func() {
			record, err = newsroom.GetArticle(ctx, 4)
		})

		When("the article exists", func() {
			BeforeEach(func() {
				fakeRepo.GetArticleReturns(repository.Article{ID: 4, Title: "t", UserID: 9}, nil)
			})

			It("should return the record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(4)))
				Expect(record.OwnerID).To(Equal(uint(9)))
			})
		})

		When("the article does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetArticleReturns(repository.Article{}, repository.ErrArticleNotFound)
			})

			It("should return ErrArticleNotFound", func() {
				Expect(err).To(MatchError(core.ErrArticleNotFound))
			})
		})
	})

	Describe("CreateArticle", func() {
		var (
			identity core.Identity
			record   core.ArticleRecord
			err      error
		)

		BeforeEach(func() {
			identity = core.Identity{UserID: 5, Username: "alice"}
		})

		JustBeforeEach(func() {
			record, err = newsroom.CreateArticle(ctx, identity, "T", "C", "A")
		})

		When("the caller is authenticated", func() {
			BeforeEach(func() {
				fakeRepo.CreateArticleReturns(repository.Article{
					ID: 1, Title: "T", Content: "C", Author: "A", UserID: 5,
				}, nil)
			})

			It("should create the article owned by the caller", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record.ID).To(Equal(uint(1)))
				Expect(record.OwnerID).To(Equal(uint(5)))

				Expect(fakeRepo.CreateArticleCallCount()).To(Equal(1))
				_, title, content, author, ownerID := fakeRepo.CreateArticleArgsForCall(0)
				Expect(title).To(Equal("T"))
				Expect(content).To(Equal("C"))
				Expect(author).To(Equal("A"))
				Expect(ownerID).To(Equal(uint(5)))
			})
		})

		When("the caller carries no identity", func() {
			BeforeEach(func() {
				identity = core.Identity{}
			})

			It("should return ErrUnauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(fakeRepo.CreateArticleCallCount()).To(Equal(0))
			})
		})

		When("the insert fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateArticleReturns(repository.Article{}, fakeErr)
			})

			It("should return an error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateArticle", func() {
		var err error

		JustBeforeEach(func() {
			err = newsroom.UpdateArticle(ctx, 4, "T2", "C2", "A2")
		})

		When("the article exists", func() {
			BeforeEach(func() {
				fakeRepo.UpdateArticleReturns(nil)
			})

			It("should update it without any ownership check", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.UpdateArticleCallCount()).To(Equal(1))
				_, id, title, content, author := fakeRepo.UpdateArticleArgsForCall(0)
				Expect(id).To(Equal(uint(4)))
				Expect(title).To(Equal("T2"))
				Expect(content).To(Equal("C2"))
				Expect(author).To(Equal("A2"))
			})
		})

		When("the article does not exist", func() {
			BeforeEach(func() {
				fakeRepo.UpdateArticleReturns(repository.ErrArticleNotFound)
			})

			It("should return ErrArticleNotFound", func() {
				Expect(err).To(MatchError(core.ErrArticleNotFound))
			})
		})
	})

	Describe("DeleteArticle", func() {
		var (
			identity core.Identity
			err      error
		)

		BeforeEach(func() {
			identity = core.Identity{UserID: 5, Username: "alice"}
		})

		JustBeforeEach(func() {
			err = newsroom.DeleteArticle(ctx, identity, 4)
		})

		When("the caller owns the article", func() {
			BeforeEach(func() {
				fakeRepo.DeleteArticleOwnedReturns(nil)
			})

			It("should delete it", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeRepo.DeleteArticleOwnedCallCount()).To(Equal(1))
				_, id, ownerID := fakeRepo.DeleteArticleOwnedArgsForCall(0)
				Expect(id).To(Equal(uint(4)))
				Expect(ownerID).To(Equal(uint(5)))
			})
		})

		When("the article belongs to someone else or is missing", func() {
			BeforeEach(func() {
				fakeRepo.DeleteArticleOwnedReturns(repository.ErrArticleNotFound)
			})

			It("should return ErrArticleNotFound and nothing else", func() {
				Expect(err).To(MatchError(core.ErrArticleNotFound))
			})
		})

		When("the caller carries no identity", func() {
			BeforeEach(func() {
				identity = core.Identity{}
			})

			It("should return ErrUnauthenticated", func() {
				Expect(err).To(MatchError(core.ErrUnauthenticated))
				Expect(fakeRepo.DeleteArticleOwnedCallCount()).To(Equal(0))
			})
		})
	})
})
