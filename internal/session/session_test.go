package session_test

import (
	"net/http"
	"net/http/httptest"
	"newsroom/internal/core"
	"newsroom/internal/session"
	tokenIssuer "newsroom/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Manager", func() {
	var (
		issuer   *tokenIssuer.JWTService
		manager  *session.Manager
		identity core.Identity
		w        *httptest.ResponseRecorder
	)

	BeforeEach(func() {
		issuer = tokenIssuer.NewJWTService([]byte("test-secret"))
		manager = session.NewManager(issuer)
		identity = core.Identity{UserID: 7, Username: "alice"}
		w = httptest.NewRecorder()
	})

	sessionCookie := func(w *httptest.ResponseRecorder) *http.Cookie {
		for _, c := range w.Result().Cookies() {
			if c.Name == session.CookieName {
				return c
			}
		}
		return nil
	}

	Describe("Create", func() {
		It("should set an HttpOnly session cookie", func() {
			Expect(manager.Create(w, identity)).To(Succeed())

			cookie := sessionCookie(w)
			Expect(cookie).NotTo(BeNil())
			Expect(cookie.Value).NotTo(BeEmpty())
			Expect(cookie.HttpOnly).To(BeTrue())
			Expect(cookie.Path).To(Equal("/"))
			Expect(cookie.MaxAge).To(BeNumerically(">", 0))
		})
	})

	Describe("Current", func() {
		When("the request carries a valid session cookie", func() {
			It("should return the bound identity", func() {
				Expect(manager.Create(w, identity)).To(Succeed())
				cookie := sessionCookie(w)

				req := httptest.NewRequest("GET", "/dashboard", nil)
				req.AddCookie(cookie)

				got, ok := manager.Current(req)
				Expect(ok).To(BeTrue())
				Expect(got).To(Equal(identity))
			})
		})

		When("the request carries no cookie", func() {
			It("should report no session", func() {
				req := httptest.NewRequest("GET", "/dashboard", nil)

				_, ok := manager.Current(req)
				Expect(ok).To(BeFalse())
			})
		})

		When("the cookie value is garbage", func() {
			It("should report no session", func() {
				req := httptest.NewRequest("GET", "/dashboard", nil)
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "not-a-token"})

				_, ok := manager.Current(req)
				Expect(ok).To(BeFalse())
			})
		})

		When("the token was signed with a different secret", func() {
			It("should report no session", func() {
				foreign := session.NewManager(tokenIssuer.NewJWTService([]byte("other-secret")))
				Expect(foreign.Create(w, identity)).To(Succeed())
				cookie := sessionCookie(w)

				req := httptest.NewRequest("GET", "/dashboard", nil)
				req.AddCookie(cookie)

				_, ok := manager.Current(req)
				Expect(ok).To(BeFalse())
			})
		})

		When("the token has expired", func() {
			It("should report no session", func() {
				expired := issuer.Generate(tokenIssuer.TokenInfo{
					UserName:   identity.Username,
					UserID:     identity.UserID,
					Expiration: -1,
				})
				signed, err := issuer.Sign(expired)
				Expect(err).NotTo(HaveOccurred())

				req := httptest.NewRequest("GET", "/dashboard", nil)
				req.AddCookie(&http.Cookie{Name: session.CookieName, Value: signed})

				_, ok := manager.Current(req)
				Expect(ok).To(BeFalse())
			})
		})
	})

	Describe("Destroy", func() {
		It("should expire the cookie and stay idempotent", func() {
			manager.Destroy(w)
			manager.Destroy(w)

			cookies := w.Result().Cookies()
			Expect(cookies).NotTo(BeEmpty())
			for _, c := range cookies {
				Expect(c.Name).To(Equal(session.CookieName))
				Expect(c.Value).To(BeEmpty())
				Expect(c.MaxAge).To(BeNumerically("<", 0))
			}
		})
	})
})
