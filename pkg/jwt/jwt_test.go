package jwt_test

import (
	tokenIssuer "newsroom/pkg/jwt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			UserID:     7,
			Expiration: 24,
		}
	})

	Describe("Generate and Sign", func() {
		It("should produce a token that validates with the same secret", func() {
			token := service.Generate(info)
			signed, err := service.Sign(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(signed).NotTo(BeEmpty())

			claims, err := service.Validate(signed)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims["username"]).To(Equal("alice"))
			Expect(claims["uid"]).To(Equal(float64(7)))
		})
	})

	Describe("Validate", func() {
		When("the token was signed with another secret", func() {
			It("should reject it", func() {
				other := tokenIssuer.NewJWTService([]byte("other-secret"))
				signed, err := other.Sign(other.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token is malformed", func() {
			It("should reject it", func() {
				_, err := service.Validate("definitely.not.a.token")
				Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
			})
		})

		When("the token has expired", func() {
			It("should reject it", func() {
				info.Expiration = -1
				signed, err := service.Sign(service.Generate(info))
				Expect(err).NotTo(HaveOccurred())

				_, err = service.Validate(signed)
				Expect(err).To(HaveOccurred())
			})
		})
	})
})
