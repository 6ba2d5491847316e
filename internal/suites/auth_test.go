//nolint:testpackage,revive // dot imports are standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"restful_booker/internal/domain"
	"restful_booker/internal/randdata"
)

var _ = Describe("Auth", func() {
	Context("When logging in", func() {
		It("should issue a 16 character token for valid credentials", func() {
			resp, err := client.Auth.Login(ctx)
			expectStatus(resp, err, http.StatusOK)

			var tok domain.Token
			Expect(resp.JSON(&tok)).To(Succeed())
			Expect(tok.Token).To(HaveLen(domain.TokenLength))
		})

		It("should reject invalid credentials", func() {
			resp, err := client.Auth.LoginWith(ctx, config.Username, randdata.AlphaNumeric(12))
			expectStatus(resp, err, http.StatusForbidden)
		})
	})

	Context("When holding a token", func() {
		var token string

		BeforeEach(func() {
			token = freshToken()
		})

		It("should validate a fresh token", func() {
			resp, err := client.Auth.Validate(ctx, token)
			expectStatus(resp, err, http.StatusOK)
		})

		It("should refuse a token it never issued", func() {
			// Given: a random token distinct from the live one
			other := randdata.AlphaNumeric(domain.TokenLength)
			for other == token {
				other = randdata.AlphaNumeric(domain.TokenLength)
			}
			// Then: validation fails
			resp, err := client.Auth.Validate(ctx, other)
			expectStatus(resp, err, http.StatusForbidden)
		})

		It("should log out", func() {
			resp, err := client.Auth.Logout(ctx, token)
			expectStatus(resp, err, http.StatusOK)
		})

		It("should refuse the token after logout", func() {
			resp, err := client.Auth.Logout(ctx, token)
			expectStatus(resp, err, http.StatusOK)

			resp, err = client.Auth.Validate(ctx, token)
			expectStatus(resp, err, http.StatusForbidden)
		})
	})
})
