//nolint:testpackage,revive // dot imports are standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"restful_booker/internal/adapters/booker"
	"restful_booker/internal/domain"
)

// expectStatus asserts the call reached the platform and answered want.
// The failure message carries the whole response.
func expectStatus(resp *booker.Response, err error, want int) *booker.Response {
	GinkgoHelper()
	Expect(err).NotTo(HaveOccurred())
	Expect(resp.StatusCode).To(Equal(want), resp.String())
	return resp
}

func freshToken() string {
	GinkgoHelper()
	tok, err := client.Auth.Token(ctx)
	Expect(err).NotTo(HaveOccurred())
	return tok
}

func currentBranding() domain.Branding {
	GinkgoHelper()
	resp, err := client.Branding.Get(ctx)
	expectStatus(resp, err, http.StatusOK)
	var b domain.Branding
	Expect(resp.JSON(&b)).To(Succeed())
	return b
}

func listRooms() []domain.Room {
	GinkgoHelper()
	resp, err := client.Room.List(ctx)
	expectStatus(resp, err, http.StatusOK)
	var body struct {
		Rooms []domain.Room `json:"rooms"`
	}
	Expect(resp.JSON(&body)).To(Succeed())
	return body.Rooms
}
