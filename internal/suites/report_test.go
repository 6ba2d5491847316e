//nolint:testpackage,revive // dot imports are standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"restful_booker/internal/domain"
)

var _ = Describe("Report", func() {
	It("should report every room", func() {
		resp, err := client.Report.AllRooms(ctx)
		expectStatus(resp, err, http.StatusOK)

		var body struct {
			Report []domain.ReportEntry `json:"report"`
		}
		Expect(resp.JSON(&body)).To(Succeed())
	})

	It("should report room 1", func() {
		resp, err := client.Report.Room(ctx, 1)
		expectStatus(resp, err, http.StatusOK)
	})
})
