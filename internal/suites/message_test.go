//nolint:testpackage,revive // dot imports are standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"restful_booker/internal/fixtures"
)

func messageEntries(fs []fixtures.Message) []TableEntry {
	out := make([]TableEntry, 0, len(fs))
	for _, f := range fs {
		out = append(out, Entry(f.Name, f))
	}
	return out
}

var _ = Describe("Message", func() {
	It("should list messages", func() {
		resp, err := client.Message.List(ctx)
		expectStatus(resp, err, http.StatusOK)
	})

	It("should count unread messages", func() {
		resp, err := client.Message.Count(ctx)
		expectStatus(resp, err, http.StatusOK)

		var body struct {
			Count *int `json:"count"`
		}
		Expect(resp.JSON(&body)).To(Succeed())
		Expect(body.Count).NotTo(BeNil())
	})

	DescribeTable("sending a message",
		func(f fixtures.Message) {
			resp, err := client.Message.Create(ctx, f.Options...)
			expectStatus(resp, err, f.WantStatus)
		},
		messageEntries(fixtures.ValidMessage()),
		messageEntries(fixtures.InvalidMessage()),
	)

	Context("When reading message 1", func() {
		It("should return it", func() {
			resp, err := client.Message.Get(ctx, 1)
			expectStatus(resp, err, http.StatusOK)
		})

		It("should mark it read with a token", func() {
			resp, err := client.Message.MarkRead(ctx, 1, freshToken())
			expectStatus(resp, err, http.StatusOK)
		})
	})

	It("should refuse to delete without a token", func() {
		resp, err := client.Message.Delete(ctx, 1, "")
		expectStatus(resp, err, http.StatusForbidden)
	})

	It("should delete a message it created", func() {
		resp, err := client.Message.Create(ctx)
		expectStatus(resp, err, http.StatusOK)
		id, err := client.Message.CreatedID(resp)
		Expect(err).NotTo(HaveOccurred())

		resp, err = client.Message.Delete(ctx, id, freshToken())
		expectStatus(resp, err, http.StatusOK)

		resp, err = client.Message.Get(ctx, id)
		expectStatus(resp, err, http.StatusNotFound)
	})
})
