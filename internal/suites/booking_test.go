//nolint:testpackage,revive // dot imports are standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"restful_booker/internal/domain"
)

var _ = Describe("Booking", func() {
	It("should list bookings for room 1", func() {
		resp, err := client.Booking.List(ctx, 1)
		expectStatus(resp, err, http.StatusOK)

		var body struct {
			Bookings []domain.Booking `json:"bookings"`
		}
		Expect(resp.JSON(&body)).To(Succeed())
		for _, b := range body.Bookings {
			Expect(b.RoomID).To(Equal(1))
		}
	})

	It("should create a booking", func() {
		in, out := stays.Next(2)
		resp, err := client.Booking.Create(ctx, in, out, 1)
		expectStatus(resp, err, http.StatusOK)
	})

	Context("When a booking exists", func() {
		var id int

		BeforeEach(func() {
			in, out := stays.Next(3)
			resp, err := client.Booking.Create(ctx, in, out, 1)
			expectStatus(resp, err, http.StatusOK)
			id, err = client.Booking.CreatedID(resp)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should read, update and delete it", func() {
			// Given: the stored booking
			resp, err := client.Booking.Get(ctx, id)
			expectStatus(resp, err, http.StatusOK)
			var bk domain.Booking
			Expect(resp.JSON(&bk)).To(Succeed())
			Expect(bk.RoomID).To(Equal(1))

			// When: the first name changes
			token := freshToken()
			bk.Firstname = "Updated"
			resp, err = client.Booking.Update(ctx, id, bk, token)
			expectStatus(resp, err, http.StatusOK)

			// Then: the change is served back
			resp, err = client.Booking.Get(ctx, id)
			expectStatus(resp, err, http.StatusOK)
			var got domain.Booking
			Expect(resp.JSON(&got)).To(Succeed())
			Expect(got.Firstname).To(Equal("Updated"))

			// And: deleting it makes it disappear
			resp, err = client.Booking.Delete(ctx, id, token)
			expectStatus(resp, err, http.StatusOK)
			resp, err = client.Booking.Get(ctx, id)
			expectStatus(resp, err, http.StatusNotFound)
		})

		It("should refuse deletion without a token", func() {
			resp, err := client.Booking.Delete(ctx, id, "")
			expectStatus(resp, err, http.StatusForbidden)
		})
	})
})
