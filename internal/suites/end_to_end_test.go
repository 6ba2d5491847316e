//nolint:testpackage,revive // dot imports are standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"restful_booker/internal/adapters/booker"
	"restful_booker/internal/app"
	"restful_booker/internal/randdata"
)

func snapshot() app.Snapshot {
	GinkgoHelper()
	s, err := app.TakeSnapshot(ctx, client, 1)
	Expect(err).NotTo(HaveOccurred())
	return s
}

var _ = Describe("End to end", func() {
	It("should show a new booking in the booking list and the report", func() {
		before := snapshot()

		in, out := stays.Next(2)
		resp, err := client.Booking.Create(ctx, in, out, 1)
		expectStatus(resp, err, http.StatusOK)

		after := snapshot()
		Expect(after.Bookings).NotTo(Equal(before.Bookings))
		Expect(after.Report).NotTo(Equal(before.Report))
		Expect(after.Report).To(ContainSubstring(in))
	})

	It("should show a new room in the room list", func() {
		before := snapshot()

		resp, err := client.Room.Create(ctx, booker.RoomNumber(randdata.IntBetween(1000, 99999)))
		expectStatus(resp, err, http.StatusOK)

		Expect(snapshot().Rooms).NotTo(Equal(before.Rooms))
	})

	It("should show a new message in the message list", func() {
		before := snapshot()

		msg := booker.NewMessage()
		msg.Subject = "run " + runID[:8]
		resp, err := client.Message.Send(ctx, msg)
		expectStatus(resp, err, http.StatusOK)

		after := snapshot()
		Expect(after.Messages).NotTo(Equal(before.Messages))
		Expect(after.Messages).To(ContainSubstring(msg.Subject))
	})
})
