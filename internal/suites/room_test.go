//nolint:testpackage,revive // dot imports are standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"restful_booker/internal/adapters/booker"
	"restful_booker/internal/domain"
	"restful_booker/internal/randdata"
)

// createRoom adds a room with a fresh number and removes it once the test ends.
func createRoom(opts ...booker.RoomOption) (int, int) {
	GinkgoHelper()
	number := randdata.IntBetween(1000, 99999)
	resp, err := client.Room.Create(ctx, append(opts, booker.RoomNumber(number))...)
	expectStatus(resp, err, http.StatusOK)
	id, err := client.Room.CreatedID(resp)
	Expect(err).NotTo(HaveOccurred())

	DeferCleanup(func() {
		_, _ = client.Room.Delete(ctx, id, freshToken())
	})
	return id, number
}

var _ = Describe("Room", func() {
	It("should list rooms", func() {
		resp, err := client.Room.List(ctx)
		expectStatus(resp, err, http.StatusOK)
	})

	It("should create a room with default values", func() {
		resp, err := client.Room.Create(ctx)
		expectStatus(resp, err, http.StatusOK)
	})

	Context("When a room is created with a unique number", func() {
		It("should appear in the room list", func() {
			_, number := createRoom(booker.RoomOfType(domain.RoomFamily))

			numbers := []int{}
			for _, rm := range listRooms() {
				numbers = append(numbers, rm.RoomNumber)
			}
			Expect(numbers).To(ContainElement(number))
		})

		It("should be removed by delete", func() {
			id, _ := createRoom()

			resp, err := client.Room.Delete(ctx, id, freshToken())
			expectStatus(resp, err, http.StatusOK)

			ids := []int{}
			for _, rm := range listRooms() {
				ids = append(ids, rm.RoomID)
			}
			Expect(ids).NotTo(ContainElement(id))
		})

		It("should refuse an update without a token", func() {
			id, _ := createRoom()
			resp, err := client.Room.Update(ctx, id, booker.NewRoom(), "")
			expectStatus(resp, err, http.StatusForbidden)
		})
	})
})
