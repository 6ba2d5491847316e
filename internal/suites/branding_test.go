//nolint:testpackage,revive // dot imports are standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"restful_booker/internal/adapters/booker"
	"restful_booker/internal/fixtures"
)

func brandingEntries(fs []fixtures.Branding) []TableEntry {
	out := make([]TableEntry, 0, len(fs))
	for _, f := range fs {
		out = append(out, Entry(f.Name, f))
	}
	return out
}

var _ = Describe("Branding", func() {
	It("should return the current branding", func() {
		resp, err := client.Branding.Get(ctx)
		expectStatus(resp, err, http.StatusOK)
	})

	DescribeTable("accepting values on the bounds",
		func(f fixtures.Branding) {
			// Given: a branding built from the fixture
			want := booker.NewBranding(f.Options...)
			// When: it is stored
			resp, err := client.Branding.Put(ctx, want)
			expectStatus(resp, err, f.WantStatus)
			// Then: the platform serves the new values
			got := currentBranding()
			Expect(got.Name).To(Equal(want.Name))
			Expect(got.Description).To(Equal(want.Description))
			Expect(got.Contact.Address).To(Equal(want.Contact.Address))
			Expect(got.Map).To(Equal(want.Map))
		},
		brandingEntries(fixtures.ValidBranding()),
	)

	DescribeTable("rejecting values past the bounds",
		func(f fixtures.Branding) {
			before := currentBranding()

			resp, err := client.Branding.Update(ctx, f.Options...)
			expectStatus(resp, err, f.WantStatus)

			Expect(currentBranding()).To(Equal(before), "a rejected update must leave branding unchanged")
		},
		brandingEntries(fixtures.InvalidBranding()),
	)

	Context("When the token is empty", func() {
		It("should refuse the update", func() {
			resp, err := client.Branding.UpdateWithToken(ctx, "", booker.NewBranding())
			expectStatus(resp, err, http.StatusForbidden)
		})
	})
})
