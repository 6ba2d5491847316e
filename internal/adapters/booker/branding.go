package booker

import (
	"context"
	"net/http"

	"restful_booker/internal/domain"
)

// BrandingAPI wraps /branding.
type BrandingAPI struct{ c *Client }

func (b *BrandingAPI) Get(ctx context.Context) (*Response, error) {
	return b.c.do(ctx, request{method: http.MethodGet, resource: "branding"})
}

// Update builds a branding from opts and PUTs it with a fresh token.
func (b *BrandingAPI) Update(ctx context.Context, opts ...BrandingOption) (*Response, error) {
	return b.Put(ctx, NewBranding(opts...))
}

// Put sends br as-is with a fresh token.
func (b *BrandingAPI) Put(ctx context.Context, br domain.Branding) (*Response, error) {
	token, err := b.c.Auth.Token(ctx)
	if err != nil {
		return nil, err
	}
	return b.UpdateWithToken(ctx, token, br)
}

// UpdateWithToken sends br with the given token, which may be empty or bogus.
func (b *BrandingAPI) UpdateWithToken(ctx context.Context, token string, br domain.Branding) (*Response, error) {
	return b.c.do(ctx, request{
		method:   http.MethodPut,
		resource: "branding",
		body:     br,
		token:    withToken(token),
	})
}
