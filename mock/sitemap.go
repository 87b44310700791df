package mock

import (
	"context"

	"github.com/wczarnecki/docgather"
)

var _ docgather.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docgather.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
