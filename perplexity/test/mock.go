package perplexitytest

import (
	"context"

	"github.com/habiliai/perplexity-mcp/perplexity"
	"github.com/stretchr/testify/mock"
)

type SearcherMock struct {
	mock.Mock
}

func (m *SearcherMock) Search(ctx context.Context, req perplexity.SearchRequest) perplexity.SearchResult {
	args := m.Called(ctx, req)
	return args.Get(0).(perplexity.SearchResult)
}

var (
	_ perplexity.Searcher = (*SearcherMock)(nil)
)
