package jsonrpc_test

import (
	"github.com/habiliai/perplexity-mcp/jsonrpc"
	"github.com/habiliai/perplexity-mcp/perplexity"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/mock"
)

func (s *Suite) TestInitialize() {
	resp := s.call("initialize", map[string]any{
		"protocolVersion": mcp.LATEST_PROTOCOL_VERSION,
		"capabilities":    map[string]any{},
		"clientInfo":      map[string]any{"name": "test", "version": "0.0.1"},
	})

	s.False(resp.Get("error").Exists())
	s.Equal(jsonrpc.ServerName, resp.Get("result.serverInfo.name").String())
	s.Equal(jsonrpc.ServerVersion, resp.Get("result.serverInfo.version").String())
	s.True(resp.Get("result.capabilities.tools").Exists())
	s.True(resp.Get("result.capabilities.resources").Exists())
	s.True(resp.Get("result.capabilities.prompts").Exists())
}

func (s *Suite) TestListTools() {
	resp := s.call("tools/list", nil)

	s.False(resp.Get("error").Exists())
	s.Equal(int64(1), resp.Get("result.tools.#").Int())
	s.Equal("perplexity_search", resp.Get("result.tools.0.name").String())
	s.Equal("query", resp.Get("result.tools.0.inputSchema.required.0").String())
}

func (s *Suite) TestEmptyCatalogs() {
	resources := s.call("resources/list", nil)
	s.False(resources.Get("error").Exists())
	s.Equal(int64(0), resources.Get("result.resources.#").Int())

	prompts := s.call("prompts/list", nil)
	s.False(prompts.Get("error").Exists())
	s.Equal(int64(0), prompts.Get("result.prompts.#").Int())
}

func (s *Suite) TestCallTool() {
	s.searcher.On("Search", mock.Anything, perplexity.SearchRequest{Query: "x"}).Return(perplexity.SearchResult{
		Query:   "x",
		Results: []perplexity.SearchResultItem{},
		Answer:  "an answer",
	}).Once()

	resp := s.call("tools/call", map[string]any{
		"name":      "perplexity_search",
		"arguments": map[string]any{"query": "x"},
	})

	s.False(resp.Get("error").Exists())
	s.Equal(int64(1), resp.Get("result.content.#").Int())
	s.Equal("text", resp.Get("result.content.0.type").String())
	s.Equal("Search results for: \"x\"\n\nan answer", resp.Get("result.content.0.text").String())
}

func (s *Suite) TestCallToolUpstreamFailure() {
	s.searcher.On("Search", mock.Anything, mock.Anything).Return(perplexity.SearchResult{
		Query:   "x",
		Results: []perplexity.SearchResultItem{},
		Error:   "Perplexity API error: 401 - unauthorized",
	}).Once()

	resp := s.call("tools/call", map[string]any{
		"name":      "perplexity_search",
		"arguments": map[string]any{"query": "x"},
	})

	s.False(resp.Get("result").Exists())
	s.Equal(int64(mcp.INTERNAL_ERROR), resp.Get("error.code").Int())
	s.Contains(resp.Get("error.message").String(), "401")
	s.Contains(resp.Get("error.message").String(), "unauthorized")
}

func (s *Suite) TestCallUnknownTool() {
	resp := s.call("tools/call", map[string]any{
		"name":      "not_a_real_tool",
		"arguments": map[string]any{},
	})

	s.False(resp.Get("result").Exists())
	s.Equal(int64(mcp.INVALID_PARAMS), resp.Get("error.code").Int())
	s.Contains(resp.Get("error.message").String(), "not_a_real_tool")
}

func (s *Suite) TestCallToolInvalidArgumentsIsToolError() {
	for _, args := range []map[string]any{
		{"query": "   "},
		{"query": "x", "model": "gpt-4o"},
		{"query": "x", "output_schema": "not an object"},
	} {
		resp := s.call("tools/call", map[string]any{
			"name":      "perplexity_search",
			"arguments": args,
		})

		s.False(resp.Get("error").Exists(), "args %v", args)
		s.True(resp.Get("result.isError").Bool(), "args %v", args)
		s.Equal("text", resp.Get("result.content.0.type").String())
		s.Contains(resp.Get("result.content.0.text").String(), "invalid params")
	}
	s.searcher.AssertNotCalled(s.T(), "Search", mock.Anything, mock.Anything)
}
