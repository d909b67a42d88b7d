package jsonrpc_test

import (
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/habiliai/perplexity-mcp/internal/mylog"
	"github.com/habiliai/perplexity-mcp/jsonrpc"
	"github.com/habiliai/perplexity-mcp/perplexity"
	"github.com/habiliai/perplexity-mcp/tool"
	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/mock"
)

func (s *Suite) TestHealth() {
	handler := jsonrpc.NewHandlerWithHealth(s.mcpServer, "http://localhost:3000", mylog.Discard())
	server := httptest.NewServer(handler)
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/health")
	s.Require().NoError(err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal("OK", string(body))
}

func (s *Suite) TestMessageWithoutSession() {
	handler := jsonrpc.NewHandlerWithHealth(s.mcpServer, "http://localhost:3000", mylog.Discard())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/message", nil)
	handler.ServeHTTP(rec, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *Suite) TestSSECallTool() {
	s.searcher.On("Search", mock.Anything, perplexity.SearchRequest{Query: "capital of France"}).Return(perplexity.SearchResult{
		Query:   "capital of France",
		Results: []perplexity.SearchResultItem{},
		Answer:  "Paris",
	}).Once()

	server := httptest.NewUnstartedServer(nil)
	server.Config.Handler = jsonrpc.NewHandlerWithHealth(s.mcpServer, "http://"+server.Listener.Addr().String(), mylog.Discard())
	server.Start()
	defer server.Close()

	c, err := client.NewSSEMCPClient(server.URL + "/sse")
	s.Require().NoError(err)
	defer c.Close()
	s.Require().NoError(c.Start(s))

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "test", Version: "0.0.1"}
	info, err := c.Initialize(s, initReq)
	s.Require().NoError(err)
	s.Equal(jsonrpc.ServerName, info.ServerInfo.Name)

	tools, err := c.ListTools(s, mcp.ListToolsRequest{})
	s.Require().NoError(err)
	s.Require().Len(tools.Tools, 1)
	s.Equal(tool.SearchToolName, tools.Tools[0].Name)

	callReq := mcp.CallToolRequest{}
	callReq.Params.Name = tool.SearchToolName
	callReq.Params.Arguments = map[string]any{"query": "capital of France"}
	res, err := c.CallTool(s, callReq)
	s.Require().NoError(err)
	s.False(res.IsError)
	s.Require().Len(res.Content, 1)
	text, ok := res.Content[0].(mcp.TextContent)
	s.Require().True(ok, "content is %T", res.Content[0])
	s.Equal("Search results for: \"capital of France\"\n\nParis", text.Text)
}
