package jsonrpc_test

import (
	"bufio"
	"context"
	"io"

	"github.com/habiliai/perplexity-mcp/internal/mylog"
	"github.com/habiliai/perplexity-mcp/jsonrpc"
	"github.com/tidwall/gjson"
)

func (s *Suite) TestServeStdio() {
	ctx, cancel := context.WithCancel(s)
	defer cancel()

	inReader, inWriter := io.Pipe()
	outReader, outWriter := io.Pipe()

	done := make(chan error, 1)
	go func() {
		done <- jsonrpc.ServeStdio(ctx, s.mcpServer, inReader, outWriter, mylog.Discard())
	}()

	lines := bufio.NewScanner(outReader)
	lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	_, err := io.WriteString(inWriter, `{"jsonrpc":"2.0","id":1,"method":"ping"}`+"\n")
	s.Require().NoError(err)
	s.Require().True(lines.Scan())
	s.Equal(int64(1), gjson.Get(lines.Text(), "id").Int())
	s.True(gjson.Get(lines.Text(), "result").Exists())

	_, err = io.WriteString(inWriter, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`+"\n")
	s.Require().NoError(err)
	s.Require().True(lines.Scan())
	s.Equal("perplexity_search", gjson.Get(lines.Text(), "result.tools.0.name").String())

	cancel()
	_ = inWriter.Close()
	s.NoError(<-done)
	_ = outReader.Close()
}
