package errors

import (
	"fmt"
)

var (
	ErrInvalidConfig = fmt.Errorf("perplexity-mcp: invalid config")
	ErrInvalidParams = fmt.Errorf("perplexity-mcp: invalid params")
	ErrUnknownTool   = fmt.Errorf("perplexity-mcp: unknown tool")
	ErrInternal      = fmt.Errorf("perplexity-mcp: internal error")
)
