// internal/browser/executor.go
package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	json "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// evaluateFunc runs a script in the page and stores the JSON result in res.
// Session.evaluate is the production implementation.
type evaluateFunc func(ctx context.Context, script string, res *[]byte) error

// scriptExecutor applies a per-operation timeout around evaluateFunc and
// classifies failures.
type scriptExecutor struct {
	logger   *zap.Logger
	evaluate evaluateFunc
	timeout  time.Duration
}

// run evaluates script and returns its raw JSON result. op names the
// operation in errors and logs.
func (e scriptExecutor) run(ctx context.Context, op, script string) ([]byte, error) {
	timeout := e.timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var res []byte
	err := e.evaluate(opCtx, script, &res)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("context error during %s: %w", op, ctx.Err())
		}
		if opCtx.Err() == context.DeadlineExceeded {
			e.logger.Debug("Script evaluation timed out.", zap.String("op", op), zap.Duration("timeout", timeout))
			return nil, fmt.Errorf("timeout during %s after %v: %w", op, timeout, opCtx.Err())
		}
		return nil, fmt.Errorf("failed %s evaluation: %w", op, err)
	}
	return res, nil
}

// invocation renders "(fn)(arg1, arg2, ...)" with JSON-encoded arguments.
func invocation(fn string, args ...interface{}) (string, error) {
	encoded := make([]string, len(args))
	for i, a := range args {
		b, err := json.Marshal(a)
		if err != nil {
			return "", fmt.Errorf("failed to encode script argument %d: %w", i, err)
		}
		encoded[i] = string(b)
	}
	return "(" + strings.TrimSpace(fn) + ")(" + strings.Join(encoded, ", ") + ")", nil
}
