// internal/browser/context_utils_test.go
package browser

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

// TestCombineContext verifies the behavior of CombineContext.
func TestCombineContext(t *testing.T) {
	defer goleak.VerifyNone(t)

	type ctxKey string
	const key ctxKey = "testKey"
	const value = "testValue"

	t.Run("InheritsValuesFromPrimary", func(t *testing.T) {
		ctx1 := context.WithValue(context.Background(), key, value)

		combinedCtx, cancel := CombineContext(ctx1, context.Background())
		defer cancel()

		assert.Equal(t, value, combinedCtx.Value(key), "Combined context should inherit values from ctx1")
		assert.Nil(t, combinedCtx.Err(), "Context should not be done yet")
	})

	t.Run("CancelledByPrimary", func(t *testing.T) {
		ctx1, cancel1 := context.WithCancel(context.Background())

		combinedCtx, cancelCombined := CombineContext(ctx1, context.Background())
		defer cancelCombined()

		cancel1()
		assert.Eventually(t, func() bool {
			return combinedCtx.Err() != nil
		}, 100*time.Millisecond, 10*time.Millisecond)
		assert.ErrorIs(t, combinedCtx.Err(), context.Canceled)
	})

	t.Run("CancelledBySecondary", func(t *testing.T) {
		ctx2, cancel2 := context.WithCancel(context.Background())

		combinedCtx, cancelCombined := CombineContext(context.Background(), ctx2)
		defer cancelCombined()

		cancel2()
		assert.Eventually(t, func() bool {
			return combinedCtx.Err() != nil
		}, 100*time.Millisecond, 10*time.Millisecond, "Combined context should be cancelled when ctx2 is cancelled")
		assert.ErrorIs(t, combinedCtx.Err(), context.Canceled)
	})

	t.Run("SecondaryDeadlineCancels", func(t *testing.T) {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel2()

		combinedCtx, cancelCombined := CombineContext(context.Background(), ctx2)
		defer cancelCombined()

		<-combinedCtx.Done()
		// The combined context is canceled, not timed out, since it derives from ctx1.
		assert.ErrorIs(t, combinedCtx.Err(), context.Canceled)
	})

	t.Run("ExplicitCancellation", func(t *testing.T) {
		combinedCtx, cancelCombined := CombineContext(context.Background(), context.Background())
		cancelCombined()
		assert.ErrorIs(t, combinedCtx.Err(), context.Canceled)
	})
}
