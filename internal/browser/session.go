// internal/browser/session.go
package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/xkilldash9x/scrollsnap/internal/config"
)

// Session owns one browser process and a single tab.
type Session struct {
	cfg    config.BrowserConfig
	logger *zap.Logger

	allocCancel context.CancelFunc
	ctx         context.Context
	cancel      context.CancelFunc

	mu       sync.Mutex
	isClosed bool
}

// NewSession launches a browser, opens a tab and applies the configured
// viewport. The browser lives until Close or until ctx is canceled.
func NewSession(ctx context.Context, cfg config.BrowserConfig, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("browser_session")

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, ExecAllocatorOptions(cfg)...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx,
		chromedp.WithLogf(logger.Sugar().Debugf),
		chromedp.WithErrorf(logger.Sugar().Errorf),
	)

	s := &Session{
		cfg:         cfg,
		logger:      logger,
		allocCancel: allocCancel,
		ctx:         tabCtx,
		cancel:      tabCancel,
	}

	// The first Run starts the browser.
	err := chromedp.Run(tabCtx,
		emulation.SetDeviceMetricsOverride(cfg.Viewport.Width, cfg.Viewport.Height, 1, false),
	)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to start browser session: %w", err)
	}

	logger.Debug("Browser session started.",
		zap.Bool("headless", cfg.Headless),
		zap.Int64("viewport_width", cfg.Viewport.Width),
		zap.Int64("viewport_height", cfg.Viewport.Height),
	)
	return s, nil
}

// ExecAllocatorOptions builds the chromedp allocator options for cfg.
func ExecAllocatorOptions(cfg config.BrowserConfig) []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(int(cfg.Viewport.Width), int(cfg.Viewport.Height)),
	}
	if cfg.Headless {
		opts = append(opts, chromedp.Headless)
	}

	// Extra flags, either "name" or "name=value", with or without leading dashes.
	for _, arg := range cfg.Args {
		arg = strings.TrimLeft(arg, "-")
		if arg == "" {
			continue
		}
		if key, value, found := strings.Cut(arg, "="); found {
			opts = append(opts, chromedp.Flag(key, value))
		} else {
			opts = append(opts, chromedp.Flag(key, true))
		}
	}
	return opts
}

// RunActions runs chromedp actions in the tab, canceled when either ctx or
// the session ends.
func (s *Session) RunActions(ctx context.Context, actions ...chromedp.Action) error {
	opCtx, cancel := CombineContext(s.ctx, ctx)
	defer cancel()
	return chromedp.Run(opCtx, actions...)
}

// Navigate loads url and waits for the body to be ready plus the configured
// post-load quiet period.
func (s *Session) Navigate(ctx context.Context, url string) error {
	s.logger.Debug("Navigating to URL", zap.String("url", url))

	opCtx, opCancel := CombineContext(s.ctx, ctx)
	defer opCancel()

	navTimeout := s.cfg.NavigationTimeout
	if navTimeout <= 0 {
		navTimeout = 60 * time.Second
	}
	navCtx, navCancel := context.WithTimeout(opCtx, navTimeout)
	defer navCancel()

	if err := chromedp.Run(navCtx, chromedp.Navigate(url), chromedp.WaitReady("body", chromedp.ByQuery)); err != nil {
		if navCtx.Err() == context.DeadlineExceeded && opCtx.Err() == nil {
			return fmt.Errorf("navigation timed out after %s: %w", navTimeout, err)
		}
		if opCtx.Err() != nil {
			return fmt.Errorf("navigation canceled: %w", opCtx.Err())
		}
		return fmt.Errorf("navigation failed: %w", err)
	}

	if wait := s.cfg.PostLoadWait; wait > 0 {
		if err := chromedp.Run(opCtx, chromedp.Sleep(wait)); err != nil {
			return fmt.Errorf("post-load wait interrupted: %w", err)
		}
	}
	return nil
}

// Snapshot captures the layout of the first element matching selector and
// everything below it.
func (s *Session) Snapshot(ctx context.Context, selector string) (*Container, error) {
	return takeSnapshot(ctx, s.executor(), selector, newTag(), selector)
}

func (s *Session) executor() scriptExecutor {
	return scriptExecutor{
		logger:   s.logger,
		evaluate: s.evaluate,
		timeout:  s.cfg.ScriptTimeout,
	}
}

// evaluate returns the script result by value without awaiting promises.
func (s *Session) evaluate(ctx context.Context, script string, res *[]byte) error {
	return s.RunActions(ctx, chromedp.Evaluate(script, res, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
		return p.WithReturnByValue(true).WithAwaitPromise(false).WithSilent(true)
	}))
}

// Close shuts the tab and the browser process down. It is safe to call
// more than once.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.isClosed {
		s.mu.Unlock()
		return nil
	}
	s.isClosed = true
	s.mu.Unlock()

	s.logger.Debug("Closing browser session.")
	s.cancel()
	s.allocCancel()
	return nil
}
