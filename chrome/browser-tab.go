package chrome

import "context"

type BrowserTab interface {
	// SetViewport overrides the device metrics of the tab.
	SetViewport(ctx context.Context, opts ScreenshotOpts) error
	// Listen enables request interception and returns the tab's events in
	// the order the engine emitted them. The channel is closed when the
	// connection goes away or ctx is done.
	Listen(ctx context.Context) (<-chan Event, error)
	// ContinueRequest lets an intercepted request proceed unmodified.
	ContinueRequest(ctx context.Context, interceptID string) error
	// Navigate loads url and returns once the load event has fired.
	Navigate(ctx context.Context, url string) error
	// CaptureScreenshot writes a PNG of the viewport to path.
	CaptureScreenshot(ctx context.Context, path string) error
}
