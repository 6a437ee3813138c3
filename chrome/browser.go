package chrome

import "context"

// Browser is an automation engine able to open one controllable tab.
type Browser interface {
	Launch(ctx context.Context, opts *LaunchOpts) (BrowserTab, error)
	Close(ctx context.Context) error
}
