package chrome

type LaunchOpts struct {
	path      string
	port      *int
	arguments []string
	headless  bool
}

func NewLaunchOpts() *LaunchOpts {
	return &LaunchOpts{
		headless: true,
	}
}

func (l *LaunchOpts) SetPath(path string) {
	l.path = path
}

func (l *LaunchOpts) SetPort(port int) {
	l.port = &port
}

func (l *LaunchOpts) SetArguments(arguments ...string) {
	l.arguments = append(l.arguments, arguments...)
}

func (l *LaunchOpts) SetHeadless(headless bool) {
	l.headless = headless
}

// Path returns the configured executable path, which may be empty.
func (l *LaunchOpts) Path() string {
	return l.path
}

// Port returns the remote debugging port. Zero lets chrome pick a free one.
func (l *LaunchOpts) Port() int {
	return IntValue(l.port)
}

// ScreenshotOpts describes the emulated viewport a tab renders into.
type ScreenshotOpts struct {
	Width             int
	Height            int
	DeviceScaleFactor float64
	Mobile            bool
}

// HighDensityViewport is twice a 1920x1080 desktop in each dimension.
func HighDensityViewport() ScreenshotOpts {
	return ScreenshotOpts{
		Width:             1920 * 2,
		Height:            1080 * 2,
		DeviceScaleFactor: 1,
	}
}
