package check

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.ajitem.com/pagecheck/chrome"
)

const (
	// LocalBaseURL serves relative targets.
	LocalBaseURL = "http://localhost:3003/"
	// TilePrefix marks requests to the map-tile server.
	TilePrefix = "https://wmts.geo.admin.ch/"
)

// Engine selects the browser driver behind a check, set via PAGECHECK_ENGINE.
type Engine string

const (
	EngineCDP        Engine = "cdp"
	EnginePlaywright Engine = "playwright"
)

var ErrMissingTarget = errors.New("please provide a HTML file as the first argument")

type Config struct {
	// Target is the URL to load.
	Target string
	// Screenshot is the output path, empty when no screenshot is taken.
	Screenshot string
	// CI is true when running under continuous integration. Nothing in the
	// check loop depends on it yet.
	CI bool

	ChromePath string
	// ChromePort is the remote debugging port; zero lets chrome choose.
	ChromePort int
	Engine     Engine
}

// ConfigFromArgs resolves the positional target and the environment.
// args excludes the program name.
func ConfigFromArgs(args []string, getenv func(string) string) (Config, error) {
	if len(args) == 0 || args[0] == "" {
		return Config{}, fail(KindUsage, ErrMissingTarget)
	}

	cfg := ResolveTarget(args[0])
	cfg.CI = getenv("CI") == "true"
	cfg.ChromePath = getenv("CHROME_PATH")
	cfg.Engine = EngineCDP

	if port := getenv("CHROME_PORT"); port != "" {
		n, err := strconv.Atoi(port)
		if err != nil || n <= 0 || n > 65535 {
			return Config{}, fail(KindUsage, fmt.Errorf("invalid CHROME_PORT %q", port))
		}
		cfg.ChromePort = n
	}

	switch engine := Engine(strings.ToLower(getenv("PAGECHECK_ENGINE"))); engine {
	case "", EngineCDP:
	case EnginePlaywright:
		cfg.Engine = engine
	default:
		return Config{}, fail(KindUsage, fmt.Errorf("unknown PAGECHECK_ENGINE %q", engine))
	}

	return cfg, nil
}

// ResolveTarget turns the positional argument into the page URL and, for
// local files, the screenshot path.
func ResolveTarget(arg string) Config {
	if strings.HasPrefix(arg, "http") {
		return Config{Target: arg}
	}
	return Config{
		Target:     LocalBaseURL + arg,
		Screenshot: arg + ".png",
	}
}

func (c Config) LaunchOpts() *chrome.LaunchOpts {
	opts := chrome.NewLaunchOpts()
	if c.ChromePath != "" {
		opts.SetPath(c.ChromePath)
	}
	if c.ChromePort != 0 {
		opts.SetPort(c.ChromePort)
	}
	return opts
}
