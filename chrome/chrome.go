package chrome

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/flowchartsman/retry"
	"github.com/mafredri/cdp"
	"github.com/mafredri/cdp/devtool"
	"github.com/mafredri/cdp/protocol/target"
	"github.com/mafredri/cdp/rpcc"
)

// Chrome is a Browser backed by a local Chrome process driven over the
// DevTools protocol.
type Chrome interface {
	Browser
	Wait()
	Terminate() error
}

func NewChrome() Chrome {
	return &chrome{}
}

type chrome struct {
	// command object to manage chrome process
	command *exec.Cmd
	// port on which chrome process is listening for dev tools protocol
	port *int
	// throw-away profile directory
	profile string
	// rpcc connection to chrome process
	conn *rpcc.Conn
	// browser client
	client *cdp.Client
	// the tab handed out by Launch
	tab *Tab
	// closed once the process has been reaped
	exited chan struct{}
}

var ErrChromeNotFound = errors.New("could not find Chrome executable")

func (c *chrome) Launch(ctx context.Context, opts *LaunchOpts) (BrowserTab, error) {
	c.port = Int(opts.Port())

	path := opts.Path()
	if path == "" {
		var err error
		path, err = FindExecutable()
		if err != nil {
			log.Println("chrome error: unable to locate chrome", err.Error())
			return nil, err
		}
	}

	profile, err := os.MkdirTemp("", "pagecheck-profile-*")
	if err != nil {
		return nil, err
	}
	c.profile = profile

	// create command with chrome path and arguments
	c.command = exec.Command(path, launchArguments(opts, IntValue(c.port), profile)...)

	// launch chrome process
	err = c.command.Start()
	if err != nil {
		log.Println("chrome error: unable to launch chrome", err.Error())
		return nil, err
	}
	c.exited = make(chan struct{})
	go c.wait()

	// attempt to connect with chrome over dev tools protocol
	connectCtx, cancel := context.WithTimeout(ctx, 120*time.Second)
	defer cancel()

	tab, err := c.connect(connectCtx)
	if err != nil {
		log.Println("chrome error: unable to connect to browser devtools protocol", err.Error())
		return nil, err
	}
	c.tab = tab

	return tab, nil
}

func launchArguments(opts *LaunchOpts, port int, profile string) []string {
	// prepare default arguments
	arguments := []string{
		"--disable-background-networking",
		"--disable-backgrounding-occluded-windows",
		"--disable-background-timer-throttling",
		"--disable-breakpad",
		"--disable-client-side-phishing-detection",
		"--disable-default-apps",
		"--disable-dev-shm-usage",
		"--disable-extensions",
		"--disable-features=site-per-process,TranslateUI",
		"--disable-gpu",
		"--disable-hang-monitor",
		"--disable-infobars",
		"--disable-ipc-flooding-protection",
		"--disable-popup-blocking",
		"--disable-prompt-on-repost",
		"--disable-renderer-backgrounding",
		"--disable-sync",
		"--disable-translate",
		"--enable-features=NetworkService,NetworkServiceInProcess",
		"--enable-automation",
		"--force-color-profile=srgb",
		"--hide-scrollbars",
		"--metrics-recording-only",
		"--mute-audio",
		"--no-first-run",
		"--no-sandbox",
		"--password-store=basic",
		fmt.Sprintf("--remote-debugging-port=%d", port),
		"--safebrowsing-disable-auto-update",
		"--use-mock-keychain",
		"--user-data-dir=" + profile,
	}

	// if additional arguments are specified, use them alongside the default ones
	arguments = append(arguments, opts.arguments...)

	// if headless is true, launch in headless mode
	if opts.headless {
		arguments = append(arguments, "--headless=new")
	}

	return append(arguments, "about:blank")
}

// Wait blocks until the chrome process has exited. It returns at once when
// no process was started.
func (c *chrome) Wait() {
	if c.exited == nil {
		return
	}
	<-c.exited
}

// wait reaps the chrome process; Launch runs it exactly once.
func (c *chrome) wait() {
	defer close(c.exited)

	err := c.command.Wait()
	if err != nil {
		log.Println("chrome error: premature exit", err.Error())
	}
}

func (c *chrome) Terminate() error {
	// handle scenario when someone tries to terminate a browser that never launched
	if c.command == nil || c.command.Process == nil {
		return nil
	}

	return c.command.Process.Kill()
}

// Close asks the browser to shut down and waits for the process to go away,
// killing it if ctx expires first. Safe to call after a failed Launch.
func (c *chrome) Close(ctx context.Context) error {
	defer c.removeProfile()

	if c.tab != nil {
		closeRes(c.tab)
	}

	var err error
	if c.client != nil {
		err = c.client.Browser.Close(ctx)
		if err != nil {
			log.Println("chrome error: unable to close browser", err.Error())
		}
		// the browser drops the socket itself on a clean close
		_ = c.conn.Close()
	} else if kerr := c.Terminate(); kerr != nil {
		// never connected, nothing to ask politely
		return kerr
	}

	if c.exited == nil {
		return err
	}

	select {
	case <-c.exited:
		return err
	case <-ctx.Done():
		if kerr := c.Terminate(); kerr != nil {
			return kerr
		}
		<-c.exited
		return ctx.Err()
	}
}

func (c *chrome) removeProfile() {
	if c.profile == "" {
		return
	}
	// chrome may still hold files for a moment after exit
	if err := os.RemoveAll(c.profile); err != nil {
		log.Println("chrome error: unable to remove profile", err.Error())
	}
	c.profile = ""
}

func (c *chrome) connect(ctx context.Context) (*Tab, error) {
	var targetID target.ID

	rt := retry.NewRetrier(10, 100*time.Millisecond, 2*time.Second)
	err := rt.RunContext(ctx, func(ctx context.Context) error {
		port, err := c.devtoolsPort()
		if err != nil {
			return err
		}

		// the browser endpoint is only served once chrome is up
		version, err := devtool.New(fmt.Sprintf("http://127.0.0.1:%d", port)).Version(ctx)
		if err != nil {
			return err
		}

		conn, err := rpcc.DialContext(ctx, version.WebSocketDebuggerURL)
		if err != nil {
			return err
		}
		client := cdp.NewClient(conn)

		// as chrome launches with a new tab already opened, query the browser for a list of available targets to connect to
		targets, err := client.Target.GetTargets(ctx)
		if err != nil {
			closeRes(conn)
			return err
		}

		targetID = ""
		for _, targetInfo := range targets.TargetInfos {
			// we want to connect to a page and not other target like service worker etc
			if targetInfo.Type == "page" {
				targetID = targetInfo.TargetID
				break
			}
		}

		if targetID == "" {
			createTarget, err := client.Target.CreateTarget(ctx, target.NewCreateTargetArgs("about:blank"))
			if err != nil {
				closeRes(conn)
				return err
			}
			targetID = createTarget.TargetID
		}

		c.conn, c.client = conn, client
		c.port = Int(port)
		return nil
	})
	if err != nil {
		return nil, err
	}

	tab := &Tab{Id: targetID, port: IntValue(c.port)}
	if err := tab.connect(ctx); err != nil {
		closeRes(tab)
		return nil, err
	}

	return tab, nil
}

// devtoolsPort is the configured port, or the one chrome picked itself when
// launched with --remote-debugging-port=0.
func (c *chrome) devtoolsPort() (int, error) {
	if port := IntValue(c.port); port != 0 {
		return port, nil
	}
	return readDevToolsActivePort(c.profile)
}

// readDevToolsActivePort parses the file chrome writes into its profile once
// the devtools server listens: the port on the first line, the browser
// target path on the second.
func readDevToolsActivePort(profile string) (int, error) {
	data, err := os.ReadFile(filepath.Join(profile, "DevToolsActivePort"))
	if err != nil {
		return 0, err
	}

	line, _, _ := strings.Cut(string(data), "\n")
	port, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("invalid DevToolsActivePort %q", line)
	}
	return port, nil
}

// FindExecutable locates Chrome, preferring CHROME_PATH.
func FindExecutable() (string, error) {
	if envPath := os.Getenv("CHROME_PATH"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
	}

	for _, path := range knownLocations(runtime.GOOS) {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	for _, name := range []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser"} {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}

	return "", ErrChromeNotFound
}

func knownLocations(goos string) []string {
	switch goos {
	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
		}
	case "windows":
		return []string{
			filepath.Join(os.Getenv("ProgramFiles"), "Google/Chrome/Application/chrome.exe"),
			filepath.Join(os.Getenv("ProgramFiles(x86)"), "Google/Chrome/Application/chrome.exe"),
			filepath.Join(os.Getenv("LocalAppData"), "Google/Chrome/Application/chrome.exe"),
		}
	case "linux":
		return []string{
			"/usr/bin/google-chrome",
			"/usr/bin/chromium",
			"/usr/bin/chromium-browser",
			"/snap/bin/chromium",
		}
	}
	return nil
}

func closeRes(close io.Closer) {
	err := close.Close()
	if err != nil {
		log.Println("error occurred while trying to close resource", err.Error())
	}
}
