// Command pagecheck loads a map page in headless Chrome and fails unless it
// settles without script errors or failed requests.
//
//	pagecheck map.html                  # http://localhost:3003/map.html, writes map.html.png
//	pagecheck https://example.com/map   # no screenshot
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"go.ajitem.com/pagecheck/check"
	"go.ajitem.com/pagecheck/chrome"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := log.New(os.Stdout, "", 0)

	cfg, err := check.ConfigFromArgs(args, os.Getenv)
	if err != nil {
		logger.Println(err)
		return check.ExitCode(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err = check.New(cfg, newBrowser(cfg.Engine), logger).Run(ctx)
	return check.ExitCode(err)
}

func newBrowser(engine check.Engine) chrome.Browser {
	if engine == check.EnginePlaywright {
		return chrome.NewPlaywright()
	}
	return chrome.NewChrome()
}
