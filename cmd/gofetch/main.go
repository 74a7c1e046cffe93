// gofetch performs a GET against a configured base URL and prints the
// decoded response.
//
// Usage:
//
//	gofetch get /items/1 --base-url https://api.example.com
//	gofetch get /items/1 --config config.yml -i sequence,response-time,logger
//	gofetch version
//
// Configuration is read from config.yml and .env (see config.LoadConfig);
// GOFETCH_* environment variables override file values.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
