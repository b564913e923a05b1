// Command nametags prints name tags onto a US Letter badge sheet.
//
// # Installation
//
//	go install github.com/chtl/nametags/cmd/nametags@latest
//
// # Usage
//
//	nametags serve                       # web form on :8080
//	nametags render -i form.json -o tags.pdf
//	nametags layout -i form.json
//
// # Configuration
//
// Environment variables PORT, LOG_LEVEL, NAMETAGS_TEMPLATE, NAMETAGS_LOGO,
// NAMETAGS_FONT_REGULAR, NAMETAGS_FONT_SEMIBOLD and NAMETAGS_MAX_BODY, or a
// TOML file passed with --config:
//
//	port = "8080"
//
//	[assets]
//	template = "Avery5390.pdf"
//	font_regular = "OpenSans-Regular.ttf"
//	font_semibold = "OpenSans-SemiBold.ttf"
//
//	[geometry]
//	top_band = 3
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chtl/nametags/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "nametags: %v\n", err)
		os.Exit(1)
	}
}
