package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/plazo/cmd"
	"github.com/thenoetrevino/plazo/internal/cli"
)

func main() {
	err := cmd.Execute(context.Background())
	if err == nil {
		return
	}

	// commands report their own failures; anything else comes from cobra
	var exitErr *cli.CodeError
	if !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitUsage)
	}
	os.Exit(exitErr.Code)
}
