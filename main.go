package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/chorin/cmd"
	"github.com/thenoetrevino/chorin/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// Commands that return an exit code have already reported the error
	var exitErr *cli.ExitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(cli.ExitError)
}
