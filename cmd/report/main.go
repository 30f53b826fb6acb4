package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vfg2006/ads-insights-gateway/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())

		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(cli.ExitCodeUnknown)
	}
}
