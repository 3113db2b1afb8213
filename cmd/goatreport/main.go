// main is the entry point for the goatreport CLI.
package main

import (
	"os"

	"github.com/KobeFor3ver/goatgames-daily-report/cmd"
	"github.com/KobeFor3ver/goatgames-daily-report/internal/contract"
)

func main() {
	if err := cmd.Execute(); err != nil {
		contract.LogWarn("command failed", err)
		os.Exit(1)
	}
}
