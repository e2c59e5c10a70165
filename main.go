package main

import (
	"fmt"
	"os"

	"github.com/elborak3000/nessie/applog"
	"github.com/elborak3000/nessie/cmd"
)

func main() {
	defer applog.Close()

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
