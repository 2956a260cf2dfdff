package main

import (
	"os"

	"github.com/familia-santos/aurora-site/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
