package main

import (
	"os"

	"github.com/PolarWolf314/followscraper/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
