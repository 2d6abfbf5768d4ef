package main

import (
	"os"

	"github.com/thenoetrevino/shelf/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
