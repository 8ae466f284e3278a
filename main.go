package main

import (
	cmd "github.com/rohmanhakim/msgrender/internal/cli"
)

func main() {
	cmd.Execute()
}
