package main

import (
	"pagecraft/cmd/cmd"
	"pagecraft/internal/logger"
)

func main() {
	logger.Init()
	cmd.Execute()
}
