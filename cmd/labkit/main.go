package main

import "github.com/danmuck/labkit/internal/cli"

func main() {
	cli.Execute()
}
