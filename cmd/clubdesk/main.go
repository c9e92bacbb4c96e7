package main

import "github.com/kiliclub/clubdesk/internal/cli"

func main() {
	cli.Execute()
}
