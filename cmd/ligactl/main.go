package main

import "github.com/ligasala/registration-portal/internal/cli"

func main() {
	cli.Execute()
}
