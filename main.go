package main

import "github.com/llehouerou/cutline/internal/cli"

func main() {
	cli.Execute()
}
