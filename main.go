package main

import "github.com/mirtechlab/mt-analytics/cmd"

func main() {
	cmd.Execute()
}
