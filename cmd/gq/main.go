package main

import "goalquest/cmd/gq/root"

func main() {
	root.Execute()
}
