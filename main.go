package main

import "github.com/jsphweid/chordsense/cmd"

func main() {
	cmd.Execute()
}
