package main

import "github.com/Deepankar977/Data-Explorer/cmd"

func main() {
	cmd.Execute()
}
