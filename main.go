package main

import "github.com/Emanuel-de-Jong/MIDI-To-Strudel/cmd"

func main() {
	cmd.Execute()
}
