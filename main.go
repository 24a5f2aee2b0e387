package main

import "github.com/xvierd/pomodoro/cmd"

func main() {
	cmd.Execute()
}
