package main

import "github.com/personalfme/groupalarm-trigger/cmd/groupalarm-trigger/cmd"

func main() {
	cmd.Execute()
}
