package main

import "safewatch/cmd/safewatch/cmd"

func main() {
	cmd.Execute()
}
