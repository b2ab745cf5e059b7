package main

import (
	"log"
)

var version = "dev"

func main() {
	if err := realMain(); err != nil {
		log.Fatal(err)
	}
}

func realMain() error {
	return newRootCommand().Execute()
}
