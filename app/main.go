package main

import (
	"log"

	"github.com/Neev4n/basic-shell-go/internal/cli"
)

func main() {

	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}

}
