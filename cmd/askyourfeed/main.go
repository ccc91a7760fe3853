package main

import (
	"os"

	protocol "github.com/sopeal/AskYourFeed/protocal"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// A local .env is optional; environment variables win either way.
	_ = godotenv.Load()

	if err := protocol.Run(); err != nil {
		logrus.Println(err)
		os.Exit(1)
	}
}
