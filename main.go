package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/OliveiraNt/pubsub-bootstrap/cmd"
	"github.com/OliveiraNt/pubsub-bootstrap/internal/utils"
)

func main() {
	_ = godotenv.Load()
	utils.InitLogger()
	os.Exit(cmd.Run(os.Args[1:]))
}
