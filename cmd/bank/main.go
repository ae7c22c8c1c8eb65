package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/quintans/simple-bank/internal/infrastructure"
)

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&log.TextFormatter{
		DisableQuote: true,
	})
}

func main() {
	cfg, err := infrastructure.ParseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if err := infrastructure.Setup(cfg); err != nil {
		log.Fatalf("%+v", err)
	}
}
