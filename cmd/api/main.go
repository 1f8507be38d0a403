package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

// @title Foster Intake API
// @version 1.0
// @description Dosis por peso y schedules de medicación para gatitos que salen a foster.
// @BasePath /
func main() {
	app := &cli.Command{
		Name:  "foster-intake",
		Usage: "Kitten intake dosing and foster schedules",
		Commands: []*cli.Command{
			cmdServe,
			cmdMigrate,
			cmdDoses,
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
