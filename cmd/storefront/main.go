package main

import (
	"log"

	"urbanfit-store/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
