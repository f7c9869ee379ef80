package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/adiguzelburak/bus-ticket/internal/queue"
)

// The consumer runs as its own process so ticket logging keeps up even
// when the API server is restarted.
func main() {
	_ = godotenv.Load()
	log.Printf("starting ticket.issued consumer")
	if err := queue.StartTicketConsumer(); err != nil {
		log.Fatal(err)
	}
}
