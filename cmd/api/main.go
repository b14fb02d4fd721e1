// Command api runs the TextDrop HTTP server.
package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/VishardMehta/TextDrop/internal/server"
)

func main() {
	srv := server.NewServer()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("cannot start server: %s", err)
	}
}
