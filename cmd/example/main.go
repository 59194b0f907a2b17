// Command example demonstrates the Signalbeam client against a local
// sink (run cmd/server first):
//
//	go run ./cmd/server &
//	go run ./cmd/example
package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/signalbeam/signalbeam/pkg/sdk"
	"github.com/signalbeam/signalbeam/pkg/sdk/httpx"
	"github.com/signalbeam/signalbeam/pkg/sdk/params"
	"github.com/signalbeam/signalbeam/pkg/sdk/signals"
)

func main() {
	client := sdk.NewWithConfig("example-app", sdk.Config{
		BaseURL: "http://localhost:8080",
		Salt:    "example-salt",
		DefaultParams: map[string]string{
			"environment": "development",
		},
	})

	// Fire-and-forget: returns immediately, outcome invisible.
	client.Send(signals.SessionStarted)
	client.Send("buttonClick", sdk.WithClientUser("user@example.com"))
	client.Send("appOpened", sdk.WithPayload(map[string]string{
		params.DevicePlatform:   "linux",
		params.RunContextLocale: "en_US",
	}))

	// Awaited: blocks for the round trip and reports the outcome.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := client.SendSync(ctx, signals.PurchaseCompleted,
		sdk.WithClientUser("user@example.com"),
		sdk.WithFloatValue(49.99),
		sdk.WithPayload(map[string]string{
			params.PurchaseCurrencyCode: "USD",
		}),
	)
	if err != nil {
		log.Printf("purchase signal not delivered: %v", err)
	} else {
		log.Println("purchase signal delivered")
	}

	// Auto-instrument an HTTP server: one signal per request.
	mux := http.NewServeMux()
	mux.HandleFunc("/hello", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hello\n"))
	})

	log.Println("demo app listening on :8000 (requests emit signals)")
	log.Fatal(http.ListenAndServe(":8000", httpx.Middleware(client)(mux)))
}
