/*
Package sdk provides the Signalbeam client library for emitting
telemetry signals from Go applications.

# Quick Start

Install Signalbeam in your app:

	go get github.com/signalbeam/signalbeam

Create a client and send a signal:

	package main

	import "github.com/signalbeam/signalbeam/pkg/sdk"

	func main() {
	    client := sdk.New("XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX")

	    // Fire-and-forget: never blocks, never errors
	    client.Send("userLogin", sdk.WithClientUser("user@example.com"))
	}

# Send Modes

Send detaches delivery onto the host's concurrency substrate and
discards the outcome. It is the right default for UI paths where a
telemetry failure must never reach the user.

SendSync waits for the HTTP round trip and reports serialization
failures, transport failures, and non-2xx statuses:

	if err := client.SendSync(ctx, "purchaseCompleted",
	    sdk.WithClientUser("user123"),
	    sdk.WithFloatValue(49.99),
	); err != nil {
	    log.Printf("signal not delivered: %v", err)
	}

Both modes send exactly one signal per call and make exactly one
attempt; there is no retry or offline queue.

# Privacy

User identifiers are SHA-256 hashed before transmission, optionally
with an application salt appended:

	client := sdk.NewWithConfig("YOUR-APP-ID", sdk.Config{
	    Salt: "your-64-char-random-salt-here",
	})

When no user is supplied, signals carry a fixed placeholder instead of
a hash.

# Sessions

Each client generates a random session id at construction. Reset it
when your notion of a session ends:

	client.ResetSession("")        // fresh random id
	client.ResetSession("sess-42") // explicit id

# Default Parameters

Parameters passed at construction ride along on every signal; per-send
payload entries override same-named defaults:

	client := sdk.NewWithConfig("YOUR-APP-ID", sdk.Config{
	    DefaultParams: map[string]string{"environment": "production"},
	})
	client.Send("appOpened", sdk.WithPayload(map[string]string{
	    "screen": "home",
	}))

The library version is always injected as telemetryClientVersion.

# Multi-tenant Namespaces

Set Config.Namespace to route signals to
{base}/v2/namespace/{namespace}/ instead of {base}/v2/.

# Execution Environments

On natively threaded hosts, fire-and-forget sends run on their own
goroutines. On js/wasm, they are queued onto a shared serial run loop
so delivery cooperates with the host event loop. The strategy is chosen
at build time; tests can inject a dispatcher via Config.Dispatcher.
*/
package sdk
