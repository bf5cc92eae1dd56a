// Package trade360 provides types, interfaces, and helpers for working with
// the Trade360 customer API.
//
// # Overview
//
// The trade360 package defines the domain types (Sport, League, Market,
// FixtureMetadata, Suspension, ...), the request and response types of each
// sub-API, and the interfaces for the sub-API clients (MetadataClient,
// DistributionClient, SubscriptionClient). A concrete implementation is
// provided by the trade360client package, which wires configuration,
// transport and credentials. Most consumers should import trade360client to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/lsportsltd/trade360-go-sdk/pkg/trade360"
//	  "github.com/lsportsltd/trade360-go-sdk/pkg/trade360client"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := trade360client.New(&trade360.Config{
//	    BaseURL:   "https://stm-api.lsports.eu/",
//	    PackageID: 123,
//	    Username:  "user",
//	    Password:  "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  sports, err := cli.Metadata().GetSports(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = sports
//	}
//
// # Errors
//
// Every call either returns its response or exactly one error:
//
//   - configuration errors wrap ErrInvalidConfig and are returned by the
//     constructor, never lazily;
//   - *ValidationError is returned before any network activity;
//   - *APIError carries the provider status, request id and messages;
//   - *DecodeError is returned when the response is not a valid envelope;
//   - errors wrapping ErrCanceled carry the context error;
//   - ErrClientClosed is returned after Close.
//
// Nothing is retried.
//
// # Interceptors
//
// InterceptorChain runs hooks around every call. LoggingInterceptor,
// HeaderInterceptor and MetricsCollector cover the common cases.
package trade360
