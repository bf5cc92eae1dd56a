// Package trade360client provides the primary entry point for constructing a
// Trade360 client that implements the trade360.Client interface.
//
// It layers configuration, the HTTP transport and the request dispatcher on
// top of the interfaces and types defined in the trade360 package. Most
// applications import trade360client to build a client, then use the
// returned trade360.Client to reach the sub-API clients Metadata(),
// Distribution() and Subscription().
//
// Quick start
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
//
//	  cli, err := trade360client.New(&trade360.Config{
//	    BaseURL:   "https://stm-api.lsports.eu/",
//	    PackageID: 1234,
//	    Username:  "user",
//	    Password:  "pass",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  defer cli.Close()
//
//	  sports, err := cli.Metadata().GetSports(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = sports
//	}
//
// # Helpers
//
// NewWithCredentials builds a client from a base URL and package credentials
// with default settings.
package trade360client
