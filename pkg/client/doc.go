// Package client provides a small request client for the brokerage REST API.
//
// Requests are plain GETs described by a path and an ordered list of query
// parameters. Parameter values are percent-encoded with pkg/encoding, and date
// parameters are checked for the compact ISO-8601 shape before they are sent.
//
// Example usage:
//
//	import "github.com/tdapi/go-sdk/pkg/client"
//
//	c, err := client.New(client.Config{BaseURL: "https://api.example.com/v1"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	req := client.NewRequest("/accounts/123456789/orders").
//		Set("status", "FILLED")
//	if err := req.SetDateTime("fromEnteredTime", "2020-01-15"); err != nil {
//		log.Fatal(err)
//	}
//
//	body, err := c.Do(ctx, req)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(string(body))
package client
