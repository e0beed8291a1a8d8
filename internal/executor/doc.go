/*
Package executor owns the HTTP client handle used to fetch URLs.

# Overview

A single Client is created at startup and shared by every request the UI
fires. It wraps a resty client configured once (timeout, User-Agent,
optional transport) and never changed afterwards.

Fetch performs exactly two steps:
  - issue a GET to the URL
  - read the entire response body as text

Either step may fail; both surface as one wrapped error. There are no
retries and the status code is not inspected, so a 404 page is returned
as its body like any other response.

# Example Usage

	client := executor.New(executor.Options{
		UserAgent: "restget/0.1.0",
	})

	body, err := client.Fetch(ctx, "https://httpbin.org/get")
	if err != nil {
		return err
	}
	fmt.Println(body)

# Thread Safety

Fetch is safe to call concurrently from any number of goroutines.
*/
package executor
