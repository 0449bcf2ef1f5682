// Command idpcall sends one request to an identity provider endpoint and
// prints the response body.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
