// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	host := strings.TrimSpace(os.Getenv("TARGET_HOST"))
	port := strings.TrimSpace(os.Getenv("TARGET_PORT"))
	bucket := strings.TrimSpace(os.Getenv("RESULT_BUCKET"))
	apiAddr := strings.TrimSpace(os.Getenv("API_ADDR"))
	db := strings.TrimSpace(os.Getenv("DATABASE_URL"))

	if host == "" {
		fail("TARGET_HOST is empty (probes will default to localhost).")
	}
	ok("TARGET_HOST=" + host)

	if port == "" {
		warn("TARGET_PORT is empty; default 80 will be used.")
	} else if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		fail("TARGET_PORT is not a valid port: " + port)
	} else {
		ok("TARGET_PORT=" + port)
	}

	if bucket == "" {
		warn("RESULT_BUCKET empty — result keys will be logged, not persisted.")
	} else {
		ok("RESULT_BUCKET=" + bucket)
		if os.Getenv("AWS_REGION") == "" && os.Getenv("AWS_DEFAULT_REGION") == "" {
			warn("AWS_REGION not set — the S3 client will rely on shared config.")
		}
	}

	if apiAddr == "" {
		warn("API_ADDR is empty; default in your app may be used.")
	} else {
		ok("API_ADDR=" + apiAddr)
	}

	if db == "" {
		warn("DATABASE_URL empty — API will use in-memory stores unless overridden at runtime.")
	} else {
		ok("DATABASE_URL present")
	}

	ok("preflight passed")
}
