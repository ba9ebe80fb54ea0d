// Package middleware holds the chi middleware every application route runs
// behind: request IDs, structured request logging and per-client throttling.
package middleware
