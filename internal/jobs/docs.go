// Package jobs contains the scheduled background jobs of the application.
//
// The only job today is the order progression sweep, which ticks every
// second and applies due lifecycle transitions. Jobs are owned by the
// JobManager, which the composition root starts after the HTTP server is
// wired and stops on shutdown.
package jobs
