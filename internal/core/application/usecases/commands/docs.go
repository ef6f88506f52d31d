// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// validated, constructor-guarded value, handled by a dedicated handler that
// coordinates the order repository, the menu catalog, the update
// broadcaster, and the transition schedule.
package commands
