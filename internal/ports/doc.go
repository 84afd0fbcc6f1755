// Package ports holds the interfaces the board application is wired through.
// The CLI and the board API call the service side (BoardService,
// SessionSource); the task API client, identity provider and notifiers
// implement the outbound side.
package ports
