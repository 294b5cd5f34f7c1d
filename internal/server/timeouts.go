package server

import "time"

const (
	readTimeout = 10 * time.Second
	// Teams and team-history requests can fan out to upstream APIs, so the
	// write timeout allows for a slow provider on a cold snapshot.
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout is a var so tests can shrink the graceful-stop window.
var shutdownTimeout = 10 * time.Second
