package topology

import "errors"

// Configuration errors are fatal at construction time. Query-time problems
// (unknown router, missing link) never surface as errors; they degrade to
// the +Inf weight / no-path sentinels instead.
var (
	// ErrBadRouterCount indicates a negative router count or one exceeding
	// the built-in coordinate table.
	ErrBadRouterCount = errors.New("topology: router count outside built-in coordinate table")

	// ErrMissingCoordinate indicates a config router without a coordinate entry.
	ErrMissingCoordinate = errors.New("topology: missing coordinate for router")

	// ErrUnknownLinkEndpoint indicates a config link referencing a router id
	// that is not part of the configuration.
	ErrUnknownLinkEndpoint = errors.New("topology: link references unknown router")

	// ErrSelfLoop indicates a config link from a router to itself.
	ErrSelfLoop = errors.New("topology: self-loop link not allowed")
)
