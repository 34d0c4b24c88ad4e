package pathfinder

import "errors"

// ErrNoSourceSink indicates K has no resolved source/sink vertex; this
// should be impossible once kmer.Build has succeeded, so the check is
// defensive rather than load-bearing.
var ErrNoSourceSink = errors.New("pathfinder: K has no source/sink vertex")

// ErrUnreachableSink indicates no source-to-sink path exists in K.
var ErrUnreachableSink = errors.New("pathfinder: sink is unreachable from source")

// ErrInvalidMaxPaths indicates maxPaths < 1.
var ErrInvalidMaxPaths = errors.New("pathfinder: maxPaths must be >= 1")
