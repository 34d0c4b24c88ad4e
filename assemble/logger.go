package assemble

import "github.com/shenwei356/go-logging"

// log is the package-level diagnostic logger. assemble is the only
// package in the pipeline that logs: the core numerical stages (kmer,
// attribute, smooth, pathfinder, reconstruct) stay pure and silent,
// confining go-logging to the entry point a caller's own logging
// config already wires up.
var log = logging.MustGetLogger("isoweave/assemble")
