// Package logger provides structured logging for Weir.
//
// It wraps hashicorp/go-hclog and owns the mapping from the simulator's
// log-level names to hclog's level enumeration. Configuration validates
// level names against this package's table at parse time, so consumers of a
// resolved level never see an unknown name.
//
// Level names, most to least severe:
//
//   - error    (fatal and non-fatal errors)
//   - critical (folds into hclog Error)
//   - warning
//   - message  (default; folds into hclog Info)
//   - info
//   - debug
package logger
