// Package cmdutil provides the scaffolding for cobra-based command line
// tools: a command builder that composes options, signal-aware root
// contexts, log setup on log/slog and a defer-friendly Exit mechanism.
//
// A typical main looks like this:
//
//	func main() {
//	    defer cmdutil.HandleExit()
//	    if err := NewRootCommand().Execute(); err != nil {
//	        slog.Error(err.Error())
//	        cmdutil.Exit(1)
//	    }
//	}
package cmdutil
