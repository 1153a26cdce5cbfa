package compress

import "github.com/golang/glog"

// Logger is the logging collaborator the dispatcher consumes. The
// dispatcher logs only through this interface, so a Registry can be given
// any backend; the package itself still links glog for the default
// GlogLogger below.
type Logger interface {
	Infof(format string, args ...any)
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
}

// GlogLogger is the default Logger, tagging every line with the COMPRESS
// subsystem the way glog's own module-gated verbose logging tags
// per-subsystem chatter (e.g. glog.FastV(4, glog.Smodule...)).
type GlogLogger struct{}

func (GlogLogger) Infof(format string, args ...any) {
	glog.Infof("[COMPRESS] "+format, args...)
}

func (GlogLogger) Warningf(format string, args ...any) {
	glog.Warningf("[COMPRESS] "+format, args...)
}

func (GlogLogger) Errorf(format string, args ...any) {
	glog.Errorf("[COMPRESS] "+format, args...)
}

// nopLogger discards everything; used where tests don't care about log
// output and don't want glog's flag-parsing side effects.
type nopLogger struct{}

func (nopLogger) Infof(string, ...any)    {}
func (nopLogger) Warningf(string, ...any) {}
func (nopLogger) Errorf(string, ...any)   {}
