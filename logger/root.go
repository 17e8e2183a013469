package logger

import (
	"net/url"
	"os"
	"path/filepath"
	"regexp"
)

// logDirName is the directory created under the resolved root.
const logDirName = "clust4jlogs"

// windowsDrive matches drive-letter paths, which url.Parse would
// misread as a scheme.
var windowsDrive = regexp.MustCompile(`^[a-zA-Z]:.*`)

// DefaultRoot returns the root location used when none is configured
// or the configured one cannot be interpreted.
func DefaultRoot() string {
	return os.TempDir()
}

// ResolveRoot interprets a configured root location. Drive-letter
// paths and scheme-less strings are taken as filesystem paths, file
// URIs contribute their path component, and anything else falls back
// to the default root.
func ResolveRoot(loc string) string {
	if loc == "" {
		return DefaultRoot()
	}
	if windowsDrive.MatchString(loc) {
		return loc
	}
	u, err := url.Parse(loc)
	if err != nil {
		return DefaultRoot()
	}
	switch u.Scheme {
	case "":
		return loc
	case "file":
		if u.Path != "" {
			return u.Path
		}
		return DefaultRoot()
	default:
		return DefaultRoot()
	}
}

// LogDir returns the directory the file sinks write under for a given
// root location. The location is interpreted by ResolveRoot before the
// directory name is appended.
func LogDir(root string) string {
	return filepath.Join(ResolveRoot(root), logDirName)
}

func (l *Logger) logDirLocked() string {
	return LogDir(l.root)
}
