package handler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"

	"github.com/clust4j/algolog/core"
)

// FileConfig describes one rolling destination file.
type FileConfig struct {
	// Name is the file name within the sink directory
	Name string
	// MaxSize is the size in bytes at which the file rotates
	MaxSize int64
	// MaxBackups is the number of rotated files retained
	MaxBackups int
}

// SinkConfig describes the full leveled destination set.
type SinkConfig struct {
	// Dir is the directory all destination files live in
	Dir string
	// Files holds one destination per severity, indexed by Severity
	Files [core.NumSeverities]FileConfig
}

const (
	kilobyte = int64(1) << 10
	megabyte = int64(1) << 20
)

// defaultMaxSizes holds the rotation threshold per severity. The
// verbose channels get room to breathe; WARN and above stay small so
// recent high-severity history is quick to scan.
var defaultMaxSizes = [core.NumSeverities]int64{
	core.TraceLevel: 1 * megabyte,
	core.DebugLevel: 3 * megabyte,
	core.InfoLevel:  2 * megabyte,
	core.WarnLevel:  256 * kilobyte,
	core.ErrorLevel: 256 * kilobyte,
	core.FatalLevel: 256 * kilobyte,
}

// defaultMaxBackups is the rotated-file retention per destination.
const defaultMaxBackups = 3

// FileStem is the leading component of every generated log file name.
const FileStem = "clust4j"

// FileName returns the generated destination file name for a severity,
// e.g. "clust4j-3-info.log" for InfoLevel.
func FileName(sev core.Severity) string {
	return fmt.Sprintf("%s-%d-%s.log", FileStem, int(sev)+1, strings.ToLower(sev.String()))
}

// DefaultSinkConfig generates the default destination set rooted at dir.
func DefaultSinkConfig(dir string) SinkConfig {
	cfg := SinkConfig{Dir: dir}
	for i := range cfg.Files {
		sev := core.Severity(i)
		cfg.Files[i] = FileConfig{
			Name:       FileName(sev),
			MaxSize:    defaultMaxSizes[i],
			MaxBackups: defaultMaxBackups,
		}
	}
	return cfg
}

// LoadSinkProperties reads a .properties resource describing the sink
// and layers it over the generated defaults rooted at fallbackDir.
//
// Recognized keys:
//
//	log.dir                  destination directory
//	log.<level>.file         file name for one severity
//	log.<level>.maxsize      rotation size, accepts KB/MB suffixes
//	log.<level>.maxbackups   rotated-file retention count
//
// where <level> is the lowercase severity name (trace, debug, info,
// warn, error, fatal). Missing keys keep their default values.
func LoadSinkProperties(path, fallbackDir string) (SinkConfig, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return SinkConfig{}, errors.Wrapf(err, "loading sink properties %s", path)
	}

	cfg := DefaultSinkConfig(p.GetString("log.dir", fallbackDir))
	for i := range cfg.Files {
		prefix := "log." + strings.ToLower(core.Severity(i).String())

		cfg.Files[i].Name = p.GetString(prefix+".file", cfg.Files[i].Name)
		cfg.Files[i].MaxBackups = p.GetInt(prefix+".maxbackups", cfg.Files[i].MaxBackups)

		if raw, ok := p.Get(prefix + ".maxsize"); ok {
			size, err := parseSize(raw)
			if err != nil {
				return SinkConfig{}, errors.Wrapf(err, "key %s.maxsize", prefix)
			}
			cfg.Files[i].MaxSize = size
		}
	}
	return cfg, nil
}

// parseSize parses a size value with an optional KB or MB suffix; a
// bare number is taken as bytes.
func parseSize(s string) (int64, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	mult := int64(1)
	switch {
	case strings.HasSuffix(v, "KB"):
		mult = kilobyte
		v = strings.TrimSuffix(v, "KB")
	case strings.HasSuffix(v, "MB"):
		mult = megabyte
		v = strings.TrimSuffix(v, "MB")
	}
	n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil || n <= 0 {
		return 0, errors.Errorf("invalid size: %q", s)
	}
	return n * mult, nil
}
