package logger

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/clust4j/algolog/core"
)

func TestZapCore_RoutesEntries(t *testing.T) {
	l, sink, _ := newTestLogger()
	z := zap.New(NewZapCore(l, core.DBSCAN))

	z.Info("region query", zap.Int("minPts", 5), zap.Float64("eps", 0.3))

	recs := sink.records()
	if len(recs) != 1 {
		t.Fatalf("Expected 1 sink record, got %d", len(recs))
	}
	// Fields render sorted by key
	if !strings.Contains(recs[0], "region query eps=0.3 minPts=5") {
		t.Errorf("Expected message with sorted key=value fields, got: %s", recs[0])
	}
	if !strings.Contains(recs[0], "DBSCAN") {
		t.Errorf("Expected category label, got: %s", recs[0])
	}
	if sink.severities()[0] != core.InfoLevel {
		t.Errorf("Expected InfoLevel, got: %v", sink.severities()[0])
	}
}

func TestZapCore_WithCarriesFields(t *testing.T) {
	l, sink, _ := newTestLogger()
	z := zap.New(NewZapCore(l, core.KMeans)).With(zap.Int("k", 8))

	z.Warn("empty cluster", zap.Int("index", 3))

	recs := sink.records()
	if len(recs) != 1 {
		t.Fatalf("Expected 1 sink record, got %d", len(recs))
	}
	if !strings.Contains(recs[0], "index=3") || !strings.Contains(recs[0], "k=8") {
		t.Errorf("Expected bound and call-site fields, got: %s", recs[0])
	}
	if sink.severities()[0] != core.WarnLevel {
		t.Errorf("Expected WarnLevel, got: %v", sink.severities()[0])
	}
}

func TestZapCore_DebugGate(t *testing.T) {
	l, sink, _ := newTestLogger()
	l.UnsetFlag(core.KNN)
	z := zap.New(NewZapCore(l, core.KNN))

	z.Debug("ball tree descent")
	if len(sink.records()) != 0 {
		t.Error("Expected debug suppressed while flag is off")
	}

	l.SetFlag(core.KNN)
	z.Debug("ball tree descent")
	if len(sink.records()) != 1 {
		t.Errorf("Expected debug once flag is on, got %d records", len(sink.records()))
	}
}

func TestZapCore_ErrorSeverities(t *testing.T) {
	l, sink, _ := newTestLogger()
	z := zap.New(NewZapCore(l, core.Clust4j))

	z.Error("estimator failed")
	z.DPanic("invariant broken")

	sevs := sink.severities()
	if len(sevs) != 2 || sevs[0] != core.ErrorLevel || sevs[1] != core.ErrorLevel {
		t.Errorf("Expected both at ErrorLevel, got: %v", sevs)
	}
}
