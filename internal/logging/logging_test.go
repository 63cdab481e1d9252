package logging

import (
	"context"
	"testing"
)

type recordingLogger struct {
	noopLogger
	fields []map[string]any
}

func (r *recordingLogger) WithFields(fields map[string]any) Logger {
	r.fields = append(r.fields, fields)
	return r
}

type staticProvider struct {
	logger Logger
}

func (p staticProvider) GetLogger(string) Logger { return p.logger }

func TestModuleLoggerWithoutProvider(t *testing.T) {
	logger := ModuleLogger(nil, "blog.posts")
	if logger == nil {
		t.Fatal("expected a usable logger even without a provider")
	}
	// No-op loggers must absorb every call.
	logger.Debug("discarded")
	logger.WithContext(context.Background()).Info("discarded")
}

func TestModuleLoggerAttachesModuleField(t *testing.T) {
	rec := &recordingLogger{}
	logger := ModuleLogger(staticProvider{logger: rec}, "blog.posts")
	if logger == nil {
		t.Fatal("expected logger")
	}

	if len(rec.fields) != 1 {
		t.Fatalf("expected one WithFields call, got %d", len(rec.fields))
	}
	if rec.fields[0]["module"] != "blog.posts" {
		t.Fatalf("expected module field, got %v", rec.fields[0])
	}
}

func TestModuleLoggerDefaultsModuleName(t *testing.T) {
	rec := &recordingLogger{}
	ModuleLogger(staticProvider{logger: rec}, "")

	if len(rec.fields) != 1 || rec.fields[0]["module"] != "blog" {
		t.Fatalf("expected default module name, got %v", rec.fields)
	}
}

func TestWithFieldsClonesInput(t *testing.T) {
	rec := &recordingLogger{}
	fields := map[string]any{"slug": "hello"}
	WithFields(rec, fields)

	fields["slug"] = "changed"
	if rec.fields[0]["slug"] != "hello" {
		t.Fatalf("expected fields to be copied, got %v", rec.fields[0]["slug"])
	}
}

func TestWithFieldsSkipsPlainLoggers(t *testing.T) {
	logger := NoOp()
	if got := WithFields(logger, map[string]any{"k": "v"}); got == nil {
		t.Fatal("expected the original logger back")
	}
}
