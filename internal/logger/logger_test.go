package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestBuild(t *testing.T) {
	if l := build("test"); l.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected test logger to discard everything")
	}

	cli := build("cli")
	if cli.Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected cli logger to skip info")
	}
	if !cli.Core().Enabled(zapcore.WarnLevel) {
		t.Error("expected cli logger to emit warnings")
	}

	if !build("development").Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected development logger to emit debug")
	}
	if build("production").Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected production logger to skip debug")
	}
}

func TestGet(t *testing.T) {
	Init("test")
	if Get() == nil {
		t.Fatal("expected a logger")
	}
	Sync()
}
