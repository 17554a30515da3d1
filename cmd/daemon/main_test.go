package main

import (
	"testing"

	"go.uber.org/fx"
)

// TestAppGraphValidity verifies that the dependency graph is resolvable.
// This test fails if a provider for a required interface is missing.
func TestAppGraphValidity(t *testing.T) {
	if err := fx.ValidateApp(AppOptions); err != nil {
		t.Errorf("dependency graph is not valid: %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger()
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	if logger == nil {
		t.Fatal("logger should not be nil")
	}
	logger.Info("test logger initialization")
}
