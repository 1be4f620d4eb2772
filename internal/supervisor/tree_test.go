// MovieMatch - Movie Catalog Clustering and Similarity Search
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviematch

package supervisor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSupervisorTreeConstruction(t *testing.T) {
	t.Run("creates supervisor tree", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 5,
			FailureBackoff:   time.Second,
			ShutdownTimeout:  10 * time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}

		if tree.Root() == nil {
			t.Error("root supervisor should not be nil")
		}
	})

	t.Run("applies default values for zero config", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}

		if tree.config != DefaultTreeConfig() {
			t.Errorf("config = %+v, want defaults %+v", tree.config, DefaultTreeConfig())
		}
	})
}

func TestSupervisorTreeLifecycle(t *testing.T) {
	t.Run("tree starts services and stops gracefully", func(t *testing.T) {
		tree, err := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureBackoff:  100 * time.Millisecond,
			ShutdownTimeout: time.Second,
		})
		if err != nil {
			t.Fatalf("failed to create tree: %v", err)
		}

		apiSvc := NewMockService("mock-api")
		tree.AddAPIService(apiSvc)

		ctx, cancel := context.WithCancel(context.Background())
		errCh := tree.ServeBackground(ctx)

		time.Sleep(100 * time.Millisecond)
		cancel()

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, context.Canceled) {
				t.Errorf("unexpected error: %v", err)
			}
		case <-time.After(2 * time.Second):
			t.Fatal("tree did not shut down in time")
		}

		if apiSvc.StartCount() < 1 {
			t.Error("api service was not started")
		}

		report, err := tree.UnstoppedServiceReport()
		if err != nil {
			t.Fatalf("UnstoppedServiceReport() error = %v", err)
		}
		if len(report) != 0 {
			t.Errorf("unstopped services: %v", report)
		}
	})
}

func TestSupervisorTreeFailureHandling(t *testing.T) {
	t.Run("failing service is restarted without its sibling", func(t *testing.T) {
		tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{
			FailureThreshold: 10,
			FailureBackoff:   10 * time.Millisecond,
			ShutdownTimeout:  time.Second,
		})

		failingSvc := NewMockService("failing")
		failingSvc.SetFailCount(2)
		stableSvc := NewMockService("stable")

		tree.AddAPIService(failingSvc)
		tree.AddAPIService(stableSvc)

		ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
		defer cancel()

		errCh := tree.ServeBackground(ctx)
		time.Sleep(200 * time.Millisecond)

		if failingSvc.StartCount() < 3 {
			t.Errorf("expected at least 3 starts for failing service, got %d", failingSvc.StartCount())
		}
		if stableSvc.StartCount() != 1 {
			t.Errorf("stable service started %d times, want 1", stableSvc.StartCount())
		}

		cancel()
		<-errCh
	})
}
