//go:build integration

// Package testutil provides testcontainers setup shared by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongoDB creates and starts a MongoDB testcontainer. Prefer the
// shared container via RunWithSharedMongoDB; one container per test is
// slow.
func StartMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, fmt.Errorf("start MongoDB container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("get connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Terminate stops the container.
func (m *MongoDBContainer) Terminate(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	return m.Container.Terminate(ctx)
}

var (
	shared     *MongoDBContainer
	sharedErr  error
	sharedOnce sync.Once
)

// RunWithSharedMongoDB is a TestMain helper: it starts one MongoDB
// container for the whole package, runs the tests, and tears it down.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithSharedMongoDB(context.Background(), m))
//	}
func RunWithSharedMongoDB(ctx context.Context, m *testing.M) int {
	sharedOnce.Do(func() {
		shared, sharedErr = StartMongoDB(ctx)
	})
	if sharedErr != nil {
		panic(sharedErr)
	}

	code := m.Run()

	if err := shared.Terminate(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "warning: failed to terminate shared MongoDB container: %v\n", err)
	}
	return code
}

// SharedMongoDBURI returns the URI of the shared container. Panics when
// called outside RunWithSharedMongoDB.
func SharedMongoDBURI() string {
	if shared == nil {
		panic("shared MongoDB container not initialized; use RunWithSharedMongoDB in TestMain")
	}
	return shared.URI
}

// UniqueDBName derives a valid, unique MongoDB database name from a
// test name so tests sharing a container stay isolated.
func UniqueDBName(testName string) string {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(testName)
	if len(name) > 50 {
		name = name[:50]
	}
	return fmt.Sprintf("%s_%d", name, time.Now().UnixNano()%1000000)
}
