//go:build integration

package app

import (
	"context"
	"os"
	"testing"

	"github.com/guttosm/packing-service/internal/testutil"
)

// TestMain runs the mongodb backend tests against one shared container.
func TestMain(m *testing.M) {
	os.Exit(testutil.SetupTestMainWithMongoDB(context.Background(), m))
}

func getSharedContainerURI() string {
	return testutil.GetSharedContainerURI()
}

// sanitizeDBNameForApp gives each test its own database.
func sanitizeDBNameForApp(testName string) string {
	return testutil.SanitizeDBName("app_" + testName)
}
