package service

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain fails the package when a test leaves goroutines behind, such as
// an unclosed database or a loader that outlives LoadResources.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
