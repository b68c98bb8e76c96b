package generator_test

import (
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/healthsecure/medichain-service/pkg/generator"
	"github.com/stretchr/testify/require"
)

func TestHealthIDFormat(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^HID-\d{4}-\d{4}$`)
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := generator.HealthID()
		require.Regexp(t, pattern, id)
		seen[id] = true
	}
	require.Greater(t, len(seen), 1)
}

func TestDoctorIDFormat(t *testing.T) {
	t.Parallel()

	pattern := regexp.MustCompile(`^DOC-\d{4}-\d{4}$`)
	for i := 0; i < 100; i++ {
		require.Regexp(t, pattern, generator.DoctorID())
	}
}

func TestUUIDIsValid(t *testing.T) {
	t.Parallel()

	id := generator.UUID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(7), parsed.Version())
}
