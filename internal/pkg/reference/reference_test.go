package reference

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referencePattern = regexp.MustCompile(`^(QT|CT)-\d+-[0-9a-z]{9}$`)

func TestNewMatchesPattern(t *testing.T) {
	assert.Regexp(t, referencePattern, New(QuotePrefix))
	assert.Regexp(t, referencePattern, New(ContactPrefix))
}

func TestNewEmbedsCurrentMillis(t *testing.T) {
	before := time.Now().UnixMilli()
	ref := New(QuotePrefix)
	after := time.Now().UnixMilli()

	parts := strings.Split(ref, "-")
	require.Len(t, parts, 3)

	millis, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, millis, before)
	assert.LessOrEqual(t, millis, after)
}

func TestNewIsNeverEmptyAndRarelyCollides(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		ref := New(QuotePrefix)
		require.NotEmpty(t, ref)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}
