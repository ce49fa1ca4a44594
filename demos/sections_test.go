package demos

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conceptlab/walkthrough"
)

func runSection(t *testing.T, d walkthrough.Demo) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, d.Run(context.Background(), &buf))
	return buf.String()
}

func TestValuesSection(t *testing.T) {
	out := runSection(t, Values())

	assert.Contains(t, out, "Copy left original untouched: true")
	assert.Contains(t, out, "Both views see the write: true")
	assert.Contains(t, out, `Original string unchanged: "hello"`)
	assert.Contains(t, out, `Concatenation built a new value: "hello world"`)
	assert.Contains(t, out, "Write through pointer: x=20")
}

func TestValuesSection_AppendDetaches(t *testing.T) {
	out := runSection(t, Values())

	// The grown slice diverged from the original after append.
	assert.Contains(t, out, "views diverge: original=[10 2 3] grown=[0 2 3 4]")
}

func TestFreshStateSection(t *testing.T) {
	out := runSection(t, FreshState())

	shared, fresh, found := strings.Cut(out, "Fresh state per call:")
	require.True(t, found)

	// The shared accumulator leaks state into the second call.
	assert.Contains(t, shared, "First call: [1]")
	assert.Contains(t, shared, "Second call: [1 2]")

	// The fresh variant does not.
	assert.Contains(t, fresh, "First call: [1]")
	assert.Contains(t, fresh, "Second call: [2]")
}

func TestSequencesSection(t *testing.T) {
	out := runSection(t, Sequences())

	assert.Contains(t, out, "Squares (loop): [1 4 9 16 25]")
	assert.Contains(t, out, "Squares (Map): [1 4 9 16 25]")
	assert.Contains(t, out, "Eager slice holds all 1000 values")
	assert.Contains(t, out, "Generator first few values: [0 2 4 6 8]")
}

func TestScopedResourceSection(t *testing.T) {
	out := runSection(t, ScopedResource())

	assert.Contains(t, out, "Connected to my_database")
	assert.Contains(t, out, "Database is connected: true")
	assert.Contains(t, out, "Disconnected from my_database")
	assert.Contains(t, out, "After the scope: active=false")

	assert.Contains(t, out, "Connected to flaky_database")
	assert.Contains(t, out, "Body failed as expected: true")
	assert.Contains(t, out, "Released despite the failure: active=false")

	assert.Contains(t, out, "Connected to manual_db")
	assert.Contains(t, out, "After the deferred release: active=false")
}

func TestScopedResourceSection_Ordering(t *testing.T) {
	out := runSection(t, ScopedResource())

	// Release output must come after the body's output.
	connected := strings.Index(out, "Connected to my_database")
	body := strings.Index(out, "Database is connected: true")
	disconnected := strings.Index(out, "Disconnected from my_database")
	require.GreaterOrEqual(t, connected, 0)
	assert.Greater(t, body, connected)
	assert.Greater(t, disconnected, body)
}

func TestFunctionalSection(t *testing.T) {
	out := runSection(t, Functional())

	assert.Contains(t, out, "square(5): 25")
	assert.Contains(t, out, "Even squares (Filter+Map): [4 16 36]")
	assert.Contains(t, out, "Even squares (loop): [4 16 36]")
	assert.Contains(t, out, "Closure captured counter: 3")
}

func TestInheritanceSection(t *testing.T) {
	out := runSection(t, Inheritance())

	assert.Contains(t, out, "Animal: Generic the Unknown")
	assert.Contains(t, out, "Dog: Buddy the Dog (Golden Retriever)")
	assert.Contains(t, out, "Dog speaks: Woof!")
	assert.Contains(t, out, "- ...")
	assert.Contains(t, out, "- Woof!")
}

func TestErrorStylesSection(t *testing.T) {
	out := runSection(t, ErrorStyles())

	assert.Contains(t, out, `Pre-check result for "a": 1`)
	assert.Contains(t, out, `Pre-check result for "z": missing`)
	assert.Contains(t, out, `Error-return result for "a": 1`)
	assert.Contains(t, out, `Error-return result for "z": missing`)
}

func TestMapFilterHelpers(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, Map([]int{1, 2, 3}, func(x int) int { return x * 2 }))
	assert.Equal(t, []string{"1", "2"}, Map([]int{1, 2}, func(x int) string {
		return string(rune('0' + x))
	}))
	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, func(x int) bool { return x%2 == 0 }))
	assert.Nil(t, Filter([]int{1, 3}, func(x int) bool { return x%2 == 0 }))
}
