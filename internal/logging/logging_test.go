package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLayer_SingleComponentKey(t *testing.T) {
	var buf bytes.Buffer
	withLayer(newLogger(&buf, "pix-server"), "http").Info("http_request")

	line := buf.String()
	assert.Equal(t, 1, strings.Count(line, `"component"`))

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "pix-server", entry["component"])
	assert.Equal(t, "http", entry["layer"])
}

func TestBase_ConcurrentWithInit(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]any, 16)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				got[i] = Init("pix-server", "")
				return
			}
			got[i] = Base()
		}(i)
	}
	wg.Wait()

	for _, l := range got {
		assert.Same(t, Base(), l)
	}
}

func TestFromCtx_FallsBackToBase(t *testing.T) {
	assert.Same(t, Base(), FromCtx(context.Background()))

	l := New("usecase")
	assert.Same(t, l, FromCtx(WithCtx(context.Background(), l)))
}
