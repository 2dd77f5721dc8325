package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeqIDs_GeneratesInSequence(t *testing.T) {
	g := &SeqIDs{}

	assert.Equal(t, "exec-1", g.Generate())
	assert.Equal(t, "exec-2", g.Generate())
	assert.Equal(t, "exec-3", g.Generate())
	assert.Equal(t, 3, g.Count())
}

func TestSeqIDs_ConcurrentGenerate(t *testing.T) {
	g := &SeqIDs{}

	var wg sync.WaitGroup
	seen := make(chan string, 400)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				seen <- g.Generate()
			}
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[string]struct{}, 400)
	for id := range seen {
		unique[id] = struct{}{}
	}

	assert.Len(t, unique, 400, "every generated ID should be distinct")
	assert.Equal(t, 400, g.Count())
}
