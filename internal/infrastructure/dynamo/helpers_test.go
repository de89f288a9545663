package dynamo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkStrings_UnderLimit(t *testing.T) {
	chunks := chunkStrings([]string{"a", "b"}, 25)
	assert.Equal(t, [][]string{{"a", "b"}}, chunks)
}

func TestChunkStrings_ExactMultiple(t *testing.T) {
	in := make([]string, 50)
	for i := range in {
		in[i] = "x"
	}
	chunks := chunkStrings(in, 25)
	assert.Len(t, chunks, 2)
	assert.Len(t, chunks[0], 25)
	assert.Len(t, chunks[1], 25)
}

func TestChunkStrings_Remainder(t *testing.T) {
	in := make([]string, 26)
	for i := range in {
		in[i] = "x"
	}
	chunks := chunkStrings(in, 25)
	assert.Len(t, chunks, 2)
	assert.Len(t, chunks[1], 1)
}

func TestChunkStrings_Empty(t *testing.T) {
	assert.Nil(t, chunkStrings(nil, 25))
}
