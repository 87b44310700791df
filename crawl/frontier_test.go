package crawl_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wczarnecki/docgather"
	"github.com/wczarnecki/docgather/crawl"
)

func TestFrontier_FIFOOrder(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)

	f.Push(docgather.Link{URL: "https://example.com/a"})
	f.Push(docgather.Link{URL: "https://example.com/b"})
	f.Push(docgather.Link{URL: "https://example.com/c"})

	var got []string
	for {
		link, ok := f.Pop()
		if !ok {
			break
		}
		got = append(got, link.URL)
	}

	assert.Equal(t, []string{
		"https://example.com/a",
		"https://example.com/b",
		"https://example.com/c",
	}, got)
}

func TestFrontier_Push(t *testing.T) {
	t.Parallel()

	t.Run("rejects duplicate URLs", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		assert.True(t, f.Push(docgather.Link{URL: "https://example.com/a"}))
		assert.False(t, f.Push(docgather.Link{URL: "https://example.com/a"}))
		assert.Equal(t, 1, f.Len())
	})

	t.Run("treats URLs differing only by fragment as duplicates", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)

		assert.True(t, f.Push(docgather.Link{URL: "https://example.com/a#intro"}))
		assert.False(t, f.Push(docgather.Link{URL: "https://example.com/a#usage"}))

		link, ok := f.Pop()
		assert.True(t, ok)
		assert.Equal(t, "https://example.com/a", link.URL)
	})

	t.Run("carries depth through the queue", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier(100, 0.01)
		f.Push(docgather.Link{URL: "https://example.com/a", Depth: 2})

		link, ok := f.Pop()
		assert.True(t, ok)
		assert.Equal(t, 2, link.Depth)
	})
}

func TestFrontier_Pop(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)

	_, ok := f.Pop()
	assert.False(t, ok)
}

func TestFrontier_Seen(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)

	assert.False(t, f.Seen("https://example.com/a"))

	f.Push(docgather.Link{URL: "https://example.com/a"})

	assert.True(t, f.Seen("https://example.com/a"))
	assert.True(t, f.Seen("https://example.com/a#section"))

	// Popping does not forget the URL
	f.Pop()
	assert.True(t, f.Seen("https://example.com/a"))
}

func TestFrontier_Len(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)
	for i := 0; i < 5; i++ {
		f.Push(docgather.Link{URL: fmt.Sprintf("https://example.com/%d", i)})
	}

	assert.Equal(t, 5, f.Len())
	f.Pop()
	assert.Equal(t, 4, f.Len())
}
