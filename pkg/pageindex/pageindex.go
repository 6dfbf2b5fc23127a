// Package pageindex resolves DOM ids for elements when several pages are
// combined into one document. Each indexed page gets a numeric prefix so
// element ids stay unique after the pages are concatenated.
package pageindex

import (
	"io"
	"strconv"
	"sync"

	"github.com/goliatone/go-contact/pkg/model"
)

// PageIndexer reports the position of a page within a combined view.
type PageIndexer interface {
	PageIndex(page model.PageRef) (int, bool)
}

// IDInPage returns the DOM id for id within page. When the indexer knows the
// page the id is prefixed with "page<N>-"; otherwise it is returned as-is.
// An empty id yields an empty string.
func IDInPage(indexer PageIndexer, page model.PageRef, id string) string {
	if id == "" {
		return ""
	}
	if indexer != nil {
		if index, ok := indexer.PageIndex(page); ok {
			return "page" + strconv.Itoa(index) + "-" + id
		}
	}
	return id
}

// AppendIDInPage writes IDInPage to w.
func AppendIDInPage(indexer PageIndexer, page model.PageRef, id string, w io.Writer) error {
	resolved := IDInPage(indexer, page, id)
	if resolved == "" {
		return nil
	}
	_, err := io.WriteString(w, resolved)
	return err
}

// Index is an ordered, concurrency-safe PageIndexer. Pages are numbered from
// zero in insertion order.
type Index struct {
	mu    sync.RWMutex
	order []model.PageRef
	index map[model.PageRef]int
}

// New builds an index over pages. Duplicates keep their first position.
func New(pages ...model.PageRef) *Index {
	idx := &Index{index: make(map[model.PageRef]int, len(pages))}
	for _, page := range pages {
		idx.Add(page)
	}
	return idx
}

// Add appends page when it is not already indexed and returns its position.
func (i *Index) Add(page model.PageRef) int {
	i.mu.Lock()
	defer i.mu.Unlock()

	if pos, ok := i.index[page]; ok {
		return pos
	}
	if i.index == nil {
		i.index = make(map[model.PageRef]int)
	}
	pos := len(i.order)
	i.order = append(i.order, page)
	i.index[page] = pos
	return pos
}

// PageIndex implements PageIndexer.
func (i *Index) PageIndex(page model.PageRef) (int, bool) {
	if i == nil {
		return 0, false
	}
	i.mu.RLock()
	defer i.mu.RUnlock()

	pos, ok := i.index[page]
	return pos, ok
}

// Pages returns the indexed pages in order.
func (i *Index) Pages() []model.PageRef {
	i.mu.RLock()
	defer i.mu.RUnlock()

	out := make([]model.PageRef, len(i.order))
	copy(out, i.order)
	return out
}

// Len returns the number of indexed pages.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.order)
}
