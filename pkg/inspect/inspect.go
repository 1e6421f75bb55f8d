// Package inspect reads existing DXF files and reports what they contain.
package inspect

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rpaloschi/dxf-go/document"
	"github.com/rpaloschi/dxf-go/entities"

	"github.com/hellenic-development/dxfkit/pkg/shape"
)

const maxParallelReads = 5

// Report summarizes one DXF file.
type Report struct {
	Path      string
	Entities  map[string]int // entity type name (upper case) -> count
	Polylines int
	Vertices  int
	HasBounds bool
	Min, Max  shape.Point // bounds of polyline vertices
}

// Total returns the number of entities.
func (r *Report) Total() int {
	n := 0
	for _, c := range r.Entities {
		n += c
	}
	return n
}

// Types returns the entity type names in alphabetical order.
func (r *Report) Types() []string {
	names := make([]string, 0, len(r.Entities))
	for name := range r.Entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Result holds the outcome of inspecting several files.
type Result struct {
	Reports []*Report // in the order the paths were given, failed files omitted
	Errors  []error   // non-fatal per-file failures
}

// File parses a DXF file on disk.
func File(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	r, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	r.Path = path
	return r, nil
}

// Read parses a DXF stream.
func Read(stream io.Reader) (*Report, error) {
	doc, err := document.DxfDocumentFromStream(stream)
	if err != nil {
		return nil, err
	}

	r := &Report{Entities: make(map[string]int)}
	lo := shape.Pt(math.Inf(1), math.Inf(1))
	hi := shape.Pt(math.Inf(-1), math.Inf(-1))

	for _, entity := range doc.Entities.Entities {
		r.Entities[typeName(entity)]++

		polyline, ok := entity.(*entities.Polyline)
		if !ok {
			continue
		}
		r.Polylines++
		for _, v := range polyline.Vertices {
			r.Vertices++
			lo.X = math.Min(lo.X, v.Location.X)
			lo.Y = math.Min(lo.Y, v.Location.Y)
			hi.X = math.Max(hi.X, v.Location.X)
			hi.Y = math.Max(hi.Y, v.Location.Y)
		}
	}

	if r.Vertices > 0 {
		r.HasBounds = true
		r.Min, r.Max = lo, hi
	}
	return r, nil
}

// typeName turns *entities.Polyline into POLYLINE.
func typeName(v any) string {
	name := fmt.Sprintf("%T", v)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToUpper(strings.TrimPrefix(name, "*"))
}

// Files inspects several files concurrently. A file that cannot be read is reported in
// Result.Errors and does not stop the others.
func Files(paths []string) *Result {
	reports := make([]*Report, len(paths))
	result := &Result{}

	var wg sync.WaitGroup
	sem := make(chan struct{}, maxParallelReads)
	var mu sync.Mutex

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			r, err := File(path)
			if err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, err)
				mu.Unlock()
				return
			}
			reports[i] = r
		}(i, path)
	}

	wg.Wait()

	for _, r := range reports {
		if r != nil {
			result.Reports = append(result.Reports, r)
		}
	}
	return result
}
