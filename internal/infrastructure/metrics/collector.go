package metrics

import (
	"sync"
	"sync/atomic"
)

// Collector collects and aggregates graph operation metrics.
type Collector struct {
	nodesCreated uint64
	nodesDeleted uint64
	edgesCreated uint64
	edgesDeleted uint64

	// Rejections by kind: abstract_type, relationship_type, cardinality,
	// property.
	rejections sync.Map // map[string]*uint64 - kind -> count
}

// GraphMetrics holds a snapshot of the collected counters.
type GraphMetrics struct {
	NodesCreated uint64
	NodesDeleted uint64
	EdgesCreated uint64
	EdgesDeleted uint64
	Rejections   map[string]uint64
}

// NewCollector creates a new metrics collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordNodeCreated records a successful node creation.
func (c *Collector) RecordNodeCreated() {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.nodesCreated, 1)
}

// RecordNodeDeleted records a node deletion.
func (c *Collector) RecordNodeDeleted() {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.nodesDeleted, 1)
}

// RecordEdgeCreated records a successful edge creation.
func (c *Collector) RecordEdgeCreated() {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.edgesCreated, 1)
}

// RecordEdgeDeleted records an edge deletion.
func (c *Collector) RecordEdgeDeleted() {
	if c == nil {
		return
	}
	atomic.AddUint64(&c.edgesDeleted, 1)
}

// RecordRejection records a validation rejection of the given kind.
func (c *Collector) RecordRejection(kind string) {
	if c == nil {
		return
	}
	counter := c.getOrCreateCounter(&c.rejections, kind)
	atomic.AddUint64(counter, 1)
}

// GetMetrics returns a snapshot of all collected metrics.
func (c *Collector) GetMetrics() *GraphMetrics {
	m := &GraphMetrics{
		NodesCreated: atomic.LoadUint64(&c.nodesCreated),
		NodesDeleted: atomic.LoadUint64(&c.nodesDeleted),
		EdgesCreated: atomic.LoadUint64(&c.edgesCreated),
		EdgesDeleted: atomic.LoadUint64(&c.edgesDeleted),
		Rejections:   make(map[string]uint64),
	}
	c.rejections.Range(func(key, value any) bool {
		m.Rejections[key.(string)] = atomic.LoadUint64(value.(*uint64))
		return true
	})
	return m
}

func (c *Collector) getOrCreateCounter(m *sync.Map, key string) *uint64 {
	if val, ok := m.Load(key); ok {
		return val.(*uint64)
	}
	val, _ := m.LoadOrStore(key, new(uint64))
	return val.(*uint64)
}
