package metrics

import (
	"sync"
	"testing"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector()

	c.RecordNodeCreated()
	c.RecordNodeCreated()
	c.RecordNodeDeleted()
	c.RecordEdgeCreated()
	c.RecordEdgeDeleted()

	m := c.GetMetrics()
	if m.NodesCreated != 2 {
		t.Errorf("NodesCreated = %d, want 2", m.NodesCreated)
	}
	if m.NodesDeleted != 1 {
		t.Errorf("NodesDeleted = %d, want 1", m.NodesDeleted)
	}
	if m.EdgesCreated != 1 {
		t.Errorf("EdgesCreated = %d, want 1", m.EdgesCreated)
	}
	if m.EdgesDeleted != 1 {
		t.Errorf("EdgesDeleted = %d, want 1", m.EdgesDeleted)
	}
}

func TestCollector_Rejections(t *testing.T) {
	c := NewCollector()

	c.RecordRejection("abstract_type")
	c.RecordRejection("abstract_type")
	c.RecordRejection("cardinality")

	m := c.GetMetrics()
	if m.Rejections["abstract_type"] != 2 {
		t.Errorf("abstract_type = %d, want 2", m.Rejections["abstract_type"])
	}
	if m.Rejections["cardinality"] != 1 {
		t.Errorf("cardinality = %d, want 1", m.Rejections["cardinality"])
	}
	if _, ok := m.Rejections["property"]; ok {
		t.Error("property should be absent when never recorded")
	}
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector

	// Recording on a nil collector must not panic.
	c.RecordNodeCreated()
	c.RecordNodeDeleted()
	c.RecordEdgeCreated()
	c.RecordEdgeDeleted()
	c.RecordRejection("abstract_type")
}

func TestCollector_Concurrent(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.RecordNodeCreated()
				c.RecordRejection("property")
			}
		}()
	}
	wg.Wait()

	m := c.GetMetrics()
	if m.NodesCreated != 1000 {
		t.Errorf("NodesCreated = %d, want 1000", m.NodesCreated)
	}
	if m.Rejections["property"] != 1000 {
		t.Errorf("property rejections = %d, want 1000", m.Rejections["property"])
	}
}
