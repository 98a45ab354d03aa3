package datamodel

import "sync"

// BasicCluster is a simple in-memory Cluster implementation.
// It holds the declared metadata of one server cluster instance.
type BasicCluster struct {
	mu         sync.RWMutex
	id         ClusterID
	endpointID EndpointID
	events     []EventEntry // Preserve declaration order
}

// NewCluster creates a new cluster with the given IDs.
func NewCluster(id ClusterID, endpointID EndpointID) *BasicCluster {
	return &BasicCluster{
		id:         id,
		endpointID: endpointID,
	}
}

// ID returns the cluster ID.
func (c *BasicCluster) ID() ClusterID {
	return c.id
}

// EndpointID returns the endpoint this cluster belongs to.
func (c *BasicCluster) EndpointID() EndpointID {
	return c.endpointID
}

// AddEvent declares an event on this cluster.
// Returns ErrEventExists if an event with the same ID is already declared.
func (c *BasicCluster) AddEvent(ev EventEntry) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.events {
		if existing.ID == ev.ID {
			return ErrEventExists
		}
	}

	c.events = append(c.events, ev)
	return nil
}

// AddEvents declares multiple events, stopping at the first failure.
func (c *BasicCluster) AddEvents(events ...EventEntry) error {
	for _, ev := range events {
		if err := c.AddEvent(ev); err != nil {
			return err
		}
	}
	return nil
}

// EventList returns all declared events in declaration order.
func (c *BasicCluster) EventList() []EventEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]EventEntry{}, c.events...)
}

// FindEvent returns the metadata for the event with the given ID.
// The declared set is small and static, so a linear scan suffices.
func (c *BasicCluster) FindEvent(id EventID) (EventEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, ev := range c.events {
		if ev.ID == id {
			return ev, true
		}
	}
	return EventEntry{}, false
}

// EventCount returns the number of declared events.
func (c *BasicCluster) EventCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.events)
}

// Path returns the concrete cluster path for this cluster.
func (c *BasicCluster) Path() ConcreteClusterPath {
	return ConcreteClusterPath{
		Endpoint: c.endpointID,
		Cluster:  c.id,
	}
}

// Verify BasicCluster implements the interface.
var _ Cluster = (*BasicCluster)(nil)
