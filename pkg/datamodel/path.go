package datamodel

// Fundamental identifier types used throughout the data model.
// Spec: Section 7.19 (Data Model identifier types)
type (
	// NodeID is a 64-bit node identifier.
	NodeID uint64

	// EndpointID is a 16-bit endpoint identifier.
	EndpointID uint16

	// ClusterID is a 32-bit cluster identifier.
	ClusterID uint32

	// EventID is a 32-bit event identifier.
	EventID uint32

	// DeviceTypeID is a 32-bit device type identifier.
	DeviceTypeID uint32
)

// ConcreteClusterPath identifies a specific cluster instance on an endpoint.
type ConcreteClusterPath struct {
	Endpoint EndpointID
	Cluster  ClusterID
}

// ConcreteEventPath identifies a specific event within a cluster.
// This is the unit at which event read access is finally checked.
// Spec: Section 8.2.1.3
type ConcreteEventPath struct {
	Endpoint EndpointID
	Cluster  ClusterID
	Event    EventID
}

// ClusterPath returns the cluster path portion.
func (p ConcreteEventPath) ClusterPath() ConcreteClusterPath {
	return ConcreteClusterPath{
		Endpoint: p.Endpoint,
		Cluster:  p.Cluster,
	}
}
