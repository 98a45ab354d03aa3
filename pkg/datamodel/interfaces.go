package datamodel

// Provider is the read-only registry view of a node's data model.
// It is the interface the Interaction Model layer queries when resolving
// request paths; implementations own the storage and its concurrency.
//
// C++ Reference: ProviderMetadataTree::Endpoints
type Provider interface {
	// GetEndpoint returns the endpoint with the specified ID, or nil if not found.
	// Used when processing concrete paths.
	GetEndpoint(id EndpointID) Endpoint

	// GetEndpoints returns all registered endpoints in registration order.
	// Used for wildcard path expansion (Spec 8.2.1.6).
	GetEndpoints() []Endpoint
}

// Endpoint represents a component within a Node (Spec 7.9).
// An endpoint is an instance of a device type and contains clusters.
//
// C++ Reference: ProviderMetadataTree::ServerClusters
type Endpoint interface {
	// ID returns the endpoint number.
	ID() EndpointID

	// Entry returns the endpoint metadata.
	Entry() EndpointEntry

	// GetCluster returns the server cluster with the specified ID, or nil if
	// not found. Only server-side cluster instances are registered here;
	// events are server-originated.
	GetCluster(id ClusterID) Cluster

	// GetClusters returns all server clusters on this endpoint in declaration order.
	// Used for wildcard path expansion.
	GetClusters() []Cluster

	// GetDeviceTypes returns the device types supported by this endpoint.
	GetDeviceTypes() []DeviceTypeEntry
}

// Cluster represents the metadata of a server-side cluster instance (Spec 7.10).
//
// C++ Reference: MetadataTypes.h::ServerClusterEntry
type Cluster interface {
	// ID returns the cluster ID (e.g., 0x0006 for OnOff).
	ID() ClusterID

	// EndpointID returns the endpoint this cluster belongs to.
	EndpointID() EndpointID

	// EventList returns metadata for all declared events in declaration order.
	// Builds without event-list metadata leave this empty.
	EventList() []EventEntry

	// FindEvent returns the metadata for the event with the given ID.
	// The second return value reports whether the event is declared.
	FindEvent(id EventID) (EventEntry, bool)
}
