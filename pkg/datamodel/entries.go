package datamodel

// EventEntry describes an event's metadata.
// Used for discovery and read access checks.
// C++ Reference: MetadataTypes.h::EventEntry
type EventEntry struct {
	// ID is the event identifier.
	ID EventID

	// Priority is the default priority for this event.
	Priority EventPriority

	// ReadPrivilege is the minimum privilege required to read this event.
	ReadPrivilege Privilege

	// IsFabricSensitive indicates if the event is fabric-sensitive.
	IsFabricSensitive bool
}

// NewEventEntry creates a new event entry.
func NewEventEntry(id EventID, priority EventPriority, readPriv Privilege, fabricSensitive bool) EventEntry {
	return EventEntry{
		ID:                id,
		Priority:          priority,
		ReadPrivilege:     readPriv,
		IsFabricSensitive: fabricSensitive,
	}
}

// EndpointEntry describes an endpoint's metadata.
// C++ Reference: MetadataTypes.h::EndpointEntry
type EndpointEntry struct {
	// ID is the endpoint identifier.
	ID EndpointID

	// ParentID is the parent endpoint ID.
	// nil indicates endpoint 0 is the parent (for non-root endpoints)
	// or there is no parent (for endpoint 0).
	ParentID *EndpointID
}

// DeviceTypeEntry describes a device type present on an endpoint.
// C++ Reference: MetadataTypes.h::DeviceTypeEntry
type DeviceTypeEntry struct {
	// DeviceTypeID is the device type identifier.
	DeviceTypeID DeviceTypeID

	// Revision is the device type revision.
	Revision uint8
}
