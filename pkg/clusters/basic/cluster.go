// Package basic defines metadata for the Basic Information Cluster (0x0028).
//
// The Basic Information cluster provides attributes and events for determining
// basic information about Nodes. It is mandatory on the root endpoint
// (endpoint 0) and declares the node lifecycle events StartUp, ShutDown,
// Leave, and ReachableChanged.
//
// Spec Reference: Section 11.1
//
// C++ Reference: src/app/clusters/basic-information/BasicInformationCluster.cpp
package basic

import (
	"github.com/ZeynabBaghiyan/Matter/pkg/datamodel"
)

// Cluster constants.
const (
	ClusterID       datamodel.ClusterID = 0x0028
	ClusterRevision uint16              = 5
)

// Event IDs (Spec 11.1.6).
const (
	// EventStartUp is emitted on completion of a boot or reboot process
	// (Spec 11.1.6.1). Priority: CRITICAL.
	EventStartUp datamodel.EventID = 0x00

	// EventShutDown is emitted prior to an orderly shutdown
	// (Spec 11.1.6.2). Priority: CRITICAL.
	EventShutDown datamodel.EventID = 0x01

	// EventLeave is emitted when the node leaves a fabric
	// (Spec 11.1.6.3). Priority: INFO.
	EventLeave datamodel.EventID = 0x02

	// EventReachableChanged is emitted when the Reachable attribute changes
	// (Spec 11.1.6.4). Priority: INFO.
	EventReachableChanged datamodel.EventID = 0x03
)

// Events returns the standard event metadata for the cluster.
// All Basic Information events are readable at View privilege and none
// are fabric-sensitive.
func Events() []datamodel.EventEntry {
	return []datamodel.EventEntry{
		datamodel.NewEventEntry(EventStartUp, datamodel.EventPriorityCritical, datamodel.PrivilegeView, false),
		datamodel.NewEventEntry(EventShutDown, datamodel.EventPriorityCritical, datamodel.PrivilegeView, false),
		datamodel.NewEventEntry(EventLeave, datamodel.EventPriorityInfo, datamodel.PrivilegeView, false),
		datamodel.NewEventEntry(EventReachableChanged, datamodel.EventPriorityInfo, datamodel.PrivilegeView, false),
	}
}

// New creates the Basic Information cluster metadata for the given endpoint.
func New(endpointID datamodel.EndpointID) *datamodel.BasicCluster {
	c := datamodel.NewCluster(ClusterID, endpointID)
	if err := c.AddEvents(Events()...); err != nil {
		// Event IDs are distinct constants; a duplicate is a programmer error.
		panic(err)
	}
	return c
}
