// Package accesscontrol defines metadata for the Access Control Cluster (0x001F).
//
// The Access Control cluster exposes the node's access control list on the
// root endpoint. Its change events carry ACL contents, so they require
// Administer privilege to read and are fabric-sensitive.
//
// Spec Reference: Section 9.10
//
// C++ Reference: src/app/clusters/access-control-server/access-control-server.cpp
package accesscontrol

import (
	"github.com/ZeynabBaghiyan/Matter/pkg/datamodel"
)

// Cluster constants.
const (
	ClusterID       datamodel.ClusterID = 0x001F
	ClusterRevision uint16              = 2
)

// Event IDs (Spec 9.10.7).
const (
	// EventAccessControlEntryChanged is emitted when an ACL entry is added,
	// changed, or removed (Spec 9.10.7.1). Priority: INFO.
	EventAccessControlEntryChanged datamodel.EventID = 0x00

	// EventAccessControlExtensionChanged is emitted when an ACL extension is
	// added, changed, or removed (Spec 9.10.7.2). Priority: INFO.
	EventAccessControlExtensionChanged datamodel.EventID = 0x01
)

// Events returns the standard event metadata for the cluster.
// Both change events require Administer privilege and are fabric-sensitive.
func Events() []datamodel.EventEntry {
	return []datamodel.EventEntry{
		datamodel.NewEventEntry(EventAccessControlEntryChanged, datamodel.EventPriorityInfo, datamodel.PrivilegeAdminister, true),
		datamodel.NewEventEntry(EventAccessControlExtensionChanged, datamodel.EventPriorityInfo, datamodel.PrivilegeAdminister, true),
	}
}

// New creates the Access Control cluster metadata for the given endpoint.
// The cluster is mandatory on the root endpoint (endpoint 0).
func New(endpointID datamodel.EndpointID) *datamodel.BasicCluster {
	c := datamodel.NewCluster(ClusterID, endpointID)
	if err := c.AddEvents(Events()...); err != nil {
		// Event IDs are distinct constants; a duplicate is a programmer error.
		panic(err)
	}
	return c
}
