// Package onoff defines metadata for the On/Off Cluster (0x0006).
//
// The On/Off cluster controls an on/off state, such as a light switch or
// power outlet. It declares no events, which makes it useful as the common
// case of a cluster whose event list is present but empty.
//
// C++ Reference: src/app/clusters/on-off-server/codegen/on-off-server.cpp
package onoff

import (
	"github.com/ZeynabBaghiyan/Matter/pkg/datamodel"
)

// Cluster constants.
const (
	ClusterID       datamodel.ClusterID = 0x0006
	ClusterRevision uint16              = 6
)

// New creates the On/Off cluster metadata for the given endpoint.
// The cluster declares no events.
func New(endpointID datamodel.EndpointID) *datamodel.BasicCluster {
	return datamodel.NewCluster(ClusterID, endpointID)
}
