package im

import (
	"fmt"
	"strings"

	"github.com/ZeynabBaghiyan/Matter/pkg/datamodel"
)

// EventPathSpec identifies an event or set of events in a read request.
// A nil field is a wildcard at that level.
// Spec: Section 10.6.8 (EventPathIB)
type EventPathSpec struct {
	Endpoint *datamodel.EndpointID
	Cluster  *datamodel.ClusterID
	Event    *datamodel.EventID
}

// NewEventPathSpec creates a fully concrete event path.
func NewEventPathSpec(endpoint datamodel.EndpointID, cluster datamodel.ClusterID, event datamodel.EventID) EventPathSpec {
	return EventPathSpec{Endpoint: &endpoint, Cluster: &cluster, Event: &event}
}

// NewWildcardEventSpec creates a path naming all events of one cluster.
func NewWildcardEventSpec(endpoint datamodel.EndpointID, cluster datamodel.ClusterID) EventPathSpec {
	return EventPathSpec{Endpoint: &endpoint, Cluster: &cluster}
}

// NewWildcardClusterSpec creates a path naming all events of one endpoint.
func NewWildcardClusterSpec(endpoint datamodel.EndpointID) EventPathSpec {
	return EventPathSpec{Endpoint: &endpoint}
}

// NewWildcardSpec creates a path naming all events of the node.
func NewWildcardSpec() EventPathSpec {
	return EventPathSpec{}
}

// HasWildcardEndpoint returns true if the endpoint is unspecified.
func (p EventPathSpec) HasWildcardEndpoint() bool {
	return p.Endpoint == nil
}

// HasWildcardCluster returns true if the cluster is unspecified.
func (p EventPathSpec) HasWildcardCluster() bool {
	return p.Cluster == nil
}

// HasWildcardEvent returns true if the event is unspecified.
func (p EventPathSpec) HasWildcardEvent() bool {
	return p.Event == nil
}

// IsConcrete returns true if no level is a wildcard.
func (p EventPathSpec) IsConcrete() bool {
	return p.Endpoint != nil && p.Cluster != nil && p.Event != nil
}

// String renders the path as endpoint/cluster/event with * for wildcards,
// e.g. "1/0x0006/*".
func (p EventPathSpec) String() string {
	var b strings.Builder

	if p.Endpoint != nil {
		fmt.Fprintf(&b, "%d", *p.Endpoint)
	} else {
		b.WriteByte('*')
	}
	b.WriteByte('/')

	if p.Cluster != nil {
		fmt.Fprintf(&b, "0x%04X", *p.Cluster)
	} else {
		b.WriteByte('*')
	}
	b.WriteByte('/')

	if p.Event != nil {
		fmt.Fprintf(&b, "0x%02X", *p.Event)
	} else {
		b.WriteByte('*')
	}

	return b.String()
}
