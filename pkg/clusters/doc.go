// Package clusters holds cluster metadata definitions.
//
// Each subpackage describes one Matter cluster: its cluster ID, event IDs,
// and the per-event access metadata (priority, read privilege, fabric
// sensitivity). The definitions are consumed by path validation, which needs
// to know which events a cluster declares and what privilege each one
// requires, not how the events are generated.
//
// # Subpackages
//
//   - clusters/basic: Basic Information Cluster (0x0028)
//   - clusters/accesscontrol: Access Control Cluster (0x001F)
//   - clusters/onoff: On/Off Cluster (0x0006)
//
// Constructors return *datamodel.BasicCluster with the standard event set
// already declared, ready to attach to an endpoint.
package clusters
