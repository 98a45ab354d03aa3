// Package datamodel provides the metadata view of the Matter Data Model
// (Spec Chapter 7) consumed by the Interaction Model layer.
//
// This package defines the hierarchy of Node → Endpoint → Cluster as
// read-only metadata: which endpoints exist, which server clusters each
// endpoint declares, and which events each cluster declares together with
// the privilege required to read them. It carries no attribute or command
// machinery; those interactions live outside this module.
//
// Spec References:
//   - Section 7.4: Element hierarchy
//   - Section 7.8: Node
//   - Section 7.9: Endpoint
//   - Section 7.10: Cluster
//   - Section 7.14: Event
package datamodel

// Privilege defines access privilege levels declared in metadata.
// Spec: Section 7.6
type Privilege int

const (
	// PrivilegeUnknown indicates an uninitialized or invalid privilege.
	PrivilegeUnknown Privilege = iota

	// PrivilegeView allows read access to attributes and events.
	// Spec: Section 7.6.6
	PrivilegeView

	// PrivilegeProxyView allows proxy read access (for proxy devices).
	PrivilegeProxyView

	// PrivilegeOperate allows read/write/invoke access for normal operations.
	// Spec: Section 7.6.7
	PrivilegeOperate

	// PrivilegeManage allows configuration and management operations.
	// Spec: Section 7.6.8
	PrivilegeManage

	// PrivilegeAdminister allows full administrative control.
	// Spec: Section 7.6.9
	PrivilegeAdminister
)

// String returns a human-readable name for the privilege level.
func (p Privilege) String() string {
	switch p {
	case PrivilegeView:
		return "View"
	case PrivilegeProxyView:
		return "ProxyView"
	case PrivilegeOperate:
		return "Operate"
	case PrivilegeManage:
		return "Manage"
	case PrivilegeAdminister:
		return "Administer"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the privilege is a defined value.
func (p Privilege) IsValid() bool {
	return p >= PrivilegeView && p <= PrivilegeAdminister
}

// EventPriority defines the priority level for events.
// Spec: Section 7.14.1.3
type EventPriority int

const (
	// EventPriorityDebug is for debugging information.
	EventPriorityDebug EventPriority = iota

	// EventPriorityInfo is for informational events.
	EventPriorityInfo

	// EventPriorityCritical is for critical events that must not be lost.
	EventPriorityCritical
)

// String returns a human-readable name for the event priority.
func (p EventPriority) String() string {
	switch p {
	case EventPriorityDebug:
		return "Debug"
	case EventPriorityInfo:
		return "Info"
	case EventPriorityCritical:
		return "Critical"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the priority is a defined value.
func (p EventPriority) IsValid() bool {
	return p >= EventPriorityDebug && p <= EventPriorityCritical
}
