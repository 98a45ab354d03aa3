package im

import (
	"github.com/ZeynabBaghiyan/Matter/pkg/acl"
	"github.com/ZeynabBaghiyan/Matter/pkg/datamodel"
)

// EventReadPrivilege resolves the privilege a subject needs to read a
// concrete event.
// C++ Reference: src/app/RequiredPrivilege.h
type EventReadPrivilege interface {
	// ForReadEvent returns the required privilege for reading the event.
	ForReadEvent(path datamodel.ConcreteEventPath) acl.Privilege
}

// RegistryEventPrivilege resolves read privileges from event metadata in
// the data model registry. Events without metadata require View, matching
// the default the spec assigns to events.
type RegistryEventPrivilege struct {
	Provider datamodel.Provider
}

// ForReadEvent looks up the event's declared read privilege.
func (r RegistryEventPrivilege) ForReadEvent(path datamodel.ConcreteEventPath) acl.Privilege {
	if r.Provider == nil {
		return acl.PrivilegeView
	}

	endpoint := r.Provider.GetEndpoint(path.Endpoint)
	if endpoint == nil {
		return acl.PrivilegeView
	}

	cluster := endpoint.GetCluster(path.Cluster)
	if cluster == nil {
		return acl.PrivilegeView
	}

	entry, ok := cluster.FindEvent(path.Event)
	if !ok {
		return acl.PrivilegeView
	}

	return toACLPrivilege(entry.ReadPrivilege)
}

// FixedEventPrivilege requires the same privilege for every event.
// Useful in tests and for nodes whose events are uniformly guarded.
type FixedEventPrivilege struct {
	Privilege acl.Privilege
}

// ForReadEvent returns the fixed privilege.
func (f FixedEventPrivilege) ForReadEvent(datamodel.ConcreteEventPath) acl.Privilege {
	return f.Privilege
}

// toACLPrivilege converts a data model privilege to its ACL counterpart.
// Unset metadata privileges resolve to View.
func toACLPrivilege(p datamodel.Privilege) acl.Privilege {
	switch p {
	case datamodel.PrivilegeView:
		return acl.PrivilegeView
	case datamodel.PrivilegeProxyView:
		return acl.PrivilegeProxyView
	case datamodel.PrivilegeOperate:
		return acl.PrivilegeOperate
	case datamodel.PrivilegeManage:
		return acl.PrivilegeManage
	case datamodel.PrivilegeAdminister:
		return acl.PrivilegeAdminister
	default:
		return acl.PrivilegeView
	}
}

var (
	_ EventReadPrivilege = RegistryEventPrivilege{}
	_ EventReadPrivilege = FixedEventPrivilege{}
)
