package im

import (
	"github.com/pion/logging"

	"github.com/ZeynabBaghiyan/Matter/pkg/acl"
	"github.com/ZeynabBaghiyan/Matter/pkg/datamodel"
)

// AccessControl is the slice of the ACL subsystem the event read path
// consumes.
type AccessControl interface {
	Check(subject acl.SubjectDescriptor, path acl.RequestPath, privilege acl.Privilege) acl.Result
}

// Both the bare checker and the managed ACL satisfy AccessControl.
var (
	_ AccessControl = (*acl.Checker)(nil)
	_ AccessControl = (*acl.Manager)(nil)
)

// EventPathValidatorConfig configures an EventPathValidator.
type EventPathValidatorConfig struct {
	// Provider is the data model registry paths resolve against.
	// Required; if nil, the validator sees no endpoints and every path
	// is invalid.
	Provider datamodel.Provider

	// AccessControl performs the ACL checks.
	// Required; if nil, every check denies.
	AccessControl AccessControl

	// EventListSupported selects precise event handling: clusters declare
	// their events, unknown events are rejected, and wildcards expand to
	// per-event checks. When false, any event ID is assumed to exist and
	// wildcard reads collapse to one cluster-scoped check at View.
	EventListSupported bool

	// ReadPrivilege resolves per-event required privileges.
	// Defaults to RegistryEventPrivilege over Provider.
	ReadPrivilege EventReadPrivilege

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// EventPathValidator decides whether event paths in a read request name
// anything the requesting subject may see.
//
// Spec: 8.4.3 (Read Interaction)
// C++ Reference: src/app/ember_coupling/EventPathValidity.mixin.h
type EventPathValidator struct {
	provider  datamodel.Provider
	access    AccessControl
	privilege EventReadPrivilege

	// events is the existence/permission strategy, fixed at construction.
	events eventAccess

	log logging.LeveledLogger
}

// NewEventPathValidator creates a validator. Missing config pieces default
// to denying: no provider means no endpoints, no access control means no
// grants.
func NewEventPathValidator(config EventPathValidatorConfig) *EventPathValidator {
	provider := config.Provider
	if provider == nil {
		provider = emptyProvider{}
	}

	access := config.AccessControl
	if access == nil {
		access = denyAllAccessControl{}
	}

	privilege := config.ReadPrivilege
	if privilege == nil {
		privilege = RegistryEventPrivilege{Provider: provider}
	}

	var events eventAccess
	if config.EventListSupported {
		events = preciseEventAccess{access: access, privilege: privilege}
	} else {
		events = assumedEventAccess{access: access}
	}

	v := &EventPathValidator{
		provider:  provider,
		access:    access,
		privilege: privilege,
		events:    events,
	}

	if config.LoggerFactory != nil {
		v.log = config.LoggerFactory.NewLogger("im")
	}

	return v
}

// IsEventPathValid reports whether the path names at least one event on
// the endpoint that the subject is allowed to read. The endpoint comes in
// separately: read handlers expand endpoint wildcards before calling.
//
// The result is a bare boolean. A missing endpoint, missing cluster,
// undeclared event and denied access all look the same to the caller.
func (v *EventPathValidator) IsEventPathValid(endpointID datamodel.EndpointID, spec EventPathSpec, subject acl.SubjectDescriptor) bool {
	valid := v.hasValidPath(endpointID, spec, subject)

	if v.log != nil {
		v.log.Tracef("event path %s on endpoint %d valid=%t", spec, endpointID, valid)
	}

	return valid
}

// HasValidEventPaths reports whether at least one of the request's event
// paths is readable by the subject. Endpoint wildcards expand over every
// registered endpoint. Read handlers reject event reads outright when
// this returns false.
func (v *EventPathValidator) HasValidEventPaths(specs []EventPathSpec, subject acl.SubjectDescriptor) bool {
	for _, spec := range specs {
		if spec.HasWildcardEndpoint() {
			for _, endpoint := range v.provider.GetEndpoints() {
				if v.IsEventPathValid(endpoint.ID(), spec, subject) {
					return true
				}
			}
			continue
		}

		if v.IsEventPathValid(*spec.Endpoint, spec, subject) {
			return true
		}
	}

	return false
}

// hasValidPath resolves the cluster level of the path.
func (v *EventPathValidator) hasValidPath(endpointID datamodel.EndpointID, spec EventPathSpec, subject acl.SubjectDescriptor) bool {
	endpoint := v.provider.GetEndpoint(endpointID)
	if endpoint == nil {
		return false
	}

	if spec.HasWildcardCluster() {
		for _, cluster := range endpoint.GetClusters() {
			if v.hasValidPathInCluster(endpointID, cluster, spec, subject) {
				return true
			}
		}
		return false
	}

	cluster := endpoint.GetCluster(*spec.Cluster)
	if cluster == nil {
		return false
	}
	return v.hasValidPathInCluster(endpointID, cluster, spec, subject)
}

// hasValidPathInCluster resolves the event level of the path within one
// cluster.
func (v *EventPathValidator) hasValidPathInCluster(endpointID datamodel.EndpointID, cluster datamodel.Cluster, spec EventPathSpec, subject acl.SubjectDescriptor) bool {
	if spec.HasWildcardEvent() {
		return v.events.anyReadableEvent(endpointID, cluster, subject)
	}

	// No access control call for an event the cluster does not declare.
	if !v.events.eventExists(cluster, *spec.Event) {
		return false
	}

	path := datamodel.ConcreteEventPath{Endpoint: endpointID, Cluster: cluster.ID(), Event: *spec.Event}
	return canAccessEvent(v.access, v.privilege, subject, path)
}

// eventAccess is the event existence/permission strategy selected from
// EventListSupported when the validator is built.
type eventAccess interface {
	// eventExists reports whether the cluster has the event.
	eventExists(cluster datamodel.Cluster, event datamodel.EventID) bool

	// anyReadableEvent reports whether the subject may read any event of
	// the cluster on the endpoint.
	anyReadableEvent(endpointID datamodel.EndpointID, cluster datamodel.Cluster, subject acl.SubjectDescriptor) bool
}

// preciseEventAccess works from declared event lists: unknown events do
// not exist, and wildcard expansion checks each declared event against
// its own required privilege, stopping at the first readable one.
type preciseEventAccess struct {
	access    AccessControl
	privilege EventReadPrivilege
}

func (p preciseEventAccess) eventExists(cluster datamodel.Cluster, event datamodel.EventID) bool {
	_, ok := cluster.FindEvent(event)
	return ok
}

func (p preciseEventAccess) anyReadableEvent(endpointID datamodel.EndpointID, cluster datamodel.Cluster, subject acl.SubjectDescriptor) bool {
	for _, entry := range cluster.EventList() {
		path := datamodel.ConcreteEventPath{Endpoint: endpointID, Cluster: cluster.ID(), Event: entry.ID}
		if canAccessEvent(p.access, p.privilege, subject, path) {
			return true
		}
	}
	return false
}

// assumedEventAccess covers registries without event lists: any event ID
// is taken to exist, and a wildcard read collapses to one cluster-scoped
// check at View privilege.
type assumedEventAccess struct {
	access AccessControl
}

func (a assumedEventAccess) eventExists(datamodel.Cluster, datamodel.EventID) bool {
	return true
}

func (a assumedEventAccess) anyReadableEvent(endpointID datamodel.EndpointID, cluster datamodel.Cluster, subject acl.SubjectDescriptor) bool {
	// Entity left unset so the check covers whatever events the cluster
	// might carry.
	requestPath := acl.NewRequestPath(uint32(cluster.ID()), uint16(endpointID), acl.RequestTypeEventRead)
	return a.access.Check(subject, requestPath, acl.PrivilegeView) == acl.ResultAllowed
}

// canAccessEvent checks one concrete event against the ACL at the event's
// required read privilege.
func canAccessEvent(access AccessControl, privilege EventReadPrivilege, subject acl.SubjectDescriptor, path datamodel.ConcreteEventPath) bool {
	requestPath := acl.NewRequestPathWithEntity(uint32(path.Cluster), uint16(path.Endpoint), acl.RequestTypeEventRead, uint32(path.Event))
	return access.Check(subject, requestPath, privilege.ForReadEvent(path)) == acl.ResultAllowed
}

// emptyProvider is the fail-closed default registry: no endpoints.
type emptyProvider struct{}

func (emptyProvider) GetEndpoint(datamodel.EndpointID) datamodel.Endpoint { return nil }
func (emptyProvider) GetEndpoints() []datamodel.Endpoint                  { return nil }

// denyAllAccessControl is the fail-closed default ACL.
type denyAllAccessControl struct{}

func (denyAllAccessControl) Check(acl.SubjectDescriptor, acl.RequestPath, acl.Privilege) acl.Result {
	return acl.ResultDenied
}
