// Package im implements the Interaction Model read path for events.
//
// The entry point is the EventPathValidator, which decides whether a read
// request's event paths name anything the requesting subject is allowed to
// see. A path may be fully concrete (endpoint/cluster/event) or carry
// wildcards at any level; wildcards are expanded against the data model
// registry and access is checked per concrete candidate, stopping at the
// first readable one.
//
// Existence and permission checking run in one of two modes, fixed when the
// validator is constructed:
//
//   - Event lists supported: clusters declare their events, so unknown
//     events are rejected outright and each event is checked against its
//     own required read privilege.
//   - Event lists unsupported: cluster metadata cannot enumerate events, so
//     any event ID is assumed to exist and wildcard reads collapse to a
//     single cluster-scoped check at View privilege.
//
// All failures (unknown endpoint, unknown cluster, unknown event, denied
// access) yield plain false. Callers cannot distinguish "does not exist"
// from "not allowed", which keeps the node's shape unobservable to
// unprivileged peers.
//
// Spec References:
//   - Section 8.4.3: Read Interaction
//   - Section 6.6.6: Conceptual Access Control Algorithm
//
// C++ Reference: src/app/ember_coupling/EventPathValidity.mixin.h
package im
