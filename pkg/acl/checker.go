package acl

import "sync"

// DeviceTypeResolver answers whether an endpoint carries a device type.
// It decouples device-type target matching from the data model package;
// callers wire in a resolver backed by their endpoint registry.
type DeviceTypeResolver interface {
	// IsDeviceTypeOnEndpoint returns true if the endpoint supports the device type.
	IsDeviceTypeOnEndpoint(deviceType uint32, endpoint uint16) bool
}

// NullDeviceTypeResolver never matches any device type.
// Use it when ACL entries with device-type targets are not in play.
type NullDeviceTypeResolver struct{}

// IsDeviceTypeOnEndpoint always returns false.
func (NullDeviceTypeResolver) IsDeviceTypeOnEndpoint(uint32, uint16) bool {
	return false
}

// Checker evaluates access requests against a set of ACL entries.
// It implements the algorithm from Spec 6.6.6.2 and is safe for
// concurrent use.
type Checker struct {
	entries            []Entry
	deviceTypeResolver DeviceTypeResolver
	mu                 sync.RWMutex
}

// NewChecker creates an access control checker.
// A nil resolver defaults to NullDeviceTypeResolver.
func NewChecker(resolver DeviceTypeResolver) *Checker {
	if resolver == nil {
		resolver = NullDeviceTypeResolver{}
	}
	return &Checker{
		deviceTypeResolver: resolver,
	}
}

// SetEntries replaces the ACL with a copy of the given entries.
func (c *Checker) SetEntries(entries []Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make([]Entry, len(entries))
	copy(c.entries, entries)
}

// GetEntries returns a copy of the current ACL entries.
func (c *Checker) GetEntries() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// AddEntry validates and appends a single ACL entry.
func (c *Checker) AddEntry(entry Entry) error {
	if err := ValidateEntry(&entry); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = append(c.entries, entry)
	return nil
}

// Check decides whether the subject holds the required privilege on the
// request path. Implements Spec 6.6.6.2 "Overall Algorithm":
//
//  1. A PASE session during commissioning has implicit Administer.
//  2. Otherwise scan the entries; an entry grants access when its fabric,
//     auth mode, privilege, subjects and targets all match the request.
//  3. No matching entry means denied.
func (c *Checker) Check(subject SubjectDescriptor, target RequestPath, required Privilege) Result {
	// Spec 6.6.2.9: commissioning over PASE acts with Administer rights
	// before any ACL exists.
	if subject.AuthMode == AuthModePASE && subject.IsCommissioning {
		return ResultAllowed
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.entries {
		entry := &c.entries[i]

		// Entries with an unassigned fabric never match.
		if entry.FabricIndex == FabricIndexInvalid {
			continue
		}
		if entry.FabricIndex != subject.FabricIndex {
			continue
		}

		if entry.AuthMode != subject.AuthMode {
			continue
		}

		if !entry.Privilege.Grants(required) {
			continue
		}

		if !subjectMatches(entry, &subject) {
			continue
		}

		if !c.targetMatches(entry, &target) {
			continue
		}

		return ResultAllowed
	}

	return ResultDenied
}

// subjectMatches reports whether the subject descriptor satisfies the
// entry's subject list. An empty list is a wildcard, allowed only for
// CASE and Group entries.
// Spec 6.6.6.2: subject_matches
func subjectMatches(entry *Entry, subject *SubjectDescriptor) bool {
	if len(entry.Subjects) == 0 {
		return entry.AuthMode == AuthModeCASE || entry.AuthMode == AuthModeGroup
	}

	for _, aclSubject := range entry.Subjects {
		if singleSubjectMatches(aclSubject, subject) {
			return true
		}
	}

	return false
}

// singleSubjectMatches compares one ACL subject against the descriptor:
// either an exact NodeID match, or a CAT match for CASE sessions.
func singleSubjectMatches(aclSubject uint64, subject *SubjectDescriptor) bool {
	if aclSubject == subject.Subject {
		return true
	}

	// A CAT-type ACL subject matches any certificate CAT with the same
	// identifier and a version at least as high.
	if subject.AuthMode == AuthModeCASE && IsCATNodeID(aclSubject) {
		return subject.CATs.CheckSubjectAgainstCATs(aclSubject)
	}

	return false
}

// targetMatches reports whether the request path satisfies the entry's
// target list. An empty list is a wildcard over all targets.
func (c *Checker) targetMatches(entry *Entry, path *RequestPath) bool {
	if len(entry.Targets) == 0 {
		return true
	}

	for i := range entry.Targets {
		if c.singleTargetMatches(&entry.Targets[i], path) {
			return true
		}
	}

	return false
}

// singleTargetMatches compares one ACL target against the request path.
// Every field the target specifies must match; unspecified fields are
// wildcards.
func (c *Checker) singleTargetMatches(target *Target, path *RequestPath) bool {
	if target.Cluster != nil && *target.Cluster != path.Cluster {
		return false
	}

	if target.Endpoint != nil && *target.Endpoint != path.Endpoint {
		return false
	}

	if target.DeviceType != nil {
		if !c.deviceTypeResolver.IsDeviceTypeOnEndpoint(*target.DeviceType, path.Endpoint) {
			return false
		}
	}

	return true
}
