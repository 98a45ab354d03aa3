package acl

import "errors"

// Validation errors.
var (
	ErrInvalidFabricIndex    = errors.New("acl: invalid fabric index")
	ErrInvalidAuthMode       = errors.New("acl: invalid auth mode")
	ErrInvalidPrivilege      = errors.New("acl: invalid privilege")
	ErrGroupAdminister       = errors.New("acl: group auth mode cannot have administer privilege")
	ErrInvalidSubject        = errors.New("acl: invalid subject for auth mode")
	ErrEmptySubjectsPASE     = errors.New("acl: PASE auth mode must have subjects")
	ErrInvalidTarget         = errors.New("acl: invalid target")
	ErrTargetEmpty           = errors.New("acl: target must have at least one field set")
	ErrTargetEndpointAndType = errors.New("acl: target cannot have both endpoint and device type")
	ErrInvalidClusterID      = errors.New("acl: invalid cluster ID")
	ErrInvalidEndpointID     = errors.New("acl: invalid endpoint ID")
	ErrInvalidDeviceTypeID   = errors.New("acl: invalid device type ID")
)

// Cluster ID ranges (Spec 7.10.2).
const (
	// Standard cluster range
	ClusterIDStdMin uint32 = 0x0000_0000
	ClusterIDStdMax uint32 = 0x0000_7FFF

	// Manufacturer-specific cluster range (per vendor prefix)
	ClusterIDMfgMin uint32 = 0x0000_FC00
	ClusterIDMfgMax uint32 = 0x0000_FFFE

	// Wildcard, never valid inside an ACL entry
	ClusterIDWildcard uint32 = 0xFFFF_FFFF
)

// Endpoint ID range (Spec 7.9.1).
const (
	EndpointIDMin     uint16 = 0x0000
	EndpointIDMax     uint16 = 0xFFFE
	EndpointIDInvalid uint16 = 0xFFFF
)

// Device Type ID range (Spec 7.10.7).
const (
	DeviceTypeIDMin      uint32 = 0x0000_0000
	DeviceTypeIDMax      uint32 = 0x0000_BFFF
	DeviceTypeIDWildcard uint32 = 0x0000_FFFF
)

// ValidateEntry checks an ACL entry against the structural rules of
// Spec 9.10.5.6 and the C++ AccessControl::IsValid() checks:
//
//   - FabricIndex in [1, 254]
//   - AuthMode CASE or Group (PASE entries are never persisted)
//   - Group entries cannot carry Administer
//   - Every subject must fit the entry's auth mode
//   - Every target must be well formed
func ValidateEntry(entry *Entry) error {
	if !entry.FabricIndex.IsValid() {
		return ErrInvalidFabricIndex
	}

	if entry.AuthMode != AuthModeCASE && entry.AuthMode != AuthModeGroup {
		return ErrInvalidAuthMode
	}

	if !entry.Privilege.IsValid() {
		return ErrInvalidPrivilege
	}

	if entry.AuthMode == AuthModeGroup && entry.Privilege == PrivilegeAdminister {
		return ErrGroupAdminister
	}

	for _, subject := range entry.Subjects {
		if err := ValidateSubject(entry.AuthMode, subject); err != nil {
			return err
		}
	}

	for i := range entry.Targets {
		if err := ValidateTarget(&entry.Targets[i]); err != nil {
			return err
		}
	}

	return nil
}

// ValidateSubject checks that a subject NodeID fits the auth mode:
// operational or CAT NodeIDs for CASE, group NodeIDs for Group,
// PAKE NodeIDs for PASE.
func ValidateSubject(authMode AuthMode, subject uint64) error {
	switch authMode {
	case AuthModeCASE:
		if IsOperationalNodeID(subject) {
			return nil
		}
		if IsCATNodeID(subject) && CATFromNodeID(subject).IsValid() {
			return nil
		}
		return ErrInvalidSubject

	case AuthModeGroup:
		if !IsGroupNodeID(subject) {
			return ErrInvalidSubject
		}
		if !IsValidGroupID(GroupIDFromNodeID(subject)) {
			return ErrInvalidSubject
		}
		return nil

	case AuthModePASE:
		if !IsPAKENodeID(subject) {
			return ErrInvalidSubject
		}
		return nil

	default:
		return ErrInvalidAuthMode
	}
}

// ValidateTarget checks that a target names at least one field, does not
// combine endpoint with device type, and uses in-range IDs.
func ValidateTarget(target *Target) error {
	if target.IsEmpty() {
		return ErrTargetEmpty
	}

	if target.Endpoint != nil && target.DeviceType != nil {
		return ErrTargetEndpointAndType
	}

	if target.Cluster != nil && !IsValidClusterID(*target.Cluster) {
		return ErrInvalidClusterID
	}

	if target.Endpoint != nil && !IsValidEndpointID(*target.Endpoint) {
		return ErrInvalidEndpointID
	}

	if target.DeviceType != nil && !IsValidDeviceTypeID(*target.DeviceType) {
		return ErrInvalidDeviceTypeID
	}

	return nil
}

// IsValidClusterID reports whether a cluster ID may appear in an ACL
// target: standard range, or a manufacturer-specific code under a valid
// vendor prefix. The wildcard cluster is excluded.
func IsValidClusterID(id uint32) bool {
	if id <= ClusterIDStdMax {
		return true
	}

	// Manufacturer-specific: 0xVVVV_FC00 - 0xVVVV_FFFE with a real vendor
	// prefix (test vendor IDs above 0xFFF4 are excluded).
	suffix := id & 0x0000_FFFF
	if suffix >= 0xFC00 && suffix <= 0xFFFE {
		return id>>16 <= 0xFFF4
	}

	return false
}

// IsValidEndpointID reports whether an endpoint ID may appear in an ACL
// target. Only the wildcard endpoint (0xFFFF) is excluded.
func IsValidEndpointID(id uint16) bool {
	return id != EndpointIDInvalid
}

// IsValidDeviceTypeID reports whether a device type ID may appear in an
// ACL target. The low 16 bits must stay within the assigned range, which
// also excludes the wildcard.
func IsValidDeviceTypeID(id uint32) bool {
	return id&0x0000_FFFF <= DeviceTypeIDMax
}
