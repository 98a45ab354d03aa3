package acl

// CASE Authenticated Tag (CAT) handling.
// Spec: Section 2.5.5.5
//
// A CAT is a 32-bit value carried in a CASE certificate:
//   - Upper 16 bits: Identifier (the tag category)
//   - Lower 16 bits: Version (monotonically increasing, 0 is invalid)
//
// On the wire and in ACL entries a CAT appears as a NodeID in the
// range 0xFFFF_FFFD_xxxx_xxxx, with the CAT value in the low 32 bits.

// CASEAuthTag is a 32-bit CASE Authenticated Tag.
// Layout: [Identifier:16][Version:16]
type CASEAuthTag uint32

// CAT field masks and markers.
const (
	// CATUndefined marks an empty CAT slot.
	CATUndefined CASEAuthTag = 0

	// CATIdentifierMask selects the identifier bits of a CAT.
	CATIdentifierMask uint32 = 0xFFFF_0000

	// CATIdentifierShift is the bit offset of the identifier.
	CATIdentifierShift = 16

	// CATVersionMask selects the version bits of a CAT.
	CATVersionMask uint32 = 0x0000_FFFF
)

// CAT-type NodeID range.
// Spec: Section 2.5.5.1 (Node ID ranges)
const (
	// NodeIDMinCAT is the minimum CAT-type NodeID.
	NodeIDMinCAT uint64 = 0xFFFF_FFFD_0000_0000

	// NodeIDMaxCAT is the maximum CAT-type NodeID.
	NodeIDMaxCAT uint64 = 0xFFFF_FFFD_FFFF_FFFF

	// NodeIDCATMask selects the CAT portion of a CAT-type NodeID.
	NodeIDCATMask uint64 = 0x0000_0000_FFFF_FFFF
)

// Reserved CAT identifiers.
const (
	// CATIdentifierAdmin is the Admin CAT identifier (0xFFFF).
	CATIdentifierAdmin uint16 = 0xFFFF

	// CATIdentifierAnchor is the Anchor CAT identifier (0xFFFE).
	CATIdentifierAnchor uint16 = 0xFFFE
)

// NewCASEAuthTag builds a CAT from an identifier and a version.
func NewCASEAuthTag(identifier, version uint16) CASEAuthTag {
	return CASEAuthTag(uint32(identifier)<<CATIdentifierShift | uint32(version))
}

// GetIdentifier returns the 16-bit identifier portion of the CAT.
func (c CASEAuthTag) GetIdentifier() uint16 {
	return uint16((uint32(c) & CATIdentifierMask) >> CATIdentifierShift)
}

// GetVersion returns the 16-bit version portion of the CAT.
func (c CASEAuthTag) GetVersion() uint16 {
	return uint16(uint32(c) & CATVersionMask)
}

// IsValid returns true if the CAT carries a non-zero version.
// Version 0 is reserved as invalid.
func (c CASEAuthTag) IsValid() bool {
	return c.GetVersion() > 0
}

// NodeID encodes this CAT as a CAT-type NodeID
// (0xFFFF_FFFD_xxxx_xxxx).
func (c CASEAuthTag) NodeID() uint64 {
	return NodeIDMinCAT | uint64(c)
}

// IsCATNodeID returns true if the NodeID falls in the CAT range.
func IsCATNodeID(nodeID uint64) bool {
	return nodeID >= NodeIDMinCAT && nodeID <= NodeIDMaxCAT
}

// CATFromNodeID recovers the CAT from a CAT-type NodeID.
// Returns CATUndefined for NodeIDs outside the CAT range.
func CATFromNodeID(nodeID uint64) CASEAuthTag {
	if !IsCATNodeID(nodeID) {
		return CATUndefined
	}
	return CASEAuthTag(nodeID & NodeIDCATMask)
}

// CATValues holds the up-to-3 CATs extracted from a CASE certificate.
type CATValues [3]CASEAuthTag

// GetNumTagsPresent counts the occupied CAT slots.
func (c CATValues) GetNumTagsPresent() int {
	n := 0
	for _, tag := range c {
		if tag != CATUndefined {
			n++
		}
	}
	return n
}

// Contains reports whether the exact CAT value occupies one of the slots.
func (c CATValues) Contains(tag CASEAuthTag) bool {
	if tag == CATUndefined {
		return false
	}
	for _, have := range c {
		if have == tag {
			return true
		}
	}
	return false
}

// ContainsIdentifier reports whether any slot carries the given identifier,
// regardless of version.
func (c CATValues) ContainsIdentifier(identifier uint16) bool {
	for _, tag := range c {
		if tag != CATUndefined && tag.GetIdentifier() == identifier {
			return true
		}
	}
	return false
}

// AreValid returns true if every occupied slot has a non-zero version and
// no two slots share an identifier.
func (c CATValues) AreValid() bool {
	var seen [3]uint16
	n := 0
	for _, tag := range c {
		if tag == CATUndefined {
			continue
		}
		if !tag.IsValid() {
			return false
		}
		id := tag.GetIdentifier()
		for i := 0; i < n; i++ {
			if seen[i] == id {
				return false
			}
		}
		seen[n] = id
		n++
	}
	return true
}

// CheckSubjectAgainstCATs implements CAT subject matching.
// Spec: Section 6.6.2.1.2
//
// The subject must be a CAT-type NodeID with a non-zero version. It matches
// when some slot carries the same identifier with a version greater than or
// equal to the subject's version, so a certificate tagged with version N
// satisfies ACL entries written for versions 1 through N.
func (c CATValues) CheckSubjectAgainstCATs(subject uint64) bool {
	if !IsCATNodeID(subject) {
		return false
	}

	want := CATFromNodeID(subject)
	if want.GetVersion() == 0 {
		return false
	}

	for _, tag := range c {
		if tag == CATUndefined {
			continue
		}
		if tag.GetIdentifier() != want.GetIdentifier() {
			continue
		}
		if tag.GetVersion() >= want.GetVersion() {
			return true
		}
	}
	return false
}

// Equal reports whether both sets hold the same CATs, ignoring slot order.
// Invalid sets never compare equal.
func (c CATValues) Equal(other CATValues) bool {
	if c.GetNumTagsPresent() != other.GetNumTagsPresent() {
		return false
	}
	if !c.AreValid() || !other.AreValid() {
		return false
	}
	for _, tag := range c {
		if tag == CATUndefined {
			continue
		}
		if !other.Contains(tag) {
			return false
		}
	}
	return true
}
