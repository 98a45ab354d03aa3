package devicedef

import (
	"fmt"
	"math"
	"strings"

	"github.com/ZeynabBaghiyan/Matter/pkg/acl"
	"github.com/ZeynabBaghiyan/Matter/pkg/datamodel"
)

// Build constructs the node's data model registry and ACL entries.
// Every ACL entry is validated; the first invalid value in the definition
// fails the whole build.
func (d *Definition) Build() (*datamodel.BasicNode, []acl.Entry, error) {
	node := datamodel.NewNode()
	for _, epDef := range d.Endpoints {
		ep, err := epDef.build()
		if err != nil {
			return nil, nil, err
		}
		if err := node.AddEndpoint(ep); err != nil {
			return nil, nil, fmt.Errorf("endpoint %d: %w", epDef.ID, err)
		}
	}

	entries := make([]acl.Entry, 0, len(d.ACL))
	for i, aDef := range d.ACL {
		entry, err := aDef.build()
		if err != nil {
			return nil, nil, fmt.Errorf("acl entry %d: %w", i, err)
		}
		if err := acl.ValidateEntry(&entry); err != nil {
			return nil, nil, fmt.Errorf("acl entry %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return node, entries, nil
}

func (d EndpointDef) build() (*datamodel.BasicEndpoint, error) {
	if d.ID > math.MaxUint16 || !acl.IsValidEndpointID(uint16(d.ID)) {
		return nil, fmt.Errorf("endpoint %d: invalid endpoint ID", d.ID)
	}
	ep := datamodel.NewEndpoint(datamodel.EndpointID(d.ID))

	for _, dt := range d.DeviceTypes {
		if dt.ID > math.MaxUint32 || !acl.IsValidDeviceTypeID(uint32(dt.ID)) {
			return nil, fmt.Errorf("endpoint %d: invalid device type ID 0x%X", d.ID, uint64(dt.ID))
		}
		ep.AddDeviceType(datamodel.DeviceTypeEntry{
			DeviceTypeID: datamodel.DeviceTypeID(dt.ID),
			Revision:     dt.Revision,
		})
	}

	for _, cDef := range d.Clusters {
		c, err := cDef.build(datamodel.EndpointID(d.ID))
		if err != nil {
			return nil, fmt.Errorf("endpoint %d: %w", d.ID, err)
		}
		if err := ep.AddCluster(c); err != nil {
			return nil, fmt.Errorf("endpoint %d: cluster 0x%04X: %w", d.ID, uint64(cDef.ID), err)
		}
	}
	return ep, nil
}

func (d ClusterDef) build(endpointID datamodel.EndpointID) (*datamodel.BasicCluster, error) {
	if d.ID > math.MaxUint32 || !acl.IsValidClusterID(uint32(d.ID)) {
		return nil, fmt.Errorf("invalid cluster ID 0x%X", uint64(d.ID))
	}
	c := datamodel.NewCluster(datamodel.ClusterID(d.ID), endpointID)

	for _, eDef := range d.Events {
		if eDef.ID > math.MaxUint32 {
			return nil, fmt.Errorf("cluster 0x%04X: invalid event ID 0x%X", uint64(d.ID), uint64(eDef.ID))
		}
		priority, err := ParsePriority(eDef.Priority)
		if err != nil {
			return nil, fmt.Errorf("cluster 0x%04X: event 0x%02X: %w", uint64(d.ID), uint64(eDef.ID), err)
		}
		readPriv, err := parseEventPrivilege(eDef.ReadPrivilege)
		if err != nil {
			return nil, fmt.Errorf("cluster 0x%04X: event 0x%02X: %w", uint64(d.ID), uint64(eDef.ID), err)
		}
		ev := datamodel.NewEventEntry(datamodel.EventID(eDef.ID), priority, readPriv, eDef.FabricSensitive)
		if err := c.AddEvent(ev); err != nil {
			return nil, fmt.Errorf("cluster 0x%04X: event 0x%02X: %w", uint64(d.ID), uint64(eDef.ID), err)
		}
	}
	return c, nil
}

func (d ACLEntryDef) build() (acl.Entry, error) {
	privilege, err := ParsePrivilege(d.Privilege)
	if err != nil {
		return acl.Entry{}, err
	}
	authMode, err := ParseAuthMode(d.AuthMode)
	if err != nil {
		return acl.Entry{}, err
	}

	entry := acl.Entry{
		FabricIndex: acl.FabricIndex(d.Fabric),
		Privilege:   privilege,
		AuthMode:    authMode,
	}
	for _, s := range d.Subjects {
		entry.Subjects = append(entry.Subjects, uint64(s))
	}
	for i, tDef := range d.Targets {
		target, err := tDef.build()
		if err != nil {
			return acl.Entry{}, fmt.Errorf("target %d: %w", i, err)
		}
		entry.Targets = append(entry.Targets, target)
	}
	return entry, nil
}

func (d TargetDef) build() (acl.Target, error) {
	var target acl.Target
	if d.Cluster != nil {
		if *d.Cluster > math.MaxUint32 {
			return acl.Target{}, fmt.Errorf("invalid cluster ID 0x%X", uint64(*d.Cluster))
		}
		cluster := uint32(*d.Cluster)
		target.Cluster = &cluster
	}
	if d.Endpoint != nil {
		if *d.Endpoint > math.MaxUint16 {
			return acl.Target{}, fmt.Errorf("invalid endpoint ID %d", uint64(*d.Endpoint))
		}
		endpoint := uint16(*d.Endpoint)
		target.Endpoint = &endpoint
	}
	if d.DeviceType != nil {
		if *d.DeviceType > math.MaxUint32 {
			return acl.Target{}, fmt.Errorf("invalid device type ID 0x%X", uint64(*d.DeviceType))
		}
		deviceType := uint32(*d.DeviceType)
		target.DeviceType = &deviceType
	}
	return target, nil
}

// ParsePriority parses an event priority name.
// An empty string defaults to Info.
func ParsePriority(s string) (datamodel.EventPriority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return datamodel.EventPriorityInfo, nil
	case "debug":
		return datamodel.EventPriorityDebug, nil
	case "critical":
		return datamodel.EventPriorityCritical, nil
	default:
		return 0, fmt.Errorf("unknown priority %q", s)
	}
}

// ParsePrivilege parses a privilege name for ACL entries.
func ParsePrivilege(s string) (acl.Privilege, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "view":
		return acl.PrivilegeView, nil
	case "proxy-view":
		return acl.PrivilegeProxyView, nil
	case "operate":
		return acl.PrivilegeOperate, nil
	case "manage":
		return acl.PrivilegeManage, nil
	case "administer":
		return acl.PrivilegeAdminister, nil
	default:
		return 0, fmt.Errorf("unknown privilege %q", s)
	}
}

// ParseAuthMode parses an authentication mode name for ACL entries.
func ParseAuthMode(s string) (acl.AuthMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "case":
		return acl.AuthModeCASE, nil
	case "group":
		return acl.AuthModeGroup, nil
	case "pase":
		return acl.AuthModePASE, nil
	default:
		return 0, fmt.Errorf("unknown auth mode %q", s)
	}
}

// parseEventPrivilege parses an event read-privilege name.
// An empty string defaults to View, matching the data model default.
func parseEventPrivilege(s string) (datamodel.Privilege, error) {
	if strings.TrimSpace(s) == "" {
		return datamodel.PrivilegeView, nil
	}
	privilege, err := ParsePrivilege(s)
	if err != nil {
		return datamodel.PrivilegeUnknown, err
	}
	switch privilege {
	case acl.PrivilegeProxyView:
		return datamodel.PrivilegeProxyView, nil
	case acl.PrivilegeOperate:
		return datamodel.PrivilegeOperate, nil
	case acl.PrivilegeManage:
		return datamodel.PrivilegeManage, nil
	case acl.PrivilegeAdminister:
		return datamodel.PrivilegeAdminister, nil
	default:
		return datamodel.PrivilegeView, nil
	}
}
