// Package devicedef loads device definitions from YAML.
//
// A device definition describes the metadata a node exposes for path
// validation: its endpoints, the clusters on each endpoint, the events each
// cluster declares (with priority, read privilege, and fabric sensitivity),
// plus the node's access control list. Build turns a parsed definition into
// a datamodel registry and ACL entries ready to wire into a validator.
//
// Numeric IDs accept decimal or 0x-prefixed hexadecimal notation:
//
//	endpoints:
//	  - id: 0
//	    clusters:
//	      - id: 0x0028
//	        events:
//	          - id: 0x00
//	            priority: critical
//	acl:
//	  - fabric: 1
//	    privilege: administer
//	    auth-mode: case
//	    subjects: [0x1122]
package devicedef

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ID is a numeric identifier that accepts decimal or 0x-prefixed
// hexadecimal notation, quoted or not.
type ID uint64

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("id must be a scalar, got %s", node.Tag)
	}
	n, err := strconv.ParseUint(strings.TrimSpace(node.Value), 0, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q: %w", node.Value, err)
	}
	*v = ID(n)
	return nil
}

// Definition is the root of a device definition document.
type Definition struct {
	// Name is an optional human-readable label for the device.
	Name string `yaml:"name,omitempty"`

	// Endpoints lists the node's endpoints in declaration order.
	Endpoints []EndpointDef `yaml:"endpoints"`

	// ACL lists the node's access control entries.
	ACL []ACLEntryDef `yaml:"acl,omitempty"`
}

// EndpointDef describes one endpoint and its clusters.
type EndpointDef struct {
	ID          ID              `yaml:"id"`
	DeviceTypes []DeviceTypeDef `yaml:"device-types,omitempty"`
	Clusters    []ClusterDef    `yaml:"clusters"`
}

// DeviceTypeDef describes a device type present on an endpoint.
type DeviceTypeDef struct {
	ID       ID    `yaml:"id"`
	Revision uint8 `yaml:"revision,omitempty"`
}

// ClusterDef describes one server cluster and its declared events.
type ClusterDef struct {
	ID     ID         `yaml:"id"`
	Events []EventDef `yaml:"events,omitempty"`
}

// EventDef describes one declared event.
// Priority defaults to "info", read-privilege to "view".
type EventDef struct {
	ID              ID     `yaml:"id"`
	Priority        string `yaml:"priority,omitempty"`
	ReadPrivilege   string `yaml:"read-privilege,omitempty"`
	FabricSensitive bool   `yaml:"fabric-sensitive,omitempty"`
}

// ACLEntryDef describes one access control entry.
type ACLEntryDef struct {
	Fabric    uint8       `yaml:"fabric"`
	Privilege string      `yaml:"privilege"`
	AuthMode  string      `yaml:"auth-mode"`
	Subjects  []ID        `yaml:"subjects,omitempty"`
	Targets   []TargetDef `yaml:"targets,omitempty"`
}

// TargetDef describes one ACL target. Omitted fields are wildcards.
type TargetDef struct {
	Cluster    *ID `yaml:"cluster,omitempty"`
	Endpoint   *ID `yaml:"endpoint,omitempty"`
	DeviceType *ID `yaml:"device-type,omitempty"`
}

// Parse parses a device definition from YAML bytes.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse device definition: %w", err)
	}
	if len(def.Endpoints) == 0 {
		return nil, errors.New("device definition has no endpoints")
	}
	return &def, nil
}

// Load reads and parses a device definition file.
func Load(path string) (*Definition, error) {
	if path == "" {
		return nil, errors.New("device definition path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read device definition %s: %w", path, err)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load device definition %s: %w", path, err)
	}
	return def, nil
}
