package devicedef_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZeynabBaghiyan/Matter/pkg/acl"
	"github.com/ZeynabBaghiyan/Matter/pkg/datamodel"
	"github.com/ZeynabBaghiyan/Matter/pkg/devicedef"
	"github.com/ZeynabBaghiyan/Matter/pkg/im"
)

const lightDefinition = `
name: test-light
endpoints:
  - id: 0
    device-types:
      - id: 0x0016
        revision: 1
    clusters:
      - id: 0x0028
        events:
          - id: 0x00
            priority: critical
          - id: 0x01
            priority: critical
          - id: 0x02
      - id: 0x001F
        events:
          - id: 0x00
            read-privilege: administer
            fabric-sensitive: true
  - id: 1
    device-types:
      - id: 0x0100
        revision: 3
    clusters:
      - id: 0x0006
acl:
  - fabric: 1
    privilege: administer
    auth-mode: case
    subjects: [0x1122]
  - fabric: 1
    privilege: view
    auth-mode: case
    subjects: [0x3344]
    targets:
      - endpoint: 1
`

// TestParse verifies parsing of a full definition with hex and decimal IDs.
func TestParse(t *testing.T) {
	def, err := devicedef.Parse([]byte(lightDefinition))
	require.NoError(t, err)

	assert.Equal(t, "test-light", def.Name)
	require.Len(t, def.Endpoints, 2)

	root := def.Endpoints[0]
	assert.Equal(t, devicedef.ID(0), root.ID)
	require.Len(t, root.Clusters, 2)
	assert.Equal(t, devicedef.ID(0x0028), root.Clusters[0].ID)
	require.Len(t, root.Clusters[0].Events, 3)
	assert.Equal(t, "critical", root.Clusters[0].Events[0].Priority)
	assert.True(t, root.Clusters[1].Events[0].FabricSensitive)

	require.Len(t, def.ACL, 2)
	assert.Equal(t, uint8(1), def.ACL[0].Fabric)
	assert.Equal(t, []devicedef.ID{0x1122}, def.ACL[0].Subjects)
	require.Len(t, def.ACL[1].Targets, 1)
	require.NotNil(t, def.ACL[1].Targets[0].Endpoint)
	assert.Equal(t, devicedef.ID(1), *def.ACL[1].Targets[0].Endpoint)
}

// TestParse_Errors verifies malformed documents are rejected.
func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty document", ""},
		{"no endpoints", "name: empty"},
		{"bad yaml", "endpoints: ["},
		{"bad id scalar", "endpoints:\n  - id: notanumber\n    clusters: []"},
		{"list id", "endpoints:\n  - id: [1, 2]\n    clusters: []"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := devicedef.Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

// TestLoad verifies reading a definition from disk.
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "light.yaml")
	require.NoError(t, os.WriteFile(path, []byte(lightDefinition), 0o644))

	def, err := devicedef.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "test-light", def.Name)

	_, err = devicedef.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = devicedef.Load("")
	assert.Error(t, err)
}

// TestBuild verifies the registry and ACL entries built from a definition.
func TestBuild(t *testing.T) {
	def, err := devicedef.Parse([]byte(lightDefinition))
	require.NoError(t, err)

	node, entries, err := def.Build()
	require.NoError(t, err)

	require.Equal(t, 2, node.EndpointCount())

	basicInfo := node.GetCluster(0, 0x0028)
	require.NotNil(t, basicInfo)
	assert.Len(t, basicInfo.EventList(), 3)

	startUp, ok := basicInfo.FindEvent(0x00)
	require.True(t, ok)
	assert.Equal(t, datamodel.EventPriorityCritical, startUp.Priority)
	assert.Equal(t, datamodel.PrivilegeView, startUp.ReadPrivilege)

	leave, ok := basicInfo.FindEvent(0x02)
	require.True(t, ok)
	assert.Equal(t, datamodel.EventPriorityInfo, leave.Priority)

	aclCluster := node.GetCluster(0, 0x001F)
	require.NotNil(t, aclCluster)
	entryChanged, ok := aclCluster.FindEvent(0x00)
	require.True(t, ok)
	assert.Equal(t, datamodel.PrivilegeAdminister, entryChanged.ReadPrivilege)
	assert.True(t, entryChanged.IsFabricSensitive)

	onOff := node.GetCluster(1, 0x0006)
	require.NotNil(t, onOff)
	assert.Empty(t, onOff.EventList())

	ep1 := node.GetEndpoint(1)
	require.NotNil(t, ep1)
	deviceTypes := ep1.GetDeviceTypes()
	require.Len(t, deviceTypes, 1)
	assert.Equal(t, datamodel.DeviceTypeID(0x0100), deviceTypes[0].DeviceTypeID)

	require.Len(t, entries, 2)
	assert.Equal(t, acl.FabricIndex(1), entries[0].FabricIndex)
	assert.Equal(t, acl.PrivilegeAdminister, entries[0].Privilege)
	assert.Equal(t, acl.AuthModeCASE, entries[0].AuthMode)
	assert.Equal(t, []uint64{0x1122}, entries[0].Subjects)

	require.Len(t, entries[1].Targets, 1)
	require.NotNil(t, entries[1].Targets[0].Endpoint)
	assert.Equal(t, uint16(1), *entries[1].Targets[0].Endpoint)
}

// TestBuild_Errors verifies invalid definitions fail the build.
func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			"invalid endpoint id",
			"endpoints:\n  - id: 0xFFFF\n    clusters: []",
		},
		{
			"invalid cluster id",
			"endpoints:\n  - id: 0\n    clusters:\n      - id: 0x8000",
		},
		{
			"duplicate endpoint",
			"endpoints:\n  - id: 0\n    clusters: []\n  - id: 0\n    clusters: []",
		},
		{
			"duplicate event",
			"endpoints:\n  - id: 0\n    clusters:\n      - id: 0x0028\n        events:\n          - id: 0x00\n          - id: 0x00",
		},
		{
			"unknown priority",
			"endpoints:\n  - id: 0\n    clusters:\n      - id: 0x0028\n        events:\n          - id: 0x00\n            priority: urgent",
		},
		{
			"unknown privilege",
			"endpoints:\n  - id: 0\n    clusters: []\nacl:\n  - fabric: 1\n    privilege: root\n    auth-mode: case",
		},
		{
			"unknown auth mode",
			"endpoints:\n  - id: 0\n    clusters: []\nacl:\n  - fabric: 1\n    privilege: view\n    auth-mode: ticket",
		},
		{
			"invalid fabric",
			"endpoints:\n  - id: 0\n    clusters: []\nacl:\n  - fabric: 0\n    privilege: view\n    auth-mode: case",
		},
		{
			"group administer",
			"endpoints:\n  - id: 0\n    clusters: []\nacl:\n  - fabric: 1\n    privilege: administer\n    auth-mode: group\n    subjects: [0xFFFFFFFFFFFF0001]",
		},
		{
			"target endpoint and device type",
			"endpoints:\n  - id: 0\n    clusters: []\nacl:\n  - fabric: 1\n    privilege: view\n    auth-mode: case\n    targets:\n      - endpoint: 0\n        device-type: 0x0100",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := devicedef.Parse([]byte(tt.data))
			require.NoError(t, err)
			_, _, err = def.Build()
			assert.Error(t, err)
		})
	}
}

// TestParseEnums verifies name parsing for priorities, privileges, and auth modes.
func TestParseEnums(t *testing.T) {
	priority, err := devicedef.ParsePriority("")
	require.NoError(t, err)
	assert.Equal(t, datamodel.EventPriorityInfo, priority)

	priority, err = devicedef.ParsePriority("CRITICAL")
	require.NoError(t, err)
	assert.Equal(t, datamodel.EventPriorityCritical, priority)

	privilege, err := devicedef.ParsePrivilege("Administer")
	require.NoError(t, err)
	assert.Equal(t, acl.PrivilegeAdminister, privilege)

	privilege, err = devicedef.ParsePrivilege("proxy-view")
	require.NoError(t, err)
	assert.Equal(t, acl.PrivilegeProxyView, privilege)

	_, err = devicedef.ParsePrivilege("")
	assert.Error(t, err)

	mode, err := devicedef.ParseAuthMode("CASE")
	require.NoError(t, err)
	assert.Equal(t, acl.AuthModeCASE, mode)

	mode, err = devicedef.ParseAuthMode("group")
	require.NoError(t, err)
	assert.Equal(t, acl.AuthModeGroup, mode)

	_, err = devicedef.ParseAuthMode("open")
	assert.Error(t, err)
}

// TestRegistryDeviceTypes verifies device-type resolution against a built registry.
func TestRegistryDeviceTypes(t *testing.T) {
	def, err := devicedef.Parse([]byte(lightDefinition))
	require.NoError(t, err)
	node, _, err := def.Build()
	require.NoError(t, err)

	resolver := devicedef.RegistryDeviceTypes{Provider: node}

	assert.True(t, resolver.IsDeviceTypeOnEndpoint(0x0100, 1))
	assert.True(t, resolver.IsDeviceTypeOnEndpoint(0x0016, 0))
	assert.False(t, resolver.IsDeviceTypeOnEndpoint(0x0100, 0))
	assert.False(t, resolver.IsDeviceTypeOnEndpoint(0x0100, 9))

	empty := devicedef.RegistryDeviceTypes{}
	assert.False(t, empty.IsDeviceTypeOnEndpoint(0x0100, 1))
}

// TestBuild_EndToEnd wires a built definition into a checker and validator.
func TestBuild_EndToEnd(t *testing.T) {
	def, err := devicedef.Parse([]byte(lightDefinition))
	require.NoError(t, err)
	node, entries, err := def.Build()
	require.NoError(t, err)

	checker := acl.NewChecker(devicedef.RegistryDeviceTypes{Provider: node})
	checker.SetEntries(entries)

	validator := im.NewEventPathValidator(im.EventPathValidatorConfig{
		Provider:           node,
		AccessControl:      checker,
		EventListSupported: true,
	})

	admin := acl.SubjectDescriptor{
		FabricIndex: 1,
		AuthMode:    acl.AuthModeCASE,
		Subject:     0x1122,
	}
	viewer := acl.SubjectDescriptor{
		FabricIndex: 1,
		AuthMode:    acl.AuthModeCASE,
		Subject:     0x3344,
	}
	stranger := acl.SubjectDescriptor{
		FabricIndex: 1,
		AuthMode:    acl.AuthModeCASE,
		Subject:     0x9999,
	}

	startUpPath := im.NewEventPathSpec(0, 0x0028, 0x00)
	aclChangedPath := im.NewEventPathSpec(0, 0x001F, 0x00)

	// The admin subject reads everything its grant covers.
	assert.True(t, validator.IsEventPathValid(0, startUpPath, admin))
	assert.True(t, validator.IsEventPathValid(0, aclChangedPath, admin))

	// The viewer's grant is scoped to endpoint 1, so root endpoint events
	// are out of reach while the endpoint 1 wildcard has nothing readable.
	assert.False(t, validator.IsEventPathValid(0, startUpPath, viewer))
	assert.False(t, validator.IsEventPathValid(1, im.NewWildcardClusterSpec(1), viewer))

	assert.False(t, validator.IsEventPathValid(0, startUpPath, stranger))
}
