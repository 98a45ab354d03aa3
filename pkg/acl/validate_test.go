package acl

import (
	"errors"
	"testing"
)

func TestValidateEntry(t *testing.T) {
	base := Entry{
		FabricIndex: 1,
		Privilege:   PrivilegeView,
		AuthMode:    AuthModeCASE,
		Subjects:    []uint64{testNodeAlice},
		Targets:     []Target{NewTargetCluster(0x0006)},
	}

	tests := []struct {
		name    string
		mutate  func(*Entry)
		wantErr error
	}{
		{
			name:    "valid CASE entry",
			mutate:  func(*Entry) {},
			wantErr: nil,
		},
		{
			name: "valid group entry",
			mutate: func(e *Entry) {
				e.AuthMode = AuthModeGroup
				e.Subjects = []uint64{NodeIDFromGroupID(0x0001)}
			},
			wantErr: nil,
		},
		{
			name: "valid wildcard subjects and targets",
			mutate: func(e *Entry) {
				e.Subjects = nil
				e.Targets = nil
			},
			wantErr: nil,
		},
		{
			name:    "invalid fabric index",
			mutate:  func(e *Entry) { e.FabricIndex = FabricIndexInvalid },
			wantErr: ErrInvalidFabricIndex,
		},
		{
			name:    "PASE auth mode not storable",
			mutate:  func(e *Entry) { e.AuthMode = AuthModePASE },
			wantErr: ErrInvalidAuthMode,
		},
		{
			name:    "unknown auth mode",
			mutate:  func(e *Entry) { e.AuthMode = AuthModeUnknown },
			wantErr: ErrInvalidAuthMode,
		},
		{
			name:    "invalid privilege",
			mutate:  func(e *Entry) { e.Privilege = Privilege(0) },
			wantErr: ErrInvalidPrivilege,
		},
		{
			name: "group administer rejected",
			mutate: func(e *Entry) {
				e.AuthMode = AuthModeGroup
				e.Privilege = PrivilegeAdminister
				e.Subjects = []uint64{NodeIDFromGroupID(0x0001)}
			},
			wantErr: ErrGroupAdminister,
		},
		{
			name:    "group NodeID as CASE subject",
			mutate:  func(e *Entry) { e.Subjects = []uint64{NodeIDFromGroupID(0x0001)} },
			wantErr: ErrInvalidSubject,
		},
		{
			name: "operational NodeID as group subject",
			mutate: func(e *Entry) {
				e.AuthMode = AuthModeGroup
				e.Subjects = []uint64{testNodeAlice}
			},
			wantErr: ErrInvalidSubject,
		},
		{
			name:    "CAT subject with zero version",
			mutate:  func(e *Entry) { e.Subjects = []uint64{NewCASEAuthTag(0xAB01, 0).NodeID()} },
			wantErr: ErrInvalidSubject,
		},
		{
			name:    "CAT subject with version",
			mutate:  func(e *Entry) { e.Subjects = []uint64{NewCASEAuthTag(0xAB01, 1).NodeID()} },
			wantErr: nil,
		},
		{
			name:    "empty target",
			mutate:  func(e *Entry) { e.Targets = []Target{{}} },
			wantErr: ErrTargetEmpty,
		},
		{
			name: "endpoint and device type together",
			mutate: func(e *Entry) {
				endpoint := uint16(1)
				deviceType := uint32(0x0101)
				e.Targets = []Target{{Endpoint: &endpoint, DeviceType: &deviceType}}
			},
			wantErr: ErrTargetEndpointAndType,
		},
		{
			name:    "wildcard cluster ID in target",
			mutate:  func(e *Entry) { e.Targets = []Target{NewTargetCluster(ClusterIDWildcard)} },
			wantErr: ErrInvalidClusterID,
		},
		{
			name:    "wildcard endpoint ID in target",
			mutate:  func(e *Entry) { e.Targets = []Target{NewTargetEndpoint(EndpointIDInvalid)} },
			wantErr: ErrInvalidEndpointID,
		},
		{
			name:    "out of range device type",
			mutate:  func(e *Entry) { e.Targets = []Target{NewTargetDeviceType(0x0000_FFFF)} },
			wantErr: ErrInvalidDeviceTypeID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := base
			entry.Subjects = append([]uint64(nil), base.Subjects...)
			entry.Targets = append([]Target(nil), base.Targets...)
			tt.mutate(&entry)

			err := ValidateEntry(&entry)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateEntry() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateSubject_PASE(t *testing.T) {
	if err := ValidateSubject(AuthModePASE, NodeIDFromPAKEKeyID(1)); err != nil {
		t.Errorf("ValidateSubject(PASE, PAKE NodeID) = %v, want nil", err)
	}
	if err := ValidateSubject(AuthModePASE, testNodeAlice); !errors.Is(err, ErrInvalidSubject) {
		t.Errorf("ValidateSubject(PASE, operational) = %v, want ErrInvalidSubject", err)
	}
}

func TestIsValidClusterID(t *testing.T) {
	tests := []struct {
		id   uint32
		want bool
	}{
		{0x0000, true},              // standard min
		{0x0006, true},              // OnOff
		{0x7FFF, true},              // standard max
		{0x8000, false},             // above standard, below mfg
		{0x0001_FC00, true},         // mfg min, vendor 1
		{0x0001_FFFE, true},         // mfg max, vendor 1
		{0x0001_FFFF, false},        // above mfg suffix
		{0xFFF4_FC00, true},         // highest valid vendor prefix
		{0xFFF5_FC00, false},        // test vendor prefix
		{ClusterIDWildcard, false},  // wildcard
	}

	for _, tt := range tests {
		if got := IsValidClusterID(tt.id); got != tt.want {
			t.Errorf("IsValidClusterID(0x%08X) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestIsValidEndpointID(t *testing.T) {
	if !IsValidEndpointID(0) {
		t.Error("endpoint 0 should be valid")
	}
	if !IsValidEndpointID(EndpointIDMax) {
		t.Error("endpoint 0xFFFE should be valid")
	}
	if IsValidEndpointID(EndpointIDInvalid) {
		t.Error("endpoint 0xFFFF should be invalid")
	}
}

func TestIsValidDeviceTypeID(t *testing.T) {
	tests := []struct {
		id   uint32
		want bool
	}{
		{0x0000, true},
		{0x0101, true},          // dimmable light
		{DeviceTypeIDMax, true}, // 0xBFFF
		{0xC000, false},
		{DeviceTypeIDWildcard, false},
		{0x0001_0101, true}, // vendor-prefixed
		{0x0001_FFFF, false},
	}

	for _, tt := range tests {
		if got := IsValidDeviceTypeID(tt.id); got != tt.want {
			t.Errorf("IsValidDeviceTypeID(0x%08X) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
