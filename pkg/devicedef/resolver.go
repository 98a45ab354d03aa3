package devicedef

import (
	"github.com/ZeynabBaghiyan/Matter/pkg/acl"
	"github.com/ZeynabBaghiyan/Matter/pkg/datamodel"
)

// RegistryDeviceTypes resolves device-type ACL targets against a data model
// registry. Wire it into an access control checker so entries with
// device-type targets match the endpoints built from a definition.
type RegistryDeviceTypes struct {
	Provider datamodel.Provider
}

// IsDeviceTypeOnEndpoint returns true if the endpoint declares the device type.
func (r RegistryDeviceTypes) IsDeviceTypeOnEndpoint(deviceType uint32, endpoint uint16) bool {
	if r.Provider == nil {
		return false
	}
	ep := r.Provider.GetEndpoint(datamodel.EndpointID(endpoint))
	if ep == nil {
		return false
	}
	for _, dt := range ep.GetDeviceTypes() {
		if uint32(dt.DeviceTypeID) == deviceType {
			return true
		}
	}
	return false
}

var _ acl.DeviceTypeResolver = RegistryDeviceTypes{}
