// matter-pathcheck checks whether an event path is readable by a subject.
//
// It loads a device definition, builds the node's data model and ACL
// entries, and runs the same event path validity check a read handler
// performs before touching event storage.
//
// Usage:
//
//	matter-pathcheck -device light.yaml [options]
//
// Options:
//
//	-device        Device definition YAML (required)
//	-endpoint      Endpoint ID, or * for wildcard (default: *)
//	-cluster       Cluster ID, or * for wildcard (default: *)
//	-event         Event ID, or * for wildcard (default: *)
//	-fabric        Accessing fabric index (default: 1)
//	-subject       Subject node ID (default: 0)
//	-auth-mode     case, group, or pase (default: case)
//	-cats          Comma-separated CASE Authenticated Tags
//	-commissioning Treat the subject as commissioning over PASE
//	-event-list    Use event-list metadata (default: true)
//	-verbose       Trace path evaluation
//
// Example:
//
//	matter-pathcheck -device light.yaml -endpoint 0 -cluster 0x0028 -event 0x00 -subject 0x1122
//
// Prints "valid" or "not valid". Exit status is 0 when the path is valid,
// 1 when it is not, and 2 on errors.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pion/logging"

	"github.com/ZeynabBaghiyan/Matter/pkg/acl"
	"github.com/ZeynabBaghiyan/Matter/pkg/datamodel"
	"github.com/ZeynabBaghiyan/Matter/pkg/devicedef"
	"github.com/ZeynabBaghiyan/Matter/pkg/im"
)

func main() {
	valid, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "matter-pathcheck: %v\n", err)
		os.Exit(2)
	}
	if !valid {
		os.Exit(1)
	}
}

func run() (bool, error) {
	var (
		devicePath    = flag.String("device", "", "Device definition YAML (required)")
		endpointArg   = flag.String("endpoint", "*", "Endpoint ID, or * for wildcard")
		clusterArg    = flag.String("cluster", "*", "Cluster ID, or * for wildcard")
		eventArg      = flag.String("event", "*", "Event ID, or * for wildcard")
		fabricArg     = flag.Uint("fabric", 1, "Accessing fabric index")
		subjectArg    = flag.String("subject", "0", "Subject node ID")
		authModeArg   = flag.String("auth-mode", "case", "Authentication mode: case, group, or pase")
		catsArg       = flag.String("cats", "", "Comma-separated CASE Authenticated Tags")
		commissioning = flag.Bool("commissioning", false, "Treat the subject as commissioning over PASE")
		eventList     = flag.Bool("event-list", true, "Use event-list metadata")
		verbose       = flag.Bool("verbose", false, "Trace path evaluation")
	)
	flag.Parse()

	if *devicePath == "" {
		flag.Usage()
		return false, errors.New("missing required -device flag")
	}

	spec, err := buildSpec(*endpointArg, *clusterArg, *eventArg)
	if err != nil {
		return false, err
	}
	subject, err := buildSubject(*fabricArg, *subjectArg, *authModeArg, *catsArg, *commissioning)
	if err != nil {
		return false, err
	}

	def, err := devicedef.Load(*devicePath)
	if err != nil {
		return false, err
	}
	node, entries, err := def.Build()
	if err != nil {
		return false, fmt.Errorf("build %s: %w", *devicePath, err)
	}

	checker := acl.NewChecker(devicedef.RegistryDeviceTypes{Provider: node})
	checker.SetEntries(entries)

	var loggerFactory logging.LoggerFactory
	if *verbose {
		factory := logging.NewDefaultLoggerFactory()
		factory.DefaultLogLevel = logging.LogLevelTrace
		loggerFactory = factory
	}

	validator := im.NewEventPathValidator(im.EventPathValidatorConfig{
		Provider:           node,
		AccessControl:      checker,
		EventListSupported: *eventList,
		LoggerFactory:      loggerFactory,
	})

	valid := validator.HasValidEventPaths([]im.EventPathSpec{spec}, subject)
	if valid {
		fmt.Printf("%s: valid\n", spec)
	} else {
		fmt.Printf("%s: not valid\n", spec)
	}
	return valid, nil
}

// buildSpec assembles an event path from the flag values.
// Each part is either * or a decimal/0x-hex number.
func buildSpec(endpointArg, clusterArg, eventArg string) (im.EventPathSpec, error) {
	var spec im.EventPathSpec

	if endpointArg != "*" {
		v, err := strconv.ParseUint(endpointArg, 0, 16)
		if err != nil {
			return spec, fmt.Errorf("invalid -endpoint %q: %w", endpointArg, err)
		}
		endpoint := datamodel.EndpointID(v)
		spec.Endpoint = &endpoint
	}
	if clusterArg != "*" {
		v, err := strconv.ParseUint(clusterArg, 0, 32)
		if err != nil {
			return spec, fmt.Errorf("invalid -cluster %q: %w", clusterArg, err)
		}
		cluster := datamodel.ClusterID(v)
		spec.Cluster = &cluster
	}
	if eventArg != "*" {
		v, err := strconv.ParseUint(eventArg, 0, 32)
		if err != nil {
			return spec, fmt.Errorf("invalid -event %q: %w", eventArg, err)
		}
		event := datamodel.EventID(v)
		spec.Event = &event
	}
	return spec, nil
}

// buildSubject assembles the accessing subject from the flag values.
func buildSubject(fabric uint, subjectArg, authModeArg, catsArg string, commissioning bool) (acl.SubjectDescriptor, error) {
	if fabric < uint(acl.FabricIndexMin) || fabric > uint(acl.FabricIndexMax) {
		return acl.SubjectDescriptor{}, fmt.Errorf("invalid -fabric %d", fabric)
	}
	authMode, err := devicedef.ParseAuthMode(authModeArg)
	if err != nil {
		return acl.SubjectDescriptor{}, fmt.Errorf("invalid -auth-mode: %w", err)
	}
	subjectID, err := strconv.ParseUint(subjectArg, 0, 64)
	if err != nil {
		return acl.SubjectDescriptor{}, fmt.Errorf("invalid -subject %q: %w", subjectArg, err)
	}
	cats, err := parseCATs(catsArg)
	if err != nil {
		return acl.SubjectDescriptor{}, err
	}

	return acl.SubjectDescriptor{
		FabricIndex:     acl.FabricIndex(fabric),
		AuthMode:        authMode,
		Subject:         subjectID,
		CATs:            cats,
		IsCommissioning: commissioning,
	}, nil
}

// parseCATs parses a comma-separated CAT list into the fixed-size set.
func parseCATs(catsArg string) (acl.CATValues, error) {
	var cats acl.CATValues
	if catsArg == "" {
		return cats, nil
	}

	parts := strings.Split(catsArg, ",")
	if len(parts) > len(cats) {
		return cats, fmt.Errorf("at most %d CATs supported, got %d", len(cats), len(parts))
	}
	for i, part := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(part), 0, 32)
		if err != nil {
			return cats, fmt.Errorf("invalid CAT %q: %w", part, err)
		}
		cats[i] = acl.CASEAuthTag(v)
	}
	return cats, nil
}
