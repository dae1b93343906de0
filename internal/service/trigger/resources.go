package trigger

import (
	"context"

	"github.com/personalfme/groupalarm-trigger/internal/config"
	"github.com/personalfme/groupalarm-trigger/internal/domain/alarm"
	"github.com/personalfme/groupalarm-trigger/internal/groupalarm"
)

// Resolver maps symbolic names to remote numeric ids, in input order.
type Resolver interface {
	ResolveIDs(ctx context.Context, kind groupalarm.EndpointKind, names []string) ([]int, error)
}

// selectResources turns the rule's resource variant into the wire payload,
// resolving names where the variant requires it.
//
//nolint:cyclop // One case per resource variant.
func selectResources(ctx context.Context, resolver Resolver, spec alarm.ResourceSpec) (*groupalarm.AlarmResources, error) {
	switch spec.Kind {
	case alarm.ResourceAllUsers:
		return &groupalarm.AlarmResources{AllUsers: true}, nil

	case alarm.ResourceLabels:
		names := make([]string, len(spec.Labels))
		for i, label := range spec.Labels {
			names[i] = label.Name
		}

		ids, err := resolver.ResolveIDs(ctx, groupalarm.KindLabels, names)
		if err != nil {
			return nil, err
		}

		// Ids come back in input order, so amount and id stay paired by position.
		labels := make([]groupalarm.LabelResource, len(ids))
		for i, id := range ids {
			labels[i] = groupalarm.LabelResource{
				Amount:  spec.Labels[i].Amount,
				LabelID: id,
			}
		}

		return &groupalarm.AlarmResources{Labels: labels}, nil

	case alarm.ResourceUnits:
		ids, err := resolver.ResolveIDs(ctx, groupalarm.KindUnits, spec.Units)
		if err != nil {
			return nil, err
		}

		return &groupalarm.AlarmResources{Units: ids}, nil

	case alarm.ResourceUsers:
		ids, err := resolver.ResolveIDs(ctx, groupalarm.KindUsers, spec.Users)
		if err != nil {
			return nil, err
		}

		return &groupalarm.AlarmResources{Users: ids}, nil

	case alarm.ResourceScenarios:
		ids, err := resolver.ResolveIDs(ctx, groupalarm.KindScenarios, spec.Scenarios)
		if err != nil {
			return nil, err
		}

		return &groupalarm.AlarmResources{Scenarios: ids}, nil

	default:
		// The schema validator rejects rules without a variant; this guards
		// against rules constructed outside the config loader.
		return nil, config.NewLogicError("no alarm resources")
	}
}
