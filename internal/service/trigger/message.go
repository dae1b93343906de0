package trigger

import (
	"context"

	"github.com/personalfme/groupalarm-trigger/internal/config"
	"github.com/personalfme/groupalarm-trigger/internal/domain/alarm"
	"github.com/personalfme/groupalarm-trigger/internal/groupalarm"
)

// selectMessage resolves the rule's message variant. Exactly one of the two
// return slots is populated: a literal text or a resolved template id.
func selectMessage(ctx context.Context, resolver Resolver, spec alarm.MessageSpec) (templateID int, message string, err error) {
	switch spec.Kind {
	case alarm.MessageLiteral:
		return 0, spec.Text, nil

	case alarm.MessageTemplate:
		ids, err := resolver.ResolveIDs(ctx, groupalarm.KindTemplates, []string{spec.TemplateName})
		if err != nil {
			return 0, "", err
		}

		return ids[0], "", nil

	default:
		return 0, "", config.NewLogicError("no alarm message")
	}
}
