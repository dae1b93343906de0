package trigger

import (
	"context"
	"time"

	"github.com/personalfme/groupalarm-trigger/internal/config"
	"github.com/personalfme/groupalarm-trigger/internal/groupalarm"
	"github.com/personalfme/groupalarm-trigger/internal/logger"
)

// Options configures one alarm trigger invocation.
type Options struct {
	// ConfigPath to the YAML configuration, defaults to the standard path if empty.
	ConfigPath string

	// Code is the selcall alert code selecting the rule to fire.
	Code string

	// TimePoint is the human-readable time the alert was received.
	TimePoint string

	// AlarmType describes the alarm kind (e.g. "Einsatzalarmierung" or "Probealarm").
	AlarmType string

	// Preview validates the alarm on the service side without alerting anyone.
	Preview bool
}

// Run fires one alarm: it loads and validates the configuration, resolves
// credentials and symbolic names, assembles the request and dispatches it.
// Every failure terminates the invocation; nothing is retried.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "groupalarm-trigger")

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	// Credential conflicts must surface before any network call.
	creds, err := config.ResolveCredentials(cfg)
	if err != nil {
		return err
	}

	rule, err := cfg.Alarms.RuleFor(opts.Code)
	if err != nil {
		return err
	}

	clientOpts := make([]groupalarm.Option, 0, 1)
	if proxyURL := cfg.Proxy.URL(); proxyURL != "" {
		logger.DebugKV(ctx, "Using HTTPS proxy", "proxy_url", proxyURL)

		clientOpts = append(clientOpts, groupalarm.WithProxyURL(proxyURL))
	}

	client := groupalarm.New(creds.OrganizationID, creds.APIToken, clientOpts...)

	// Lookups run strictly one after another; there is no fan-out.
	resources, err := selectResources(ctx, client, rule.Resources)
	if err != nil {
		return err
	}

	templateID, message, err := selectMessage(ctx, client, rule.Message)
	if err != nil {
		return err
	}

	request := assembleRequest(&assembly{
		Resources:       resources,
		OrganizationID:  creds.OrganizationID,
		Code:            opts.Code,
		TimePoint:       opts.TimePoint,
		AlarmType:       opts.AlarmType,
		Message:         message,
		TemplateID:      templateID,
		CloseEventAfter: rule.CloseEventAfter,
	}, time.Now())

	logger.DebugKV(ctx, "Dispatching alarm request",
		"event_name", request.EventName,
		"preview", opts.Preview,
	)

	if err := client.TriggerAlarm(ctx, request, opts.Preview); err != nil {
		return err
	}

	if opts.Preview {
		logger.Info(ctx, "The alarm configuration was tested on GroupAlarm.com and is valid")
	} else {
		logger.Info(ctx, "Alarm triggered successfully")
	}

	return nil
}
