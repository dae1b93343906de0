package groupalarm

import (
	"context"
	"fmt"
)

// TriggerAlarm submits the assembled request. With preview set the request
// only validates the alarm on the service side and never alerts anyone.
//
// Response handling is intentionally two-channelled: a JSON body reporting
// success=false is logged as a service diagnostic, and independently any
// non-2xx status fails the call with a RemoteError.
func (c *Client) TriggerAlarm(ctx context.Context, request *AlarmRequest, preview bool) error {
	path := "/alarm"
	if preview {
		path += "/preview"
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(request).
		Post(path)
	if err != nil {
		return fmt.Errorf("post alarm: %w", err)
	}

	logServiceStatus(ctx, resp)

	if resp.IsError() {
		return &RemoteError{
			Op:         "trigger alarm",
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
		}
	}

	return nil
}
