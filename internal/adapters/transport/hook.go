package transport

import (
	"github.com/go-resty/resty/v2"
)

// ServerErrorMessage is shown to the user when the backend answers with HTTP 500.
const ServerErrorMessage = "The server ran into a temporary problem. Please try again."

// onError is the global error hook. resty calls it exactly once for every
// failed request, before Execute returns. It only has side effects: the error
// still reaches the caller.
func (c *Client) onError(r *resty.Request, err error) {
	terr := asTransportError(r, err)

	if c.logger != nil {
		c.logger.Warn(terr.Error())
	}
	if terr.IsServerError() && c.notifier != nil {
		c.notifier.Notify(ServerErrorMessage)
	}
}
