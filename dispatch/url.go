package dispatch

import (
	"fmt"
	"net/url"

	"github.com/yosida95/uritemplate/v3"
)

var urlTemplate = uritemplate.MustNew("/{collection}{/member}")

// URL generates a URL for a registered collection, optionally pointing at
// a member. Query values, when present, are appended as an encoded query
// string. Unknown collections are an error.
func (d *Dispatch) URL(collection, member string, query url.Values) (string, error) {
	if _, ok := d.resources[collection]; !ok {
		return "", fmt.Errorf("collection %q: %w", collection, ErrUnknownCollection)
	}

	vars := uritemplate.Values{
		"collection": uritemplate.String(collection),
	}
	if member != "" {
		vars["member"] = uritemplate.String(member)
	}

	u, err := urlTemplate.Expand(vars)
	if err != nil {
		return "", err
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u, nil
}
