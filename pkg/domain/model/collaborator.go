package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

type Permissions struct {
	Admin bool `json:"admin"`
	Push  bool `json:"push"`
	Pull  bool `json:"pull"`
}

// Collaborator is a user with a direct access grant on a repository. Only
// Login and Permissions are consumed; every other attribute of the API
// response (hypermedia URLs, node_id, type, site_admin, ...) is kept as is in
// Extra so that the record can be written back without loss.
type Collaborator struct {
	Login       string
	ID          int64
	Permissions Permissions
	Extra       map[string]json.RawMessage
}

const (
	collaboratorLoginKey       = "login"
	collaboratorIDKey          = "id"
	collaboratorPermissionsKey = "permissions"
)

func (x *Collaborator) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return goerr.Wrap(err, "failed to decode collaborator")
	}

	var c Collaborator
	if v, ok := raw[collaboratorLoginKey]; ok {
		if err := json.Unmarshal(v, &c.Login); err != nil {
			return goerr.Wrap(err, "invalid collaborator login", goerr.V("value", string(v)))
		}
		delete(raw, collaboratorLoginKey)
	}
	if v, ok := raw[collaboratorIDKey]; ok {
		if err := json.Unmarshal(v, &c.ID); err != nil {
			return goerr.Wrap(err, "invalid collaborator id", goerr.V("value", string(v)))
		}
		delete(raw, collaboratorIDKey)
	}
	if v, ok := raw[collaboratorPermissionsKey]; ok {
		if err := json.Unmarshal(v, &c.Permissions); err != nil {
			return goerr.Wrap(err, "invalid collaborator permissions", goerr.V("value", string(v)))
		}
		delete(raw, collaboratorPermissionsKey)
	}
	if len(raw) > 0 {
		c.Extra = raw
	}

	*x = c
	return nil
}

func (x Collaborator) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(x.Extra)+3)
	for k, v := range x.Extra {
		out[k] = v
	}
	out[collaboratorLoginKey] = x.Login
	out[collaboratorIDKey] = x.ID
	out[collaboratorPermissionsKey] = x.Permissions

	data, err := json.Marshal(out)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode collaborator", goerr.V("login", x.Login))
	}
	return data, nil
}

// ExtraString returns a pass-through string attribute such as "html_url".
func (x *Collaborator) ExtraString(key string) string {
	v, ok := x.Extra[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}
