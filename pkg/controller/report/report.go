package report

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/offboard/pkg/domain/model"
	"github.com/secmon-lab/offboard/pkg/domain/types"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Writer renders an audit result
type Writer func(w io.Writer, result *model.AuditResult) error

// New returns the writer of the given format
func New(format Format) (Writer, error) {
	switch format {
	case FormatText:
		return Text, nil
	case FormatJSON:
		return JSON, nil
	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid report format, should be 'text' or 'json'", goerr.V("value", format))
	}
}

// Text writes the deploy key report followed by the collaborator report.
// Only repositories with something to show get a block; each block ends with
// a blank line.
func Text(w io.Writer, result *model.AuditResult) error {
	bw := bufio.NewWriter(w)
	p := &printer{w: bw}

	p.println(":: DEPLOY KEYS ::")
	for _, entry := range result.DeployKeyReport() {
		p.println(entry.Repo)
		if entry.Error != "" {
			p.println("Error: " + entry.Error)
		}
		for _, key := range entry.DeployKeys {
			if key == nil {
				continue
			}
			p.println("Key: " + key.Title)
			p.println("Url: " + key.URL)
		}
		p.println("")
	}

	p.println(":: Repository users ::")
	for _, entry := range result.CollaboratorReport() {
		p.println(entry.Repo)
		if entry.Error != "" {
			p.println("Error: " + entry.Error)
		}
		for _, c := range entry.Collaborators {
			if c == nil {
				continue
			}
			p.println("Username: " + c.Login)
		}
		p.println("")
	}

	if p.err != nil {
		return goerr.Wrap(p.err, "failed to write text report")
	}
	if err := bw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to flush text report")
	}
	return nil
}

type printer struct {
	w   io.Writer
	err error
}

func (x *printer) println(s string) {
	if x.err != nil {
		return
	}
	_, x.err = io.WriteString(x.w, s+"\n")
}

type jsonReport struct {
	Org           string                     `json:"org"`
	DeployKeys    []*model.DeployKeyEntry    `json:"deploy_keys"`
	Collaborators []*model.CollaboratorEntry `json:"collaborators"`
}

// JSON writes both reports as a single JSON document
func JSON(w io.Writer, result *model.AuditResult) error {
	out := jsonReport{
		Org:           result.Org,
		DeployKeys:    result.DeployKeyReport(),
		Collaborators: result.CollaboratorReport(),
	}
	if out.DeployKeys == nil {
		out.DeployKeys = []*model.DeployKeyEntry{}
	}
	if out.Collaborators == nil {
		out.Collaborators = []*model.CollaboratorEntry{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return goerr.Wrap(err, "failed to write json report")
	}
	return nil
}
