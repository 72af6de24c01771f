package slack

import (
	"bitcat/config"
	"bitcat/pkg/model"
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
)

// AttachmentField is one field of a message attachment
type AttachmentField struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// Attachment carries the details of an alert
type Attachment struct {
	Color  string            `json:"color"`
	Text   string            `json:"text,omitempty"`
	Fields []AttachmentField `json:"fields"`
}

// Payload represents a message to send to Slack
type Payload struct {
	Text        string       `json:"text,omitempty"`
	Username    string       `json:"username,omitempty"`
	IconURL     string       `json:"icon_url,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// NewPayload generates a new Slack Payload for a caught certificate
func NewPayload(config *config.Configuration, r *model.Result) Payload {
	var attachments []Attachment
	var attachment Attachment
	var fields []AttachmentField
	var field AttachmentField

	field.Title = "Domain"
	field.Value = r.Domain
	field.Short = true
	fields = append(fields, field)

	field.Title = "Attack"
	field.Value = r.Attack
	field.Short = true
	fields = append(fields, field)

	field.Title = "Protected Domain"
	field.Value = r.ProtectedDomain
	field.Short = true
	fields = append(fields, field)

	if r.Flip != "" {
		field.Title = "Flip"
		field.Value = r.Flip
		field.Short = true
		fields = append(fields, field)
	}

	field.Title = "Issuer"
	field.Value = r.Issuer
	field.Short = true
	fields = append(fields, field)

	if r.IDN != "" {
		field.Title = "IDN"
		field.Value = r.IDN
		field.Short = true
		fields = append(fields, field)
	}

	if r.Registrar != "" {
		field.Title = "Registrar"
		field.Value = r.Registrar
		field.Short = true
		fields = append(fields, field)
	}

	if r.CreationDate != "" {
		field.Title = "Creation Date"
		field.Value = r.CreationDate
		field.Short = true
		fields = append(fields, field)
	}

	field.Title = "SAN"
	field.Short = false
	field.Value = strings.Join(r.SAN, ", ")
	fields = append(fields, field)

	field.Title = "Addresses"
	field.Short = false
	field.Value = strings.Join(r.Addresses, ", ")
	fields = append(fields, field)

	if r.Screenshot != "" {
		field.Title = "Screenshot"
		field.Short = false
		field.Value = r.Screenshot
		fields = append(fields, field)
	}

	attachment.Fields = fields

	attachment.Color = "#ff5400"

	attachments = append(attachments, attachment)

	domain := r.Domain
	if r.IDN != "" {
		domain += " (" + r.IDN + ")"
	}

	return Payload{
		Text:        "A certificate for " + domain + " has been issued",
		Username:    config.SlackUsername,
		IconURL:     config.SlackIconURL,
		Attachments: attachments,
	}
}

// Post posts a Payload to Slack
func (s Payload) Post(config *config.Configuration) {
	body, _ := json.Marshal(s)
	req, err := http.NewRequest(http.MethodPost, config.SlackWebHookURL, bytes.NewBuffer(body))
	if err != nil {
		config.Log.Warnf("Slack Post error: %v", err)
		return
	}
	req.Header.Add("Content-Type", "application/json")
	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		config.Log.Warnf("Slack Post error: %v", err)
		return
	}
	res.Body.Close()
}
