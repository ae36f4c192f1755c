// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"folio/internal/mailer"
	"folio/internal/models"
	"folio/internal/serialize"
	"folio/internal/store"
)

// Contact groups the contact-message handlers: public intake plus the
// message listing.
type Contact struct {
	store  *store.ContactStore
	sender mailer.Sender
	from   string // default sender address
	owner  string // owner notification address
}

// NewContact creates the contact handler group.
func NewContact(st *store.ContactStore, sender mailer.Sender, from, owner string) *Contact {
	return &Contact{store: st, sender: sender, from: from, owner: owner}
}

// List returns all contact messages, newest first. The original API leaves
// this unrestricted; gate it behind auth before exposing it publicly.
func (c *Contact) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.store.List()
	if err != nil {
		slog.Error("list contact messages failed", "error", err)
		writeServerError(w)
		return
	}
	writeJSON(w, http.StatusOK, serialize.NewContactMessages(items))
}

// Create validates and persists a contact submission, then sends the owner
// notification and the submitter acknowledgment. The row is persisted before
// any send, so a mail failure returns 500 with the message already durable.
// The two sends are sequential, unretried side effects, not a transaction.
func (c *Contact) Create(w http.ResponseWriter, r *http.Request) {
	var in contactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid JSON body."})
		return
	}

	if errs := validateContact(in); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	saved, err := c.store.Create(&models.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	})
	if err != nil {
		slog.Error("create contact message failed", "error", err)
		writeServerError(w)
		return
	}

	if err := c.sender.Send(mailer.OwnerNotification(*saved, c.owner)); err != nil {
		slog.Error("owner notification failed", "id", saved.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError,
			map[string]string{"detail": "Message was saved but notification delivery failed."})
		return
	}
	if err := c.sender.Send(mailer.Acknowledgment(*saved, c.from)); err != nil {
		slog.Error("acknowledgment send failed", "id", saved.ID, "error", err)
		writeJSON(w, http.StatusInternalServerError,
			map[string]string{"detail": "Message was saved but notification delivery failed."})
		return
	}

	writeJSON(w, http.StatusCreated, serialize.NewContactMessage(*saved))
}
