package quiz

import (
	"strconv"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// IdentitySource tells which of the three identity paths produced a user key
type IdentitySource int

const (
	// SourceTelegram is a verified Telegram user id from the web-app init data
	SourceTelegram IdentitySource = iota
	// SourceClient is an id the client generated and persisted on its side
	SourceClient
	// SourceGenerated is a fresh server-generated id for anonymous submissions
	SourceGenerated
)

// length of generated local ids; collision probability is negligible for this scale
const generatedIDLength = 8

// Identity is a resolved submitter identity
type Identity struct {
	Source     IdentitySource
	TelegramID int64
	ClientID   string
}

// ResolveIdentity picks the identity for a submission. A verified Telegram id
// wins over a client-supplied one; with neither, a random local id is minted.
// Never fails.
func ResolveIdentity(telegramID int64, clientID string) Identity {
	switch {
	case telegramID != 0:
		return Identity{Source: SourceTelegram, TelegramID: telegramID}
	case clientID != "":
		return Identity{Source: SourceClient, ClientID: clientID}
	default:
		return Identity{Source: SourceGenerated, ClientID: gonanoid.Must(generatedIDLength)}
	}
}

// Key returns the namespaced user key. Stable across sessions for Telegram and
// client-supplied ids, ephemeral for generated ones.
func (id Identity) Key() string {
	if id.Source == SourceTelegram {
		return "tg_" + strconv.FormatInt(id.TelegramID, 10)
	}
	return "local_" + id.ClientID
}
