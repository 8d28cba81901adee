// Package ofx parses OFX bank statements. The format is SGML-flavored: tags
// carry a value on the same line and usually omit their closing tag, so the
// parser synthesizes closes instead of requiring well-formed XML.
package ofx

import (
	"errors"
	"time"

	"github.com/rfmachado/backoffice/internal/transaction"
)

// ErrMalformedStatement means the input has no <OFX> root marker.
var ErrMalformedStatement = errors.New("malformed statement: missing OFX marker")

// Entry is one statement transaction, ephemeral to the import request. It is
// matched against pending transactions and then discarded.
type Entry struct {
	ExternalID  string           `json:"id"`
	Date        time.Time        `json:"date"`
	AmountCents int64            `json:"amount"`
	Description string           `json:"description"`
	Type        transaction.Type `json:"type"`
}
